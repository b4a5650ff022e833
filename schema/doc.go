// Package schema models the slice of an LDAP subschema subentry needed on
// the client side: attribute type and matching rule definitions per
// RFC 4512, with enough resolution logic to answer one question — which
// attribute types compare their values case-insensitively.
//
// A Subschema is built either from the raw attributes of a server's
// subschema subentry:
//
//	sub, err := schema.ParseSubschema(map[string][]string{
//	    "attributeTypes": {
//	        "( 2.5.4.41 NAME 'name' EQUALITY caseIgnoreMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )",
//	        "( 2.5.4.3 NAME ( 'cn' 'commonName' ) SUP name )",
//	    },
//	})
//
// or from the built-in standard definitions:
//
//	sub := schema.Defaults()
//
// EffectiveEquality resolves an attribute type's equality matching rule
// through its SUP chain, so inherited rules (cn inheriting caseIgnoreMatch
// from name, as above) are visible to CaseIgnoreNames.
package schema
