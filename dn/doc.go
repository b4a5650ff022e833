// Package dn implements parsing, formatting, comparison and escaping of
// LDAP distinguished names as defined in RFC 4514.
//
// # Overview
//
// A distinguished name is an ordered sequence of relative distinguished
// names (RDNs), most specific first. Each RDN is a non-empty set of
// attribute type and value pairs; multiple pairs form a multi-valued RDN
// and are joined with '+':
//
//	uid=alice,ou=users,dc=example,dc=com
//	cn=Bob+sn=Smith,dc=example,dc=com
//
// Parse decomposes a DN string into its structural form, and DN.String
// renders it back as canonical LDAPv3 output:
//
//	d, err := dn.Parse("cn=Bob+sn=Smith,dc=example,dc=com", 0)
//	if err != nil {
//	    // malformed DN
//	}
//	fmt.Println(d.String()) // cn=Bob+sn=Smith,dc=example,dc=com
//
// # Escaping
//
// Escape prepares a raw attribute value for inclusion in a DN string,
// escaping the reserved characters of RFC 4514 section 2.4 with a
// backslash. Parse reverses all escaping, including \XX hex pairs.
//
// # Binary values
//
// RFC 4514 allows an attribute value to be given as '#' followed by the
// hex-encoded BER encoding of the value. Such values are recorded with
// EncodingBinary and re-emitted in the same form, so the encoding is
// preserved across a parse/format round trip. DecodeBER unpacks the BER
// content of a binary value.
//
// # Comparison
//
// CompareDN checks two DNs for structural equality: RDN order is
// significant, the order of values inside a multi-valued RDN is not, and
// attribute type names always compare case-insensitively. Whether a
// value compares case-insensitively is a schema fact; a CaseRegistry
// holds the set of attribute types whose equality matching rule is from
// the caseIgnore family, populated from a server subschema subentry or
// seeded by hand.
package dn
