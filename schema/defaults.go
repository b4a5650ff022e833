package schema

// Standard definitions from RFC 4512 and RFC 4519, for seeding a registry
// without a reachable server.

// caseIgnorePrefix selects the caseIgnore family of equality matching
// rules: caseIgnoreMatch, caseIgnoreIA5Match, caseIgnoreListMatch, ...
const caseIgnorePrefix = "caseIgnore"

// Matching rule OIDs of the caseIgnore family (RFC 4517 and the IA5 rules
// of RFC 2252 heritage).
const (
	OIDCaseIgnoreMatch     = "2.5.13.2"
	OIDCaseIgnoreListMatch = "2.5.13.11"
	OIDCaseIgnoreIA5Match  = "1.3.6.1.4.1.1466.109.114.2"
	OIDCaseExactMatch      = "2.5.13.5"
)

var defaultAttributeTypes = []string{
	`( 2.5.4.0 NAME 'objectClass' EQUALITY objectIdentifierMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.38 )`,
	`( 2.5.4.41 NAME 'name' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.4.3 NAME ( 'cn' 'commonName' ) SUP name )`,
	`( 2.5.4.4 NAME ( 'sn' 'surname' ) SUP name )`,
	`( 2.5.4.6 NAME ( 'c' 'countryName' ) SUP name SINGLE-VALUE )`,
	`( 2.5.4.7 NAME ( 'l' 'localityName' ) SUP name )`,
	`( 2.5.4.8 NAME ( 'st' 'stateOrProvinceName' ) SUP name )`,
	`( 2.5.4.10 NAME ( 'o' 'organizationName' ) SUP name )`,
	`( 2.5.4.11 NAME ( 'ou' 'organizationalUnitName' ) SUP name )`,
	`( 2.5.4.13 NAME 'description' EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.4.35 NAME 'userPassword' EQUALITY octetStringMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.40 )`,
	`( 2.5.4.49 NAME 'distinguishedName' EQUALITY distinguishedNameMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 )`,
	`( 0.9.2342.19200300.100.1.1 NAME ( 'uid' 'userid' ) EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 0.9.2342.19200300.100.1.25 NAME ( 'dc' 'domainComponent' ) EQUALITY caseIgnoreIA5Match SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 SINGLE-VALUE )`,
}

var defaultMatchingRules = []string{
	`( 2.5.13.2 NAME 'caseIgnoreMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.13.5 NAME 'caseExactMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
	`( 2.5.13.11 NAME 'caseIgnoreListMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.41 )`,
	`( 1.3.6.1.4.1.1466.109.114.2 NAME 'caseIgnoreIA5Match' SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 )`,
	`( 2.5.13.0 NAME 'objectIdentifierMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.38 )`,
	`( 2.5.13.1 NAME 'distinguishedNameMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 )`,
}

// Defaults returns a Subschema holding the standard definitions above.
// The definitions are constants known to parse; a failure here is a
// programming error.
func Defaults() *Subschema {
	raw := map[string][]string{
		"attributeTypes": defaultAttributeTypes,
		"matchingRules":  defaultMatchingRules,
	}
	sub, err := ParseSubschema(raw)
	if err != nil {
		panic("schema: default definitions failed to parse: " + err.Error())
	}
	return sub
}
