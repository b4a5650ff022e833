package dn

import "strings"

// ExplodeDN breaks a DN string into one string per RDN, outer order
// preserved. With noTypes set, each RDN is rendered from its escaped
// values only; otherwise each pair is rendered as type=value. The empty
// string explodes to an empty slice.
//
//	ExplodeDN("cn=Bob+sn=Smith,dc=example,dc=com", false, 0)
//	// ["cn=Bob+sn=Smith", "dc=example", "dc=com"]
//	ExplodeDN("cn=Bob+sn=Smith,dc=example,dc=com", true, 0)
//	// ["Bob+Smith", "example", "com"]
func ExplodeDN(s string, noTypes bool, flags ParseFlags) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	d, err := Parse(s, flags)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(d))
	for i, rdn := range d {
		out[i] = formatRDN(rdn, noTypes)
	}
	return out, nil
}

// ExplodeRDN breaks a single (possibly multi-valued) RDN string into one
// string per attribute type and value pair, rendered exactly as in
// ExplodeDN. The empty string explodes to an empty slice. Input holding
// more than one RDN is rejected with ErrNotRelative.
func ExplodeRDN(s string, noTypes bool, flags ParseFlags) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	d, err := Parse(s, flags)
	if err != nil {
		return nil, err
	}
	if len(d) == 0 {
		return nil, ErrNoRDN
	}
	if len(d) > 1 {
		return nil, ErrNotRelative
	}
	rdn := d[0]
	out := make([]string, len(rdn))
	for i, ava := range rdn {
		if noTypes {
			out[i] = ava.escapedValue()
		} else {
			out[i] = ava.String()
		}
	}
	return out, nil
}

func formatRDN(rdn RDN, noTypes bool) string {
	if !noTypes {
		return rdn.String()
	}
	parts := make([]string, len(rdn))
	for i, ava := range rdn {
		parts[i] = ava.escapedValue()
	}
	return strings.Join(parts, "+")
}
