package dn

// IsDN reports whether s parses as a distinguished name under the given
// flags. Every failure, of any kind, reports false; nothing propagates.
// The empty string is a valid (empty) DN.
func IsDN(s string, flags ParseFlags) bool {
	_, err := Parse(s, flags)
	return err == nil
}

// Normalize parses s and renders it back in canonical LDAPv3 form,
// collapsing insignificant whitespace and non-canonical escaping.
func Normalize(s string, flags ParseFlags) (string, error) {
	d, err := Parse(s, flags)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
