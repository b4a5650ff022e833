package dn

import "strings"

// Escape escapes the RFC 4514 reserved characters in an attribute value so
// that the result can be used verbatim after '=' in a DN string. The empty
// string is returned unchanged.
//
// Every backslash, comma, plus, double quote, angle bracket, semicolon,
// equals sign and NUL byte is prefixed with a backslash. A '#' or space in
// the first position and a space in the last position are escaped as well;
// '#' and spaces anywhere else are left bare, matching the minimal escaping
// policy of RFC 4514, section 2.4.
func Escape(s string) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', ',', '+', '"', '<', '>', ';', '=', 0:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	out := b.String()
	if out[0] == '#' || out[0] == ' ' {
		out = "\\" + out
	}
	if out[len(out)-1] == ' ' {
		out = out[:len(out)-1] + "\\ "
	}
	return out
}
