package dn

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Parsing errors.
var (
	ErrInvalidDN            = errors.New("invalid DN syntax")
	ErrInvalidAttributeType = errors.New("invalid attribute type")
	ErrInvalidEscape        = errors.New("invalid escape sequence")
	ErrInvalidBinaryValue   = errors.New("invalid hex-encoded binary value")
	ErrNotRelative          = errors.New("not a relative DN")
	ErrNoRDN                = errors.New("no RDN in input")
)

// ParseFlags alters how lenient Parse is about input that deviates from
// the RFC 4514 grammar. The zero value accepts RFC 4514 with the usual
// whitespace and escape leniencies of deployed servers.
type ParseFlags uint

const (
	// AllowLegacyNames permits attribute descriptors that strict RFC 4514
	// rejects but older deployments used: descriptors containing
	// underscores or starting with a digit, and numeric OIDs written with
	// an "oid." prefix.
	AllowLegacyNames ParseFlags = 1 << iota

	// NoBinaryValues disables detection of '#'-prefixed hex-encoded
	// binary values. A leading '#' is then an ordinary value character.
	NoBinaryValues

	// StrictEscapes makes Parse pedantic: escape sequences not defined by
	// RFC 4514, unescaped '"', ';', '<', '>' inside values and whitespace
	// around separators are rejected instead of accepted leniently.
	StrictEscapes
)

// Parse decomposes a DN string into its structural form. The empty string
// parses to an empty DN with no error. Parse is pure and safe for
// unrestricted concurrent use.
//
// All escaping in the input is resolved: backslash-escaped reserved
// characters and \XX hex pairs become raw bytes of the value, and
// '#'-prefixed hexstrings are hex-decoded and recorded with
// EncodingBinary.
func Parse(s string, flags ParseFlags) (DN, error) {
	if s == "" {
		return DN{}, nil
	}

	p := &parser{s: s, flags: flags}
	var d DN
	for {
		rdn, err := p.rdn()
		if err != nil {
			return nil, err
		}
		d = append(d, rdn)
		if p.eof() {
			return d, nil
		}
		// rdn stops only at ',' or end of input
		p.pos++
		if p.eof() {
			return nil, p.errorf(ErrInvalidDN, "trailing RDN separator")
		}
	}
}

type parser struct {
	s     string
	pos   int
	flags ParseFlags
}

func (p *parser) eof() bool {
	return p.pos >= len(p.s)
}

func (p *parser) errorf(sentinel error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at position %d", sentinel, msg, p.pos)
}

// skipSpaces consumes a run of spaces. Under StrictEscapes any whitespace
// between grammar elements is an error.
func (p *parser) skipSpaces() error {
	n := 0
	for !p.eof() && p.s[p.pos] == ' ' {
		p.pos++
		n++
	}
	if n > 0 && p.flags&StrictEscapes != 0 {
		return p.errorf(ErrInvalidDN, "unescaped whitespace")
	}
	return nil
}

func (p *parser) rdn() (RDN, error) {
	var rdn RDN
	for {
		ava, err := p.ava()
		if err != nil {
			return nil, err
		}
		rdn = append(rdn, ava)
		if p.eof() || p.s[p.pos] == ',' {
			return rdn, nil
		}
		if p.s[p.pos] != '+' {
			return nil, p.errorf(ErrInvalidDN, "expected '+' or ',' after value, found %q", p.s[p.pos])
		}
		p.pos++
		if p.eof() {
			return nil, p.errorf(ErrInvalidDN, "trailing AVA separator")
		}
	}
}

func (p *parser) ava() (AttributeTypeAndValue, error) {
	var ava AttributeTypeAndValue

	if err := p.skipSpaces(); err != nil {
		return ava, err
	}
	typ, err := p.attributeType()
	if err != nil {
		return ava, err
	}
	if err := p.skipSpaces(); err != nil {
		return ava, err
	}
	if p.eof() || p.s[p.pos] != '=' {
		return ava, p.errorf(ErrInvalidDN, "expected '=' after attribute type %q", typ)
	}
	p.pos++
	if err := p.skipSpaces(); err != nil {
		return ava, err
	}

	val, enc, err := p.value()
	if err != nil {
		return ava, err
	}
	ava.Type = typ
	ava.Value = val
	ava.Encoding = enc
	return ava, nil
}

// attributeType consumes a descriptor or numeric OID.
func (p *parser) attributeType() (string, error) {
	start := p.pos
	for !p.eof() {
		c := p.s[p.pos]
		if isAlnum(c) || c == '-' || c == '.' || c == '_' {
			p.pos++
			continue
		}
		break
	}
	tok := p.s[start:p.pos]
	if tok == "" {
		return "", p.errorf(ErrInvalidAttributeType, "empty attribute type")
	}
	if !validAttributeType(tok, p.flags) {
		return "", p.errorf(ErrInvalidAttributeType, "malformed attribute type %q", tok)
	}
	return tok, nil
}

func validAttributeType(tok string, flags ParseFlags) bool {
	oid := tok
	if flags&AllowLegacyNames != 0 {
		if rest, ok := cutPrefixFold(tok, "oid."); ok {
			oid = rest
		}
	}
	if isDigit(oid[0]) && validNumericOID(oid) {
		return true
	}
	if flags&AllowLegacyNames != 0 {
		return validLegacyDescriptor(tok)
	}
	return validDescriptor(tok)
}

// validDescriptor reports whether tok is a descr per RFC 4512:
// ALPHA *( ALPHA / DIGIT / HYPHEN ).
func validDescriptor(tok string) bool {
	if !isAlpha(tok[0]) {
		return false
	}
	for i := 1; i < len(tok); i++ {
		c := tok[i]
		if !isAlnum(c) && c != '-' {
			return false
		}
	}
	return true
}

// validLegacyDescriptor additionally accepts leading digits and
// underscores, as pre-LDAPv3 deployments did.
func validLegacyDescriptor(tok string) bool {
	hasAlpha := false
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if isAlpha(c) {
			hasAlpha = true
			continue
		}
		if !isDigit(c) && c != '-' && c != '_' {
			return false
		}
	}
	return hasAlpha
}

// validNumericOID reports whether tok is numericoid per RFC 4512:
// number *( "." number ), with no leading zeros in a multi-digit number.
func validNumericOID(tok string) bool {
	for _, arc := range strings.Split(tok, ".") {
		if arc == "" {
			return false
		}
		if len(arc) > 1 && arc[0] == '0' {
			return false
		}
		for i := 0; i < len(arc); i++ {
			if !isDigit(arc[i]) {
				return false
			}
		}
	}
	return true
}

// value consumes an attribute value up to the next unescaped '+' or ','.
func (p *parser) value() (string, ValueEncoding, error) {
	if !p.eof() && p.s[p.pos] == '#' && p.flags&NoBinaryValues == 0 {
		p.pos++
		v, err := p.hexString()
		if err != nil {
			return "", EncodingBinary, err
		}
		return v, EncodingBinary, nil
	}

	var buf []byte
	lastEscaped := -1 // index in buf of the last byte produced by an escape
	for !p.eof() {
		c := p.s[p.pos]
		if c == ',' || c == '+' {
			break
		}
		if c == '\\' {
			p.pos++
			if p.eof() {
				return "", EncodingString, p.errorf(ErrInvalidEscape, "truncated escape")
			}
			e := p.s[p.pos]
			switch {
			case isEscapable(e):
				buf = append(buf, e)
				lastEscaped = len(buf) - 1
				p.pos++
			case isHexDigit(e):
				if p.pos+1 >= len(p.s) || !isHexDigit(p.s[p.pos+1]) {
					return "", EncodingString, p.errorf(ErrInvalidEscape, "truncated hex escape")
				}
				b, err := hex.DecodeString(p.s[p.pos : p.pos+2])
				if err != nil {
					return "", EncodingString, p.errorf(ErrInvalidEscape, "bad hex escape")
				}
				buf = append(buf, b[0])
				lastEscaped = len(buf) - 1
				p.pos += 2
			default:
				if p.flags&StrictEscapes != 0 {
					return "", EncodingString, p.errorf(ErrInvalidEscape, "cannot escape %q", e)
				}
				buf = append(buf, e)
				lastEscaped = len(buf) - 1
				p.pos++
			}
			continue
		}
		if c == 0 {
			return "", EncodingString, p.errorf(ErrInvalidDN, "unescaped NUL in value")
		}
		if p.flags&StrictEscapes != 0 && (c == '"' || c == ';' || c == '<' || c == '>') {
			return "", EncodingString, p.errorf(ErrInvalidDN, "unescaped %q in value", c)
		}
		buf = append(buf, c)
		p.pos++
	}

	// Unescaped trailing spaces are insignificant; an escaped one is part
	// of the value.
	end := len(buf)
	for end > 0 && buf[end-1] == ' ' && end-1 > lastEscaped {
		end--
	}
	return string(buf[:end]), EncodingString, nil
}

// hexString consumes the hex digits of a '#'-prefixed binary value. The
// leading '#' has already been consumed.
func (p *parser) hexString() (string, error) {
	start := p.pos
	for !p.eof() && isHexDigit(p.s[p.pos]) {
		p.pos++
	}
	digits := p.s[start:p.pos]
	if len(digits) == 0 || len(digits)%2 != 0 {
		return "", p.errorf(ErrInvalidBinaryValue, "want an even, non-zero number of hex digits")
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return "", p.errorf(ErrInvalidBinaryValue, "%v", err)
	}
	if err := p.skipSpaces(); err != nil {
		return "", err
	}
	if !p.eof() && p.s[p.pos] != ',' && p.s[p.pos] != '+' {
		return "", p.errorf(ErrInvalidBinaryValue, "unexpected %q after hex digits", p.s[p.pos])
	}
	return string(raw), nil
}

// isEscapable reports whether c may follow a backslash per RFC 4514:
// the reserved characters, space, '#' and the backslash itself.
func isEscapable(c byte) bool {
	switch c {
	case '\\', '"', '+', ',', ';', '<', '>', '=', ' ', '#', 0:
		return true
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// cutPrefixFold is strings.CutPrefix with ASCII case folding on the prefix.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) {
		return s, false
	}
	if !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
