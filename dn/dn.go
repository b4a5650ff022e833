package dn

import (
	"encoding/hex"
	"strings"

	json "github.com/goccy/go-json"
)

// ValueEncoding records how an attribute value was given in the DN string.
type ValueEncoding int

const (
	// EncodingString is a plain UTF-8 string value, possibly containing
	// characters that were backslash-escaped in the DN string.
	EncodingString ValueEncoding = iota

	// EncodingBinary is a value that was given as '#' followed by the
	// hex-encoded BER encoding of the value (RFC 4514, section 2.4).
	// The Value field holds the raw BER octets after hex decoding.
	EncodingBinary
)

// String returns the string representation of the ValueEncoding.
func (e ValueEncoding) String() string {
	switch e {
	case EncodingString:
		return "string"
	case EncodingBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// AttributeTypeAndValue is a single attribute type and value pair of an RDN.
type AttributeTypeAndValue struct {
	Type     string        // attribute description or numeric OID, e.g. "cn" or "2.5.4.3"
	Value    string        // raw value octets, unescaped and hex-decoded
	Encoding ValueEncoding // how the value was encoded in the DN string
}

// String renders the pair as it appears in a DN string. String values are
// escaped with Escape; binary values are rendered as '#' plus hex so that
// the encoding survives a re-parse.
func (a AttributeTypeAndValue) String() string {
	return a.Type + "=" + a.escapedValue()
}

// escapedValue renders just the value side of the pair.
func (a AttributeTypeAndValue) escapedValue() string {
	if a.Encoding == EncodingBinary {
		return "#" + hex.EncodeToString([]byte(a.Value))
	}
	return Escape(a.Value)
}

// RDN is a relative distinguished name: one or more attribute type and
// value pairs. The order of pairs is preserved from the DN string but is
// not significant for equality.
type RDN []AttributeTypeAndValue

// String joins the pairs of the RDN with '+'.
func (r RDN) String() string {
	avas := make([]string, len(r))
	for i, ava := range r {
		avas[i] = ava.String()
	}
	return strings.Join(avas, "+")
}

// DN is a distinguished name: an ordered sequence of RDNs, most specific
// first. The order of RDNs is significant. An empty DN is a valid DN and
// formats as the empty string.
type DN []RDN

// String renders the DN in canonical LDAPv3 form, joining RDNs with ','.
// It is the inverse of Parse and never fails. Attribute type strings are
// emitted as-is; callers constructing a DN by hand are responsible for
// their validity.
func (d DN) String() string {
	rdns := make([]string, len(d))
	for i, rdn := range d {
		rdns[i] = rdn.String()
	}
	return strings.Join(rdns, ",")
}

// Parent returns the DN with its most specific RDN removed. The parent of
// an empty or single-RDN DN is the empty DN.
func (d DN) Parent() DN {
	if len(d) <= 1 {
		return DN{}
	}
	return d[1:]
}

// Depth returns the number of RDNs in the DN.
func (d DN) Depth() int {
	return len(d)
}

type avaJSON struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
	Hex   string `json:"hex,omitempty"`
}

// MarshalJSON renders the pair with string values verbatim and binary
// values hex-encoded under a separate key.
func (a AttributeTypeAndValue) MarshalJSON() ([]byte, error) {
	out := avaJSON{Type: a.Type}
	if a.Encoding == EncodingBinary {
		out.Hex = hex.EncodeToString([]byte(a.Value))
	} else {
		out.Value = a.Value
	}
	return json.Marshal(out)
}
