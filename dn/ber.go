package dn

import (
	"errors"
	"fmt"

	ber "github.com/go-asn1-ber/asn1-ber"
)

// ErrNotBinary reports a BER decode attempt on a plain string value.
var ErrNotBinary = errors.New("value is not binary encoded")

// DecodeBER decodes the BER packet carried by a binary attribute value.
// RFC 4514, section 2.4: the hexstring after '#' is the BER encoding of
// the attribute value, so this recovers its structure.
func (a AttributeTypeAndValue) DecodeBER() (*ber.Packet, error) {
	if a.Encoding != EncodingBinary {
		return nil, ErrNotBinary
	}
	pkt, err := ber.DecodePacketErr([]byte(a.Value))
	if err != nil {
		return nil, fmt.Errorf("decoding BER value of %q: %w", a.Type, err)
	}
	return pkt, nil
}
