package dn

import (
	"sort"

	"golang.org/x/text/cases"
)

// Comparator performs schema-aware structural equality checks between
// DNs. Registry supplies the attribute types whose values compare
// case-insensitively; nil means DefaultRegistry. Flags are threaded
// through to Parse.
//
// The zero Comparator is ready to use and matches the behavior of the
// package-level CompareDN.
type Comparator struct {
	Registry *CaseRegistry
	Flags    ParseFlags
}

// CompareDN reports whether two DN strings denote the same DN, consulting
// DefaultRegistry for value case sensitivity. Parse failures propagate.
func CompareDN(a, b string) (bool, error) {
	var c Comparator
	return c.Equal(a, b)
}

// Equal reports whether two DN strings denote the same DN.
//
// Both strings are parsed; any parse failure propagates. RDN order is
// significant. Within one RDN the order of pairs is not: each RDN is
// normalized to a sorted set of (folded type, normalized value, encoding)
// triples before comparison. Attribute type names always compare
// case-insensitively; a value is case-folded only when its attribute type
// is in the registry.
func (c *Comparator) Equal(a, b string) (bool, error) {
	da, err := Parse(a, c.Flags)
	if err != nil {
		return false, err
	}
	db, err := Parse(b, c.Flags)
	if err != nil {
		return false, err
	}
	return c.EqualDN(da, db), nil
}

// EqualDN is Equal over already parsed DNs.
func (c *Comparator) EqualDN(a, b DN) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !c.equalRDN(a[i], b[i]) {
			return false
		}
	}
	return true
}

// AncestorOf reports whether ancestor is a proper ancestor of child, i.e.
// child has more RDNs and ends with ancestor's RDN sequence.
func (c *Comparator) AncestorOf(ancestor, child string) (bool, error) {
	da, err := Parse(ancestor, c.Flags)
	if err != nil {
		return false, err
	}
	dc, err := Parse(child, c.Flags)
	if err != nil {
		return false, err
	}
	if len(dc) <= len(da) {
		return false, nil
	}
	return c.EqualDN(dc[len(dc)-len(da):], da), nil
}

// ParentOf reports whether parent is the immediate parent of child.
func (c *Comparator) ParentOf(parent, child string) (bool, error) {
	dp, err := Parse(parent, c.Flags)
	if err != nil {
		return false, err
	}
	dc, err := Parse(child, c.Flags)
	if err != nil {
		return false, err
	}
	if len(dc) != len(dp)+1 {
		return false, nil
	}
	return c.EqualDN(dc.Parent(), dp), nil
}

func (c *Comparator) registry() *CaseRegistry {
	if c.Registry != nil {
		return c.Registry
	}
	return DefaultRegistry
}

type normAVA struct {
	typ      string
	val      string
	encoding ValueEncoding
}

func (c *Comparator) equalRDN(a, b RDN) bool {
	if len(a) != len(b) {
		return false
	}
	na := c.normalizeRDN(a)
	nb := c.normalizeRDN(b)
	for i := range na {
		if na[i] != nb[i] {
			return false
		}
	}
	return true
}

// normalizeRDN folds attribute types, folds registered values and sorts
// the pairs, turning the RDN into a canonical set representation.
func (c *Comparator) normalizeRDN(rdn RDN) []normAVA {
	reg := c.registry()
	out := make([]normAVA, len(rdn))
	for i, ava := range rdn {
		n := normAVA{typ: fold(ava.Type), val: ava.Value, encoding: ava.Encoding}
		if ava.Encoding == EncodingString && reg.Contains(n.typ) {
			n.val = fold(ava.Value)
		}
		out[i] = n
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].typ != out[j].typ {
			return out[i].typ < out[j].typ
		}
		if out[i].val != out[j].val {
			return out[i].val < out[j].val
		}
		return out[i].encoding < out[j].encoding
	})
	return out
}

// fold case-folds s for comparison. Unicode case folding, not ASCII
// lowering: directory strings are UTF-8.
func fold(s string) string {
	return cases.Fold().String(s)
}
