package schema

import (
	"fmt"
	"strings"
)

// Subschema holds the parsed definitions of one subschema subentry.
type Subschema struct {
	attrs  []*AttributeType
	byName map[string]*AttributeType // lowercased name or OID -> definition
	rules  []*MatchingRule
}

// ParseSubschema builds a Subschema from the raw attributes of a
// subschema subentry, keyed by attribute description. Only the
// "attributeTypes" and "matchingRules" values are consumed; keys are
// matched case-insensitively and other keys are ignored. A malformed
// definition fails the whole call.
func ParseSubschema(raw map[string][]string) (*Subschema, error) {
	sub := &Subschema{byName: make(map[string]*AttributeType)}
	for key, values := range raw {
		switch strings.ToLower(key) {
		case "attributetypes":
			for _, v := range values {
				at, err := ParseAttributeType(v)
				if err != nil {
					return nil, fmt.Errorf("attributeTypes value %q: %w", v, err)
				}
				sub.addAttributeType(at)
			}
		case "matchingrules":
			for _, v := range values {
				mr, err := ParseMatchingRule(v)
				if err != nil {
					return nil, fmt.Errorf("matchingRules value %q: %w", v, err)
				}
				sub.rules = append(sub.rules, mr)
			}
		}
	}
	return sub, nil
}

func (s *Subschema) addAttributeType(at *AttributeType) {
	s.attrs = append(s.attrs, at)
	s.byName[strings.ToLower(at.OID)] = at
	for _, name := range at.Names {
		s.byName[strings.ToLower(name)] = at
	}
}

// AttributeTypes returns all attribute type definitions in the order they
// were added.
func (s *Subschema) AttributeTypes() []*AttributeType {
	return s.attrs
}

// MatchingRules returns all matching rule definitions in the order they
// were added.
func (s *Subschema) MatchingRules() []*MatchingRule {
	return s.rules
}

// AttributeType looks up a definition by any of its names or by OID,
// case-insensitively. It returns nil if the subschema has no such type.
func (s *Subschema) AttributeType(name string) *AttributeType {
	return s.byName[strings.ToLower(name)]
}

// EffectiveEquality returns the equality matching rule governing at,
// resolving SUP chains: an attribute type without its own EQUALITY
// inherits the rule of its superior. The empty string means no rule is
// declared anywhere in the chain. Broken or cyclic chains resolve to
// whatever was found before the chain ended.
func (s *Subschema) EffectiveEquality(at *AttributeType) string {
	seen := make(map[*AttributeType]bool)
	for at != nil && !seen[at] {
		if at.Equality != "" {
			return at.Equality
		}
		seen[at] = true
		if at.Superior == "" {
			break
		}
		at = s.AttributeType(at.Superior)
	}
	return ""
}

// CaseIgnoreNames returns every name (including aliases) of every
// attribute type whose effective equality matching rule name starts with
// "caseIgnore". The result feeds a dn.CaseRegistry.
func (s *Subschema) CaseIgnoreNames() []string {
	var names []string
	for _, at := range s.attrs {
		if !strings.HasPrefix(s.EffectiveEquality(at), caseIgnorePrefix) {
			continue
		}
		names = append(names, at.Names...)
	}
	return names
}
