package dn

import (
	"testing"

	"github.com/dirwire/ldapdn/schema"
)

func TestCompareDNTypesFoldAlways(t *testing.T) {
	// Attribute type names are case-insensitive regardless of any
	// registry; values here are byte-identical.
	equal, err := CompareDN("CN=Bob,DC=example,DC=com", "cn=Bob,dc=example,dc=com")
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("type case difference compared unequal")
	}
}

func TestCompareDNValueCaseNeedsRegistry(t *testing.T) {
	empty := Comparator{Registry: NewCaseRegistry()}
	equal, err := empty.Equal("cn=BOB,dc=x", "cn=bob,dc=x")
	if err != nil {
		t.Fatal(err)
	}
	if equal {
		t.Error("value case difference compared equal with empty registry")
	}

	reg := NewCaseRegistry()
	reg.Add("cn")
	withCN := Comparator{Registry: reg}
	equal, err = withCN.Equal("cn=BOB,dc=x", "cn=bob,dc=x")
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("value case difference compared unequal with cn registered")
	}

	// The registry governs values only; dc values still compare exactly.
	equal, err = withCN.Equal("cn=BOB,dc=X", "cn=bob,dc=x")
	if err != nil {
		t.Fatal(err)
	}
	if equal {
		t.Error("unregistered dc value case difference compared equal")
	}
}

func TestCompareDNWithSchemaDefaults(t *testing.T) {
	reg := NewCaseRegistry()
	reg.PopulateFromSubschema(schema.Defaults())
	cmp := Comparator{Registry: reg}

	equal, err := cmp.Equal("CN=Bob,DC=Example,DC=COM", "cn=Bob,dc=example,dc=com")
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("caseIgnore attributes from the default schema compared unequal")
	}

	// Registry lookup is itself case-insensitive: names were registered
	// as "cn"/"commonName", queried here via the folded parsed type "CN".
	equal, err = cmp.Equal("commonName=ALICE,dc=x", "COMMONNAME=alice,dc=x")
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("alias lookup in registry failed")
	}
}

func TestCompareDNStructure(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"RDN order matters", "a=1,b=2", "b=2,a=1", false},
		{"AVA order does not", "a=1+b=2,c=3", "b=2+a=1,c=3", true},
		{"different depth", "a=1,b=2", "a=1", false},
		{"different AVA count", "a=1+b=2", "a=1", false},
		{"empty equals empty", "", "", true},
		{"empty vs non-empty", "", "a=1", false},
		{"escaping is irrelevant after parse", `cn=\42ob`, "cn=Bob", true},
		{"binary differs from same-byte string", "cn=#4869", "cn=Hi", false},
		{"binary equals binary", "cn=#4869,dc=x", "cn=#4869,dc=x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareDN(tt.a, tt.b)
			if err != nil {
				t.Fatalf("CompareDN(%q, %q) failed: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("CompareDN(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareDNPropagatesParseErrors(t *testing.T) {
	if _, err := CompareDN("not a dn===", "cn=x"); err == nil {
		t.Error("malformed first argument did not propagate")
	}
	if _, err := CompareDN("cn=x", "not a dn==="); err == nil {
		t.Error("malformed second argument did not propagate")
	}
}

func TestAncestorOf(t *testing.T) {
	var c Comparator
	tests := []struct {
		name            string
		ancestor, child string
		want            bool
	}{
		{"grandparent", "dc=example,dc=com", "uid=alice,ou=users,dc=example,dc=com", true},
		{"parent", "ou=users,dc=example,dc=com", "uid=alice,ou=users,dc=example,dc=com", true},
		{"type case folded", "DC=example,DC=com", "uid=alice,dc=example,dc=com", true},
		{"self", "dc=example,dc=com", "dc=example,dc=com", false},
		{"unrelated", "dc=other,dc=com", "uid=alice,dc=example,dc=com", false},
		{"reversed", "uid=alice,dc=example,dc=com", "dc=example,dc=com", false},
		{"root of everything", "", "dc=com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.AncestorOf(tt.ancestor, tt.child)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("AncestorOf(%q, %q) = %v, want %v", tt.ancestor, tt.child, got, tt.want)
			}
		})
	}
}

func TestParentOf(t *testing.T) {
	var c Comparator

	ok, err := c.ParentOf("ou=users,dc=example", "uid=alice,ou=users,dc=example")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("direct parent not recognized")
	}

	ok, err = c.ParentOf("dc=example", "uid=alice,ou=users,dc=example")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("grandparent reported as parent")
	}
}

func BenchmarkCompareDN(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := CompareDN("CN=Bob+SN=Smith,DC=example", "sn=Smith+cn=Bob,dc=example"); err != nil {
			b.Fatal(err)
		}
	}
}
