package dn

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

type fakeSchemaConn struct {
	subentry    string
	subentryErr error
	attrs       map[string][]string
	readErr     error

	mu    sync.Mutex
	reads int
}

func (c *fakeSchemaConn) SubschemaSubentryDN() (string, error) {
	return c.subentry, c.subentryErr
}

func (c *fakeSchemaConn) ReadSubschemaSubentry(dn string) (map[string][]string, error) {
	c.mu.Lock()
	c.reads++
	c.mu.Unlock()
	if c.readErr != nil {
		return nil, c.readErr
	}
	if dn != c.subentry {
		return nil, fmt.Errorf("no such entry: %s", dn)
	}
	return c.attrs, nil
}

func testSubschemaAttrs() map[string][]string {
	return map[string][]string{
		"attributeTypes": {
			"( 2.5.4.41 NAME 'name' EQUALITY caseIgnoreMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )",
			"( 2.5.4.3 NAME ( 'cn' 'commonName' ) SUP name )",
			"( 2.5.4.35 NAME 'userPassword' EQUALITY octetStringMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.40 )",
		},
	}
}

func TestCaseRegistryAddContains(t *testing.T) {
	reg := NewCaseRegistry()

	if reg.Contains("cn") {
		t.Error("empty registry contains cn")
	}

	reg.Add("cn", "commonName")
	tests := []struct {
		name string
		want bool
	}{
		{"cn", true},
		{"CN", true},
		{"commonname", true},
		{"COMMONNAME", true},
		{"sn", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := reg.Contains(tt.name); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	// Additive, duplicates harmless.
	reg.Add("cn", "sn")
	if reg.Len() != 3 {
		t.Errorf("Len() = %d, want 3", reg.Len())
	}

	want := []string{"cn", "commonName", "sn"}
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPopulateFromSchema(t *testing.T) {
	conn := &fakeSchemaConn{subentry: "cn=Subschema", attrs: testSubschemaAttrs()}
	reg := NewCaseRegistry()

	if err := reg.PopulateFromSchema(conn); err != nil {
		t.Fatalf("PopulateFromSchema failed: %v", err)
	}

	for _, name := range []string{"name", "cn", "commonName"} {
		if !reg.Contains(name) {
			t.Errorf("registry missing %q after population", name)
		}
	}
	if reg.Contains("userPassword") {
		t.Error("octetStringMatch attribute registered as case-insensitive")
	}
}

func TestPopulateFromSchemaErrors(t *testing.T) {
	reg := NewCaseRegistry()

	// Subentry location failure.
	locErr := errors.New("connection reset")
	conn := &fakeSchemaConn{subentryErr: locErr}
	if err := reg.PopulateFromSchema(conn); !errors.Is(err, locErr) {
		t.Errorf("location error = %v, want %v", err, locErr)
	}

	// Subentry read failure.
	readErr := errors.New("insufficient access")
	conn = &fakeSchemaConn{subentry: "cn=Subschema", readErr: readErr}
	if err := reg.PopulateFromSchema(conn); !errors.Is(err, readErr) {
		t.Errorf("read error = %v, want %v", err, readErr)
	}

	// Malformed subschema fails the call and leaves the registry intact.
	conn = &fakeSchemaConn{
		subentry: "cn=Subschema",
		attrs:    map[string][]string{"attributeTypes": {"not a definition"}},
	}
	if err := reg.PopulateFromSchema(conn); err == nil {
		t.Error("malformed subschema did not fail")
	}
	if reg.Len() != 0 {
		t.Errorf("registry polluted by failed population: %v", reg.Names())
	}
}

func TestPopulateFromSchemaConcurrent(t *testing.T) {
	conn := &fakeSchemaConn{subentry: "cn=Subschema", attrs: testSubschemaAttrs()}
	reg := NewCaseRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := reg.PopulateFromSchema(conn); err != nil {
				t.Errorf("concurrent PopulateFromSchema failed: %v", err)
			}
		}()
	}
	// Readers interleave with population.
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Contains("cn")
		}()
	}
	wg.Wait()

	if !reg.Contains("commonName") {
		t.Error("registry not populated")
	}
	conn.mu.Lock()
	reads := conn.reads
	conn.mu.Unlock()
	if reads > 16 {
		t.Errorf("subentry read %d times for 16 concurrent calls", reads)
	}
}
