package dn

import "testing"

func TestIsDN(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"cn=Bob,dc=example,dc=com", true},
		{"", true},
		{"cn=", true},
		{"cn=Bob+sn=Smith", true},
		{"not a dn===", false},
		{"cn", false},
		{"=x", false},
		{"cn=a,", false},
		{`cn=a\`, false},
		{"cn=#zz", false},
	}

	for _, tt := range tests {
		if got := IsDN(tt.input, 0); got != tt.want {
			t.Errorf("IsDN(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"cn = Bob , dc = example", "cn=Bob,dc=example"},
		{`cn=\42ob`, "cn=Bob"},
		{"cn=Bob  ,dc=example", "cn=Bob,dc=example"},
		{"cn=#04024869", "cn=#04024869"},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.input, 0)
		if err != nil {
			t.Errorf("Normalize(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := Normalize("cn", 0); err == nil {
		t.Error("Normalize of malformed input succeeded")
	}
}
