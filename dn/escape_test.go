package dn

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Bob", "Bob"},
		{"leading hash", "#abc", `\#abc`},
		{"leading space", " abc", `\ abc`},
		{"trailing space", "abc ", `abc\ `},
		{"comma and plus", "a,b+c", `a\,b\+c`},
		{"backslash", `a\b`, `a\\b`},
		{"equals", "a=b", `a\=b`},
		{"quote", `a"b`, `a\"b`},
		{"angle brackets", "a<b>c", `a\<b\>c`},
		{"semicolon", "a;b", `a\;b`},
		{"nul byte", "a\x00b", "a\\\x00b"},
		{"inner hash stays bare", "a#b", "a#b"},
		{"inner space stays bare", "a b", "a b"},
		{"hash not at start after escape", ",#", `\,#`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	values := []string{
		"Bob",
		"Doe, John",
		"a+b=c",
		"#hash",
		" padded ",
		`back\slash`,
		"semi;colon",
		"ünïcode",
	}

	for _, v := range values {
		d, err := Parse("cn="+Escape(v), 0)
		if err != nil {
			t.Errorf("Parse(cn=Escape(%q)) failed: %v", v, err)
			continue
		}
		if got := d[0][0].Value; got != v {
			t.Errorf("round trip of %q through Escape/Parse = %q", v, got)
		}
	}
}
