package player

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{"Joe Root", "joe root"},
		{"  JOE   ROOT  ", "joe root"},
		{"Jos van der Berg", "jos van der berg"},
		{"SMITH", "smith"},
		{"", ""},
	}

	for _, c := range cases {
		if got := NormalizeName(c.raw); got != c.expected {
			t.Errorf("NormalizeName(%q) = %q, expected %q", c.raw, got, c.expected)
		}
	}
}
