package bindings

import "testing"

func TestSanitizeText(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "Boston", "Boston"},
		{"empty", "", ""},
		{"multibyte", "São Paulo", "São Paulo"},
		{"invalid byte", "Bos\xffton", "Bos�ton"},
		{"truncated rune", "São Paul\xc3", "São Paul�"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeText(tc.in)
			if got != tc.want {
				t.Fatalf("SanitizeText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
