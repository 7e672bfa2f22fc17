package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		region string
		want   string
	}{
		{
			name:   "valid E.164 format",
			input:  "+972541234567",
			region: "US",
			want:   "+972541234567",
		},
		{
			name:   "international with spaces",
			input:  "+972 54 123 4567",
			region: "US",
			want:   "+972541234567",
		},
		{
			name:   "US national with parentheses",
			input:  "(212) 555-1234",
			region: "US",
			want:   "+12125551234",
		},
		{
			name:   "israeli national number",
			input:  "054-123-4567",
			region: "IL",
			want:   "+972541234567",
		},
		{
			name:   "lowercase region",
			input:  "054-123-4567",
			region: "il",
			want:   "+972541234567",
		},
		{
			name:   "leading and trailing spaces",
			input:  "  +972541234567  ",
			region: "IL",
			want:   "+972541234567",
		},
		{
			name:   "empty string",
			input:  "",
			region: "US",
			want:   "",
		},
		{
			name:   "only whitespace",
			input:  "   ",
			region: "US",
			want:   "",
		},
		{
			name:   "letters kept as typed",
			input:  " call me maybe ",
			region: "US",
			want:   "call me maybe",
		},
		{
			name:   "too short kept as typed",
			input:  "12",
			region: "US",
			want:   "12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input, tt.region)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q, %q) = %q, want %q", tt.input, tt.region, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"(212) 555-1234", "+972 54 123 4567", "not a phone"}
	for _, in := range inputs {
		once := NormalizePhone(in, "US")
		twice := NormalizePhone(once, "US")
		if once != twice {
			t.Errorf("NormalizePhone not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
