package sanitizer

import (
	"reflect"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  Jo Doe  ",
			want:  "Jo Doe",
		},
		{
			name:  "multiple spaces between words",
			input: "Jo    Doe",
			want:  "Jo Doe",
		},
		{
			name:  "tabs and newlines",
			input: "Jo\t\nDoe",
			want:  "Jo Doe",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: " \t ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Jo@Example.COM "); got != "jo@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
	if got := NormalizeEmail("not-an-email"); got != "not-an-email" {
		t.Errorf("NormalizeEmail should leave invalid input for the validator, got %q", got)
	}
}

func TestNormalizeText_KeepsLineBreaks(t *testing.T) {
	in := "  Hello\n\nWe need an agent.  "
	want := "Hello\n\nWe need an agent."
	if got := NormalizeText(in); got != want {
		t.Errorf("NormalizeText(%q) = %q, want %q", in, got, want)
	}
}

func TestNormalizeServices(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "keeps first-seen order",
			input: []string{"svc3", "svc1"},
			want:  []string{"svc3", "svc1"},
		},
		{
			name:  "removes duplicates",
			input: []string{"svc1", " svc1 ", "svc2", "svc1"},
			want:  []string{"svc1", "svc2"},
		},
		{
			name:  "filters empty strings",
			input: []string{"", "  ", "svc5"},
			want:  []string{"svc5"},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeServices(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeServices(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
