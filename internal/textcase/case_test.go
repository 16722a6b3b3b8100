package textcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeNFC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already NFC", "system", "system"},
		{"empty", "", ""},
		{"e acute decomposed", "café", "café"},
		{"o diaeresis decomposed", "ön", "ön"},
		{"mixed NFC and NFD", "näive café", "näive café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ComposeNFC(tt.input))
		})
	}
}

func TestToLower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii", "Linear SYSTEMS", "linear systems"},
		{"empty", "", ""},
		{"latin accents", "\u00c9COLE", "\u00e9cole"},
		{"greek", "ΣΥΣΤΗΜΑ", "συστημα"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToLower(tt.input))
		})
	}
}

func TestStripPunct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no punctuation", "systems", "systems"},
		{"trailing comma", "systems,", "systems"},
		{"brackets", "(systems)", "systems"},
		{"inner hyphen kept", "in-equations", "in-equations"},
		{"inner apostrophe kept", "don't", "don't"},
		{"curly apostrophe kept", "don’t", "don’t"},
		{"leading hyphen dropped", "-equations", "equations"},
		{"trailing hyphen dropped", "non-", "non"},
		{"inner dot dropped", "i.e", "ie"},
		{"punctuation only", ".,;", ""},
		{"inner symbol dropped", "a+b", "ab"},
		{"math symbols only", "=|<>", ""},
		{"currency", "€", ""},
		{"emoji", "graph😀", "graph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StripPunct(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"capitalized", "Systems", "systems"},
		{"quoted", "\"Linear\"", "linear"},
		{"decomposed and upper", "CAFÉ", "café"},
		{"period", ".", ""},
		{"whitespace", "  ", ""},
		{"hyphenated", "Non-Strict", "non-strict"},
		{"symbol", "+", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeConcurrent(t *testing.T) {
	t.Parallel()

	done := make(chan string, 50)
	for range 50 {
		go func() { done <- Normalize("Compatibility,") }()
	}
	for range 50 {
		assert.Equal(t, "compatibility", <-done)
	}
}
