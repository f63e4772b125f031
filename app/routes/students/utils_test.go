package students

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"messy casing and spacing", "  moHaMmAd   fairoz  ", "Mohammad Fairoz"},
		{"empty", "", ""},
		{"whitespace only", "   \t  ", ""},
		{"single word", "ayesha", "Ayesha"},
		{"already clean", "John Doe", "John Doe"},
		{"all caps", "JOHN DOE", "John Doe"},
		{"apostrophe stays lower", "o'brien", "O'brien"},
		{"hyphen stays lower", "mary-jane smith", "Mary-jane Smith"},
		{"tabs and newlines collapse", "a\tb\nc", "A B C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.input))
		})
	}
}

func TestCleanNameIdempotent(t *testing.T) {
	inputs := []string{
		"  moHaMmAd   fairoz  ",
		"",
		"JOHN DOE",
		"o'brien mac-donald",
		"a b c d",
	}
	for _, input := range inputs {
		once := CleanName(input)
		assert.Equal(t, once, CleanName(once), "input %q", input)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"", 0},
		{"abc", 0},
		{"12.5", 12.5},
		{" 40 ", 40},
		{"-10", -10},
		{"0", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAmount(tt.input), "input %q", tt.input)
	}
}
