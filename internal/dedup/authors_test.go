package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple lowercase",
			input:    "John Smith",
			expected: "john smith",
		},
		{
			name:     "extra whitespace",
			input:    "  John   Smith  ",
			expected: "john smith",
		},
		{
			name:     "last comma first format",
			input:    "SMITH, John",
			expected: "john smith",
		},
		{
			name:     "comma with empty first part",
			input:    "Smith,",
			expected: "smith",
		},
		{
			name:     "punctuation stripped",
			input:    "O'Brien, Mary-Jane",
			expected: "maryjane obrien",
		},
		{
			name:     "initials with periods",
			input:    "J. R. Smith",
			expected: "j r smith",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only punctuation",
			input:    "...",
			expected: "",
		},
		{
			name:     "unicode letters preserved",
			input:    "José García",
			expected: "josé garcía",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestJoinAuthors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		authors  []string
		expected string
	}{
		{
			name:     "two authors",
			authors:  []string{"John Smith", "Jane Doe"},
			expected: "john smith; jane doe",
		},
		{
			name:     "last comma first reordered",
			authors:  []string{"Smith, John", "DOE, Jane"},
			expected: "john smith; jane doe",
		},
		{
			name:     "empty names dropped",
			authors:  []string{"John Smith", "", "  "},
			expected: "john smith",
		},
		{
			name:     "nil list",
			authors:  nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, joinAuthors(tt.authors))
		})
	}
}
