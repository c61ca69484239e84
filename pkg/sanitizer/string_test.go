package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactkit/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	assert.Equal(t, "Blk 456", sanitizer.Trim("\t Blk 456 \n"))
	assert.Equal(t, "", sanitizer.Trim("   "))
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "collapses spaces", input: "John   Smith", expected: "John Smith"},
		{name: "folds tabs and newlines", input: "a\t\tb\nc", expected: "a b c"},
		{name: "trims edges", input: "  x  ", expected: "x"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeWhitespace(tt.input))
		})
	}
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "Line1 Line2", sanitizer.SingleLine("Line1\nLine2"))
	assert.Equal(t, "a  b", sanitizer.SingleLine("a\r\nb"))
	assert.Equal(t, "tab\tkept", sanitizer.SingleLine("tab\tkept"))
}

func TestRemoveControlChars(t *testing.T) {
	assert.Equal(t, "ab\tc\nd", sanitizer.RemoveControlChars("a\x00b\tc\nd\x07"))
	assert.Equal(t, "你好", sanitizer.RemoveControlChars("你好"))
}
