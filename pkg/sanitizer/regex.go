package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Phone digit extraction
	nonDigitRegex = regexp.MustCompile(`[^0-9]`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
