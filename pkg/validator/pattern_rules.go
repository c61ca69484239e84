package validator

import (
	"unicode"
	"unicode/utf8"
)

// ValidPersonName accepts letters and digits from any script plus the space
// character. The first character must be a letter or digit, so blank and
// space-led values are rejected; trailing and repeated spaces are kept as-is.
// Length is checked separately with MaxLenString.
func ValidPersonName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isPersonName(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only letters, digits and spaces, and must not start with a space",
			TranslationKey: "validation.person_name",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func isPersonName(value string) bool {
	if value == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(value)
	if !isAlnum(first) {
		return false
	}

	for _, r := range value {
		if r == ' ' || isAlnum(r) || unicode.IsMark(r) {
			continue
		}
		return false
	}
	return true
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
