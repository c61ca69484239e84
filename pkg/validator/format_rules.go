package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/contactkit/pkg/sanitizer"
)

const (
	// MaxEmailLength caps the whole address.
	MaxEmailLength = 254
	// MaxEmailLocalLength caps the part before "@".
	MaxEmailLocalLength = 64
	// MaxEmailDomainLength caps the part after "@".
	MaxEmailDomainLength = 255

	// MinPhoneDigits and MaxPhoneDigits bound the digit count of a phone number,
	// separators and the leading "+" excluded.
	MinPhoneDigits = 3
	MaxPhoneDigits = 15
)

var (
	// Optional "+" that must be followed by a digit, then digits and separators.
	phoneRegex = regexp.MustCompile(`^(?:\+[0-9]|[0-9 ()-])[0-9 ()-]*$`)

	// Single domain label: alphanumerics and inner hyphens
	domainLabelRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`)
)

// ValidEmail validates a "local@domain" address.
//
// The local part is 1-64 characters of ASCII letters, digits and "_+.-", or
// letters and digits from other scripts. It must not start or end with "." or
// "-" and must not contain "..". The domain is one or more dot-separated
// labels of ASCII letters, digits and inner hyphens. A dotted domain needs a
// last label of at least two characters; a bare host such as "localhost" has no
// such minimum. Punycode labels ("xn--") are rejected. The whole address is
// capped at 254 characters.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func isEmail(value string) bool {
	if value == "" || utf8.RuneCountInString(value) > MaxEmailLength {
		return false
	}

	at := strings.IndexByte(value, '@')
	if at < 0 || at != strings.LastIndexByte(value, '@') {
		return false
	}

	return isEmailLocal(value[:at]) && isEmailDomain(value[at+1:])
}

func isEmailLocal(local string) bool {
	if local == "" || utf8.RuneCountInString(local) > MaxEmailLocalLength {
		return false
	}

	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") ||
		strings.HasPrefix(local, "-") || strings.HasSuffix(local, "-") {
		return false
	}

	if strings.Contains(local, "..") {
		return false
	}

	for _, r := range local {
		if r < utf8.RuneSelf {
			if !isASCIIAlnum(r) && !strings.ContainsRune("_+.-", r) {
				return false
			}
			continue
		}
		// utf8.RuneError is neither a letter nor a digit
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

func isEmailDomain(domain string) bool {
	if domain == "" || len(domain) > MaxEmailDomainLength {
		return false
	}

	labels := strings.Split(domain, ".")
	for _, label := range labels {
		if !domainLabelRegex.MatchString(label) {
			return false
		}
		if strings.HasPrefix(strings.ToLower(label), "xn--") {
			return false
		}
	}

	if len(labels) > 1 && len(labels[len(labels)-1]) < 2 {
		return false
	}

	return true
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// ValidPhone validates the character structure of a phone number: an optional
// single leading "+" that must be followed by a digit, then only digits,
// spaces, hyphens and parentheses. The digit count is checked by
// ValidPhoneDigits.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "may contain only digits, spaces, hyphens, parentheses and a leading +",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPhoneDigits validates that a phone number has between 3 and 15 digits.
func ValidPhoneDigits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			n := sanitizer.CountPhoneDigits(value)
			return n >= MinPhoneDigits && n <= MaxPhoneDigits
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain between %d and %d digits", MinPhoneDigits, MaxPhoneDigits),
			TranslationKey: "validation.phone_digits",
			TranslationValues: map[string]any{
				"field": field,
				"min":   MinPhoneDigits,
				"max":   MaxPhoneDigits,
			},
		},
	}
}
