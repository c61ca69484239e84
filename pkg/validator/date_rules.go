package validator

import (
	"regexp"
)

const (
	// MaxUTCOffsetEast is +14:00 in minutes.
	MaxUTCOffsetEast = 14 * 60
	// MaxUTCOffsetWest is the magnitude of -12:00 in minutes.
	MaxUTCOffsetWest = 12 * 60
)

// Exactly one sign, two hour digits, a colon, two minute digits
var utcOffsetRegex = regexp.MustCompile(`^[+-][0-9]{2}:[0-9]{2}$`)

// ValidUTCOffset validates the lexical form "±HH:MM".
func ValidUTCOffset(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return utcOffsetRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a UTC offset in the form +HH:MM or -HH:MM",
			TranslationKey: "validation.utc_offset",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// UTCOffsetInRange validates the decoded value of a "±HH:MM" offset: hours
// 00-14, minutes 00-59, and the real-world bound -12:00 to +14:00. Values that
// do not have the lexical form fail as well.
func UTCOffsetInRange(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isUTCOffsetInRange(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be between -12:00 and +14:00",
			TranslationKey: "validation.utc_offset_range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   "-12:00",
				"max":   "+14:00",
			},
		},
	}
}

func isUTCOffsetInRange(value string) bool {
	if !utcOffsetRegex.MatchString(value) {
		return false
	}

	hours := int(value[1]-'0')*10 + int(value[2]-'0')
	minutes := int(value[4]-'0')*10 + int(value[5]-'0')
	if hours > 14 || minutes > 59 {
		return false
	}

	total := hours*60 + minutes
	if value[0] == '-' {
		return total <= MaxUTCOffsetWest
	}
	return total <= MaxUTCOffsetEast
}
