package contact

import (
	"fmt"

	"github.com/dmitrymomot/contactkit/pkg/callingcode"
	"github.com/dmitrymomot/contactkit/pkg/sanitizer"
	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// Phone is a phone number made of digits, spaces, hyphens, parentheses and an
// optional leading "+", with 3 to 15 digits. Numbers with a leading "+" carry
// a detected calling code.
type Phone struct {
	value string
	code  string
	known bool
}

func phoneRules(raw string) []validator.Rule {
	return []validator.Rule{
		validator.ValidPhone("phone", raw),
		validator.ValidPhoneDigits("phone", raw),
	}
}

// NewPhone validates raw, stores it unmodified and detects its calling code.
func NewPhone(raw string) (Phone, error) {
	if err := validator.Apply(phoneRules(raw)...); err != nil {
		return Phone{}, invalidFormat("phone", raw, err)
	}

	code, known := callingcode.FromNumber(raw)
	return Phone{value: raw, code: code, known: known}, nil
}

// IsValidPhone reports whether NewPhone would accept raw.
func IsValidPhone(raw string) bool {
	return validator.Valid(phoneRules(raw)...)
}

// String renders "<value> (<code>)" for international numbers and the bare
// value for domestic ones.
func (p Phone) String() string {
	if p.code == "" {
		return p.value
	}
	return fmt.Sprintf("%s (%s)", p.value, p.code)
}

// Value returns the value exactly as it was given to the constructor.
func (p Phone) Value() string { return p.value }

// IsZero reports whether Phone is the zero value.
func (p Phone) IsZero() bool { return p.value == "" }

// Hash returns the xxhash of the stored value.
func (p Phone) Hash() uint64 { return hashString(p.value) }

// Equal compares the stored value only; the calling code is derived from it.
func (p Phone) Equal(other Phone) bool {
	return p.value == other.value
}

// CountryCode returns the detected calling code without "+", or "" for a
// domestic number.
func (p Phone) CountryCode() string { return p.code }

// HasCountryCode reports whether the number was written with a leading "+".
func (p Phone) HasCountryCode() bool { return p.code != "" }

// KnownCountryCode reports whether the calling code is in the ITU table.
// Unknown codes fall back to the first digit.
func (p Phone) KnownCountryCode() bool { return p.known }

// Region returns the primary ISO 3166-1 region of the calling code, or "".
func (p Phone) Region() string {
	if !p.known {
		return ""
	}
	entry, ok := callingcode.Lookup(p.code)
	if !ok || len(entry.Regions) == 0 {
		return ""
	}
	return entry.Regions[0]
}

// Digits returns the number without separators or the leading "+".
func (p Phone) Digits() string {
	return sanitizer.ExtractPhoneDigits(p.value)
}

// Key returns a comparison key: "+" and the digits for international numbers,
// the bare digits otherwise. "+65 9876 5432" and "+65-9876-5432" share a key
// while Equal tells them apart.
func (p Phone) Key() string {
	return sanitizer.NormalizePhone(p.value)
}

// Masked hides all but the last four digits. Use it when logging.
func (p Phone) Masked() string {
	return sanitizer.MaskPhone(p.value)
}

// MarshalText implements encoding.TextMarshaler. The zero value has no text
// form and fails with ErrNilValue.
func (p Phone) MarshalText() ([]byte, error) {
	return marshalText(p.value, IsValidPhone)
}

// UnmarshalText validates text like NewPhone. The receiver is left untouched on error.
func (p *Phone) UnmarshalText(text []byte) error {
	parsed, err := NewPhone(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The zero value encodes as null.
func (p Phone) MarshalJSON() ([]byte, error) {
	return marshalJSON(p.value, IsValidPhone)
}

// UnmarshalJSON decodes a JSON string through NewPhone. JSON null yields ErrNilValue.
func (p *Phone) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalJSON(data, NewPhone)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
