package contact

import (
	"strings"

	"github.com/dmitrymomot/contactkit/pkg/sanitizer"
	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// Email is a "local@domain" address. See validator.ValidEmail for the grammar.
type Email struct {
	value string
}

func emailRules(raw string) []validator.Rule {
	return []validator.Rule{
		validator.ValidEmail("email", raw),
	}
}

// NewEmail validates raw and stores it unmodified. The address is not
// lowercased.
func NewEmail(raw string) (Email, error) {
	if err := validator.Apply(emailRules(raw)...); err != nil {
		return Email{}, invalidFormat("email", raw, err)
	}
	return Email{value: raw}, nil
}

// IsValidEmail reports whether NewEmail would accept raw.
func IsValidEmail(raw string) bool {
	return validator.Valid(emailRules(raw)...)
}

// String returns the stored value.
func (e Email) String() string { return e.value }

// Value returns the value exactly as it was given to the constructor.
func (e Email) Value() string { return e.value }

// IsZero reports whether Email is the zero value.
func (e Email) IsZero() bool { return e.value == "" }

// Hash returns the xxhash of the stored value.
func (e Email) Hash() uint64 { return hashString(e.value) }

// Equal compares stored values exactly.
func (e Email) Equal(other Email) bool {
	return e.value == other.value
}

// Local returns the part before "@".
func (e Email) Local() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

// Domain returns the part after "@" as stored.
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

// Key returns the local part as written and the domain in lower case, which
// is how mail servers compare addresses.
func (e Email) Key() string {
	if e.value == "" {
		return ""
	}
	return e.Local() + "@" + sanitizer.ExtractEmailDomain(e.value)
}

// Masked keeps the first character of the local part and the domain.
func (e Email) Masked() string {
	return sanitizer.MaskEmail(e.value)
}

// MarshalText implements encoding.TextMarshaler. The zero value has no text
// form and fails with ErrNilValue.
func (e Email) MarshalText() ([]byte, error) {
	return marshalText(e.value, IsValidEmail)
}

// UnmarshalText validates text like NewEmail. The receiver is left untouched on error.
func (e *Email) UnmarshalText(text []byte) error {
	parsed, err := NewEmail(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The zero value encodes as null.
func (e Email) MarshalJSON() ([]byte, error) {
	return marshalJSON(e.value, IsValidEmail)
}

// UnmarshalJSON decodes a JSON string through NewEmail. JSON null yields ErrNilValue.
func (e *Email) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalJSON(data, NewEmail)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
