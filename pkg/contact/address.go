package contact

import "github.com/dmitrymomot/contactkit/pkg/validator"

// MaxAddressLength is the maximum number of characters in an Address.
const MaxAddressLength = 255

// Address is free text of 1-255 characters that is not blank.
type Address struct {
	value string
}

func addressRules(raw string) []validator.Rule {
	return []validator.Rule{
		validator.RequiredString("address", raw),
		validator.MaxLenString("address", raw, MaxAddressLength),
	}
}

// NewAddress validates raw and stores it unmodified.
func NewAddress(raw string) (Address, error) {
	if err := validator.Apply(addressRules(raw)...); err != nil {
		return Address{}, invalidFormat("address", raw, err)
	}
	return Address{value: raw}, nil
}

// IsValidAddress reports whether NewAddress would accept raw.
func IsValidAddress(raw string) bool {
	return validator.Valid(addressRules(raw)...)
}

// String returns the stored value.
func (a Address) String() string { return a.value }

// Value returns the value exactly as it was given to the constructor.
func (a Address) Value() string { return a.value }

// IsZero reports whether Address is the zero value.
func (a Address) IsZero() bool { return a.value == "" }

// Hash returns the xxhash of the stored value.
func (a Address) Hash() uint64 { return hashString(a.value) }

// Equal compares stored values exactly.
func (a Address) Equal(other Address) bool {
	return a.value == other.value
}

// MarshalText implements encoding.TextMarshaler. The zero value has no text
// form and fails with ErrNilValue.
func (a Address) MarshalText() ([]byte, error) {
	return marshalText(a.value, IsValidAddress)
}

// UnmarshalText validates text like NewAddress. The receiver is left untouched on error.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := NewAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The zero value encodes as null.
func (a Address) MarshalJSON() ([]byte, error) {
	return marshalJSON(a.value, IsValidAddress)
}

// UnmarshalJSON decodes a JSON string through NewAddress. JSON null yields ErrNilValue.
func (a *Address) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalJSON(data, NewAddress)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
