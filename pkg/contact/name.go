package contact

import (
	"golang.org/x/text/cases"

	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// MaxNameLength is the maximum number of characters in a Name.
const MaxNameLength = 70

// Name is a person's name: 1-70 letters, digits and spaces, not starting
// with a space.
type Name struct {
	value string
}

func nameRules(raw string) []validator.Rule {
	return []validator.Rule{
		validator.LenBetween("name", raw, 1, MaxNameLength),
		validator.ValidPersonName("name", raw),
	}
}

// NewName validates raw and stores it unmodified.
func NewName(raw string) (Name, error) {
	if err := validator.Apply(nameRules(raw)...); err != nil {
		return Name{}, invalidFormat("name", raw, err)
	}
	return Name{value: raw}, nil
}

// IsValidName reports whether NewName would accept raw.
func IsValidName(raw string) bool {
	return validator.Valid(nameRules(raw)...)
}

// String returns the stored value.
func (n Name) String() string { return n.value }

// Value returns the value exactly as it was given to the constructor.
func (n Name) Value() string { return n.value }

// IsZero reports whether Name is the zero value.
func (n Name) IsZero() bool { return n.value == "" }

// Hash returns the xxhash of the stored value.
func (n Name) Hash() uint64 { return hashString(n.value) }

// Equal is case-sensitive. Use EqualFold to ignore case.
func (n Name) Equal(other Name) bool {
	return n.value == other.value
}

// EqualFold reports whether both names are equal under Unicode case folding.
func (n Name) EqualFold(other Name) bool {
	fold := cases.Fold()
	return fold.String(n.value) == fold.String(other.value)
}

// MarshalText implements encoding.TextMarshaler. The zero value has no text
// form and fails with ErrNilValue.
func (n Name) MarshalText() ([]byte, error) {
	return marshalText(n.value, IsValidName)
}

// UnmarshalText validates text like NewName. The receiver is left untouched on error.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := NewName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The zero value encodes as null.
func (n Name) MarshalJSON() ([]byte, error) {
	return marshalJSON(n.value, IsValidName)
}

// UnmarshalJSON decodes a JSON string through NewName. JSON null yields ErrNilValue.
func (n *Name) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalJSON(data, NewName)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
