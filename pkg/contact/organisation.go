package contact

import "github.com/dmitrymomot/contactkit/pkg/validator"

// MaxOrganisationLength is the maximum number of characters in an Organisation.
const MaxOrganisationLength = 60

// Organisation is free text of at most 60 characters. Empty is allowed.
type Organisation struct {
	value string
}

func organisationRules(raw string) []validator.Rule {
	return []validator.Rule{
		validator.MaxLenString("organisation", raw, MaxOrganisationLength),
	}
}

// NewOrganisation validates raw and returns it unmodified as a Organisation.
func NewOrganisation(raw string) (Organisation, error) {
	if err := validator.Apply(organisationRules(raw)...); err != nil {
		return Organisation{}, invalidFormat("organisation", raw, err)
	}
	return Organisation{value: raw}, nil
}

// IsValidOrganisation reports whether NewOrganisation would accept raw.
func IsValidOrganisation(raw string) bool {
	return validator.Valid(organisationRules(raw)...)
}

// String returns the stored value.
func (o Organisation) String() string { return o.value }

// Value returns the value exactly as it was given to the constructor.
func (o Organisation) Value() string { return o.value }

// IsZero reports whether Organisation is the zero value.
func (o Organisation) IsZero() bool { return o.value == "" }

// Hash returns the xxhash of the stored value.
func (o Organisation) Hash() uint64 { return hashString(o.value) }

// Equal compares stored values exactly.
func (o Organisation) Equal(other Organisation) bool {
	return o.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (o Organisation) MarshalText() ([]byte, error) {
	return marshalText(o.value, IsValidOrganisation)
}

// UnmarshalText validates text like NewOrganisation. The receiver is left untouched on error.
func (o *Organisation) UnmarshalText(text []byte) error {
	parsed, err := NewOrganisation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o Organisation) MarshalJSON() ([]byte, error) {
	return marshalJSON(o.value, IsValidOrganisation)
}

// UnmarshalJSON decodes a JSON string through NewOrganisation. JSON null yields ErrNilValue.
func (o *Organisation) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalJSON(data, NewOrganisation)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
