package contact

// Remark is unconstrained free text.
type Remark struct {
	value string
}

// NewRemark accepts any string. Absence is handled by RemarkFromPointer.
func NewRemark(raw string) Remark {
	return Remark{value: raw}
}

// RemarkFromPointer returns ErrNilValue for nil and a Remark otherwise.
func RemarkFromPointer(raw *string) (Remark, error) {
	return FromPointer(raw, parseRemark)
}

func parseRemark(raw string) (Remark, error) {
	return NewRemark(raw), nil
}

// String returns the stored value.
func (r Remark) String() string { return r.value }

// Value returns the value exactly as it was given to the constructor.
func (r Remark) Value() string { return r.value }

// IsZero reports whether Remark is the zero value.
func (r Remark) IsZero() bool { return r.value == "" }

// Hash returns the xxhash of the stored value.
func (r Remark) Hash() uint64 { return hashString(r.value) }

// Equal compares stored values exactly.
func (r Remark) Equal(other Remark) bool {
	return r.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (r Remark) MarshalText() ([]byte, error) {
	return marshalText(r.value, nil)
}

// UnmarshalText validates text like NewRemark. The receiver is left untouched on error.
func (r *Remark) UnmarshalText(text []byte) error {
	*r = NewRemark(string(text))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Remark) MarshalJSON() ([]byte, error) {
	return marshalJSON(r.value, nil)
}

// UnmarshalJSON decodes a JSON string through NewRemark. JSON null yields ErrNilValue.
func (r *Remark) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalJSON(data, parseRemark)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
