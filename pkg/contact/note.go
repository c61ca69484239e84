package contact

import "github.com/dmitrymomot/contactkit/pkg/validator"

// MaxNoteLength is the maximum number of characters in a Note.
const MaxNoteLength = 500

// Note is free text of at most 500 characters. Empty notes are allowed.
type Note struct {
	value string
}

func noteRules(raw string) []validator.Rule {
	return []validator.Rule{
		validator.MaxLenString("note", raw, MaxNoteLength),
	}
}

// NewNote validates raw and returns it unmodified as a Note.
func NewNote(raw string) (Note, error) {
	if err := validator.Apply(noteRules(raw)...); err != nil {
		return Note{}, invalidFormat("note", raw, err)
	}
	return Note{value: raw}, nil
}

// IsValidNote reports whether NewNote would accept raw.
func IsValidNote(raw string) bool {
	return validator.Valid(noteRules(raw)...)
}

// String returns the stored value.
func (n Note) String() string { return n.value }

// Value returns the value exactly as it was given to the constructor.
func (n Note) Value() string { return n.value }

// IsZero reports whether Note is the zero value.
func (n Note) IsZero() bool { return n.value == "" }

// Hash returns the xxhash of the stored value.
func (n Note) Hash() uint64 { return hashString(n.value) }

// Equal compares stored values exactly.
func (n Note) Equal(other Note) bool {
	return n.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (n Note) MarshalText() ([]byte, error) {
	return marshalText(n.value, IsValidNote)
}

// UnmarshalText validates text like NewNote. The receiver is left untouched on error.
func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := NewNote(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Note) MarshalJSON() ([]byte, error) {
	return marshalJSON(n.value, IsValidNote)
}

// UnmarshalJSON decodes a JSON string through NewNote. JSON null yields ErrNilValue.
func (n *Note) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalJSON(data, NewNote)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
