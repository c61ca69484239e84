package contact

import (
	"cmp"
	"time"

	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// Offset is a fixed UTC offset in the canonical form "±HH:MM", bounded to
// -12:00 .. +14:00.
//
// Ordering (Compare) is numeric on TotalMinutes while equality is by the
// canonical string, so "-00:00" and "+00:00" compare equal yet are different
// values.
type Offset struct {
	value   string
	minutes int
}

// NewOffset validates raw in two phases, lexical form first and range second,
// and decodes its signed minutes.
func NewOffset(raw string) (Offset, error) {
	if err := validator.Apply(validator.ValidUTCOffset("offset", raw)); err != nil {
		return Offset{}, invalidFormat("offset", raw, err)
	}
	if err := validator.Apply(validator.UTCOffsetInRange("offset", raw)); err != nil {
		return Offset{}, invalidFormat("offset", raw, err)
	}

	// The lexical check guarantees raw is "±DD:DD".
	hours := int(raw[1]-'0')*10 + int(raw[2]-'0')
	minutes := int(raw[4]-'0')*10 + int(raw[5]-'0')
	total := hours*60 + minutes
	if raw[0] == '-' {
		total = -total
	}

	return Offset{value: raw, minutes: total}, nil
}

// IsValidOffset reports whether NewOffset would accept raw.
func IsValidOffset(raw string) bool {
	return validator.Valid(
		validator.ValidUTCOffset("offset", raw),
		validator.UTCOffsetInRange("offset", raw),
	)
}

// OffsetOf returns the offset of t's location at instant t. Seconds are
// truncated.
func OffsetOf(t time.Time) (Offset, error) {
	return NewOffset(t.Format("-07:00"))
}

// String returns the stored value.
func (o Offset) String() string { return o.value }

// Value returns the value exactly as it was given to the constructor.
func (o Offset) Value() string { return o.value }

// IsZero reports whether Offset is the zero value.
func (o Offset) IsZero() bool { return o.value == "" }

// Hash returns the xxhash of the stored value.
func (o Offset) Hash() uint64 { return hashString(o.value) }

// Equal compares canonical strings: "-00:00" is not equal to "+00:00".
func (o Offset) Equal(other Offset) bool {
	return o.value == other.value
}

// TotalMinutes returns the signed offset in minutes, e.g. -720 for "-12:00".
func (o Offset) TotalMinutes() int { return o.minutes }

// IsNegative reports whether the offset lies west of UTC. "-00:00" does not.
func (o Offset) IsNegative() bool { return o.minutes < 0 }

// Compare returns -1, 0 or +1 by TotalMinutes.
func (o Offset) Compare(other Offset) int {
	return cmp.Compare(o.minutes, other.minutes)
}

// CompareOffsets is Compare in a form usable with slices.SortFunc.
func CompareOffsets(a, b Offset) int {
	return a.Compare(b)
}

// Duration returns the offset as a signed duration.
func (o Offset) Duration() time.Duration {
	return time.Duration(o.minutes) * time.Minute
}

// Location returns a fixed zone named by the canonical string.
func (o Offset) Location() *time.Location {
	return time.FixedZone(o.value, o.minutes*60)
}

// In returns t in the offset's fixed zone.
func (o Offset) In(t time.Time) time.Time {
	return t.In(o.Location())
}

// MarshalText implements encoding.TextMarshaler. The zero value has no text
// form and fails with ErrNilValue.
func (o Offset) MarshalText() ([]byte, error) {
	return marshalText(o.value, IsValidOffset)
}

// UnmarshalText validates text like NewOffset. The receiver is left untouched on error.
func (o *Offset) UnmarshalText(text []byte) error {
	parsed, err := NewOffset(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The zero value encodes as null.
func (o Offset) MarshalJSON() ([]byte, error) {
	return marshalJSON(o.value, IsValidOffset)
}

// UnmarshalJSON decodes a JSON string through NewOffset. JSON null yields ErrNilValue.
func (o *Offset) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalJSON(data, NewOffset)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
