package contact

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

var jsonNull = []byte("null")

// absent reports whether value is the zero value of a field that rejects the
// empty string. Such a value was never constructed and is encoded as missing.
func absent(value string, valid func(string) bool) bool {
	return value == "" && valid != nil && !valid("")
}

// marshalJSON encodes a field as a JSON string, or as null when it is absent.
// Decoding null into a value field yields ErrNilValue; a pointer field stays nil.
func marshalJSON(value string, valid func(string) bool) ([]byte, error) {
	if absent(value, valid) {
		return jsonNull, nil
	}
	return json.Marshal(value)
}

func marshalText(value string, valid func(string) bool) ([]byte, error) {
	if absent(value, valid) {
		return nil, ErrNilValue
	}
	return []byte(value), nil
}

// unmarshalJSON decodes a JSON string into a field. JSON null maps to
// ErrNilValue.
func unmarshalJSON[T any](data []byte, parse func(string) (T, error)) (T, error) {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		var zero T
		return zero, fmt.Errorf("contact: decode json: %w", err)
	}
	return FromPointer(raw, parse)
}

func hashString(value string) uint64 {
	return xxhash.Sum64String(value)
}
