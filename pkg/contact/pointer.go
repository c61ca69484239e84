package contact

// FromPointer builds a field from an optional raw value. A nil raw yields
// ErrNilValue without calling parse.
func FromPointer[T any](raw *string, parse func(string) (T, error)) (T, error) {
	if raw == nil {
		var zero T
		return zero, ErrNilValue
	}
	return parse(*raw)
}

// CheckPointer is the predicate form of FromPointer: nil yields
// (false, ErrNilValue), anything else (valid(*raw), nil).
func CheckPointer(raw *string, valid func(string) bool) (bool, error) {
	if raw == nil {
		return false, ErrNilValue
	}
	return valid(*raw), nil
}

// Must panics if err is not nil. Intended for constants and tests.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
