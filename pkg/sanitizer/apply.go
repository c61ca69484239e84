package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		if transform == nil {
			continue
		}
		result = transform(result)
	}

	return result
}

// Compose stores a transformation chain for reuse.
// Preferred over repeated Apply calls when the same chain runs for many inputs.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
