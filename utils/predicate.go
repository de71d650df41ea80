package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// IsOneOf reports whether value equals any of the candidates.
func IsOneOf[T comparable](value T, candidates ...T) bool {
	for _, c := range candidates {
		if value == c {
			return true
		}
	}

	return false
}
