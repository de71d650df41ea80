package record

import "reflect"

// Equaler is implemented by values defining their own equality.
// Equal must be reflexive, symmetric and consistent, or Contains and RemoveEntry misbehave.
type Equaler interface {
	Equal(other any) bool
}

// Equal reports whether a and b are equal: by a's Equaler implementation when present,
// otherwise by reflect.DeepEqual.
func Equal(a, b any) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}

	return reflect.DeepEqual(a, b)
}
