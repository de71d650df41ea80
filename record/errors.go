package record

import (
	"fmt"
	"reflect"

	"kvcoding/coding"
)

// TypeChangeError reports an attempt to swap the wrapped value for one of another type.
type TypeChangeError struct {
	From, To reflect.Type
}

func (e *TypeChangeError) Error() string {
	return fmt.Sprintf("record wraps %s, cannot switch to %s", e.From, e.To)
}

// Unwrap lets errors.Is match coding.ErrTypeMismatch.
func (e *TypeChangeError) Unwrap() error { return coding.ErrTypeMismatch }
