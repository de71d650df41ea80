package coding

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	ErrArgumentNull    = errors.New("value must not be nil")
	ErrNoStrategyFound = errors.New("no key-value coding strategy matches the value")
	ErrKeyNotFound     = errors.New("key not found")
	ErrReadOnlyField   = errors.New("field is read-only")
	ErrNotImplemented  = errors.New("operation is not implemented")
	ErrTypeMismatch    = errors.New("value does not fit the field type")

	ErrInvalidComputedField = errors.New("computed field is not a getter method")
)

// KeyError records a failed operation on a single key.
type KeyError struct {
	Op  string
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return e.Op + " " + strconv.Quote(e.Key) + ": " + e.Err.Error()
}

func (e *KeyError) Unwrap() error { return e.Err }

func keyError(op, key string, err error) error {
	if err == nil {
		return nil
	}

	var ke *KeyError
	if errors.As(err, &ke) && ke.Key == key {
		return err
	}

	return &KeyError{Op: op, Key: key, Err: err}
}

// IsNil reports whether v is nil or holds a nil pointer, map, slice, func, chan or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
