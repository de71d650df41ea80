package coding

import (
	"fmt"
	"reflect"
)

// Getter describes a method exposed as a computed, read-only key.
type Getter struct {
	Name   string
	Index  int // method index on the pointer type
	Result reflect.Type
}

// ParseGetter inspects the method name on ptr, a pointer-to-struct type, and returns
// its Getter description if it can serve as a computed field.
//
// Supports methods shaped as:
//   - func (T) Name() Result
//   - func (*T) Name() Result
func ParseGetter(ptr reflect.Type, name string) (Getter, error) {
	if ptr.Kind() != reflect.Pointer || ptr.Elem().Kind() != reflect.Struct {
		return Getter{}, fmt.Errorf("%w: %s is not a pointer to a struct", ErrInvalidComputedField, ptr)
	}

	method, ok := ptr.MethodByName(name)
	if !ok {
		return Getter{}, fmt.Errorf("%w: %s has no exported method %q", ErrInvalidComputedField, ptr.Elem(), name)
	}

	// In(0) is the receiver
	fnType := method.Type
	if fnType.NumIn() != 1 || fnType.NumOut() != 1 {
		return Getter{}, fmt.Errorf("%w: %s.%s must take no arguments and return one value, got %s",
			ErrInvalidComputedField, ptr.Elem(), name, fnType)
	}

	return Getter{Name: name, Index: method.Index, Result: fnType.Out(0)}, nil
}

// Call invokes the getter on ptr, a pointer to the struct it was parsed from.
func (g Getter) Call(ptr reflect.Value) any {
	return ptr.Method(g.Index).Call(nil)[0].Interface()
}
