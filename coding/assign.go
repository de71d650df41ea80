package coding

import (
	"fmt"
	"reflect"

	"kvcoding/internal/match"
	"kvcoding/primitive"
)

type validator interface{ IsValid() bool }

// assign prepares value for storage in a slot of type target.
// A nil value stores the zero value of target.
func assign(target reflect.Type, value any, allowed primitive.CategoryEnum) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(target), nil
	}

	src := reflect.ValueOf(value)
	compat := match.ScoreTypeCompatibility(src.Type(), target)

	switch compat.Compatibility {
	case match.TypeIdentical, match.TypeAssignable:
		return src, nil
	case match.TypeConvertible:
		res := src.Convert(target)
		if v, ok := res.Interface().(validator); ok && !v.IsValid() {
			return reflect.Value{}, fmt.Errorf("%w: %w: %v as %s", ErrTypeMismatch, primitive.ErrInvalidValue, value, target)
		}

		return res, nil
	case match.TypeNeedsTransform:
		switch compat.Transform {
		case match.TransformPrimitive:
			res, err := primitive.Convert(src, target, allowed)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
			}

			return res, nil
		case match.TransformDeref:
			if src.IsNil() {
				return reflect.Value{}, fmt.Errorf("%w: nil %s for %s", ErrTypeMismatch, src.Type(), target)
			}

			return src.Elem(), nil
		case match.TransformAddress:
			ptr := reflect.New(target.Elem())
			ptr.Elem().Set(src)

			return ptr, nil
		}
	}

	return reflect.Value{}, fmt.Errorf("%w: cannot store %s as %s: %s", ErrTypeMismatch, src.Type(), target, compat.Reason)
}
