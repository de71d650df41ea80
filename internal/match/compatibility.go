package match

import (
	"reflect"

	"kvcoding/primitive"
)

// TypeCompatibility represents the level of compatibility between two types.
type TypeCompatibility int

const (
	// TypeIncompatible means the types cannot be converted.
	TypeIncompatible TypeCompatibility = iota
	// TypeNeedsTransform means conversion requires a transform (see Transform).
	TypeNeedsTransform
	// TypeConvertible means types share a reflect kind and are convertible using Go's type conversion.
	TypeConvertible
	// TypeAssignable means the source type can be directly assigned to the target.
	TypeAssignable
	// TypeIdentical means the types are exactly the same.
	TypeIdentical
)

const (
	VerdictIdentical      = "identical"
	VerdictAssignable     = "assignable"
	VerdictConvertible    = "convertible"
	VerdictNeedsTransform = "needs_transform"
	VerdictIncompatible   = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c TypeCompatibility) String() string {
	switch c {
	case TypeIdentical:
		return VerdictIdentical
	case TypeAssignable:
		return VerdictAssignable
	case TypeConvertible:
		return VerdictConvertible
	case TypeNeedsTransform:
		return VerdictNeedsTransform
	case TypeIncompatible:
		return VerdictIncompatible
	default:
		return "unknown"
	}
}

// Transform names the operation a TypeNeedsTransform verdict relies on.
type Transform int

const (
	TransformNone      Transform = iota
	TransformPrimitive           // primitive.Convert between two primitive kinds
	TransformDeref               // *T -> T, source must not be nil
	TransformAddress             // T -> *T, a fresh copy is allocated
)

// TypeCompatibilityResult contains detailed information about type compatibility.
type TypeCompatibilityResult struct {
	Compatibility TypeCompatibility
	Transform     Transform
	Reason        string // Human-readable explanation
	SourceType    reflect.Type
	TargetType    reflect.Type
}

// ScoreTypeCompatibility determines the compatibility between a source and target type.
func ScoreTypeCompatibility(source, target reflect.Type) TypeCompatibilityResult {
	res := TypeCompatibilityResult{SourceType: source, TargetType: target}

	verdict := func(c TypeCompatibility, tr Transform, reason string) TypeCompatibilityResult {
		res.Compatibility, res.Transform, res.Reason = c, tr, reason
		return res
	}

	switch {
	case source == nil || target == nil:
		return verdict(TypeIncompatible, TransformNone, "type info unavailable")
	case source == target:
		return verdict(TypeIdentical, TransformNone, "types are identical")
	case source.AssignableTo(target):
		return verdict(TypeAssignable, TransformNone, "source is assignable to target")
	}

	srcKind, dstKind := primitive.FromReflectType(source), primitive.FromReflectType(target)

	// named ints and strings share their representation with the underlying kind
	if (srcKind == primitive.KindPrimitiveEnum || dstKind == primitive.KindPrimitiveEnum) &&
		source.Kind() == target.Kind() && source.ConvertibleTo(target) {
		return verdict(TypeConvertible, TransformNone, "source has the representation of target")
	}

	// primitives first: reflect happily converts int to string as a rune
	if srcKind != 0 && dstKind != 0 {
		return verdict(TypeNeedsTransform, TransformPrimitive, "types are primitive kinds")
	}

	if source.Kind() == target.Kind() && source.ConvertibleTo(target) {
		return verdict(TypeConvertible, TransformNone, "source is convertible to target")
	}

	if source.Kind() == reflect.Pointer && source.Elem().AssignableTo(target) {
		return verdict(TypeNeedsTransform, TransformDeref, "requires pointer dereference")
	}

	if target.Kind() == reflect.Pointer && source.AssignableTo(target.Elem()) {
		return verdict(TypeNeedsTransform, TransformAddress, "requires taking address")
	}

	return verdict(TypeIncompatible, TransformNone, "types are not compatible")
}
