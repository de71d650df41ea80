package match

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type celsius float64

type tags []string

type level int

type color string

type point struct{ X, Y int }

type vector struct{ X, Y int }

func TestScoreTypeCompatibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source, target reflect.Type
		compatibility  TypeCompatibility
		transform      Transform
	}{
		{reflect.TypeFor[int](), reflect.TypeFor[int](), TypeIdentical, TransformNone},
		{reflect.TypeFor[*time.Location](), reflect.TypeFor[any](), TypeAssignable, TransformNone},
		{reflect.TypeFor[time.Duration](), reflect.TypeFor[fmt.Stringer](), TypeAssignable, TransformNone},
		{reflect.TypeFor[[]string](), reflect.TypeFor[tags](), TypeAssignable, TransformNone},
		{reflect.TypeFor[point](), reflect.TypeFor[vector](), TypeConvertible, TransformNone},
		{reflect.TypeFor[int](), reflect.TypeFor[string](), TypeNeedsTransform, TransformPrimitive},
		{reflect.TypeFor[int](), reflect.TypeFor[float64](), TypeNeedsTransform, TransformPrimitive},
		{reflect.TypeFor[*point](), reflect.TypeFor[point](), TypeNeedsTransform, TransformDeref},
		{reflect.TypeFor[point](), reflect.TypeFor[*point](), TypeNeedsTransform, TransformAddress},
		{reflect.TypeFor[celsius](), reflect.TypeFor[float64](), TypeConvertible, TransformNone},
		{reflect.TypeFor[point](), reflect.TypeFor[[]int](), TypeIncompatible, TransformNone},
		{reflect.TypeFor[int](), reflect.TypeFor[level](), TypeConvertible, TransformNone},
		{reflect.TypeFor[level](), reflect.TypeFor[int](), TypeConvertible, TransformNone},
		{reflect.TypeFor[string](), reflect.TypeFor[color](), TypeConvertible, TransformNone},
		{reflect.TypeFor[int8](), reflect.TypeFor[level](), TypeNeedsTransform, TransformPrimitive},
		{reflect.TypeFor[int](), reflect.TypeFor[color](), TypeNeedsTransform, TransformPrimitive},
		{reflect.TypeFor[int64](), reflect.TypeFor[time.Duration](), TypeNeedsTransform, TransformPrimitive},
		{nil, reflect.TypeFor[int](), TypeIncompatible, TransformNone},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%v->%v", tt.source, tt.target)
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := ScoreTypeCompatibility(tt.source, tt.target)
			assert.Equal(t, tt.compatibility, res.Compatibility, res.Reason)
			assert.Equal(t, tt.transform, res.Transform)
		})
	}
}

func TestTypeCompatibilityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, VerdictIdentical, TypeIdentical.String())
	assert.Equal(t, VerdictNeedsTransform, TypeNeedsTransform.String())
	assert.Equal(t, "unknown", TypeCompatibility(42).String())
}
