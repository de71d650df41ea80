package record_test

import (
	"testing"

	"kvcoding/coding"
	"kvcoding/props"
	"kvcoding/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	src := record.Must(record.New(map[string]any{"a": 1, "b": "x"}))
	clone := src.Clone()

	assert.ElementsMatch(t, src.Entries(), clone.Entries())

	require.NoError(t, src.Set("a", 2))
	require.NoError(t, clone.Set("b", "y"))
	require.NoError(t, clone.Set("c", true))

	v, _ := clone.TryGetValue("a")
	assert.Equal(t, 1, v)

	v, _ = src.TryGetValue("b")
	assert.Equal(t, "x", v)
	assert.False(t, src.ContainsKey("c"))
}

func TestCloneNormalizesShape(t *testing.T) {
	t.Parallel()

	inv := &Invoice{Net: 4, Tax: 1}
	clone := record.Must(record.New(inv)).Clone()

	assert.Equal(t, map[string]any{"net": 4.0, "tax": 1.0, "Total": 5.0}, clone.Data())
	assert.Equal(t, coding.GenericMap(), clone.Strategy())

	require.NoError(t, clone.Set("Total", 0.0), "the clone no longer has a fixed schema")
	assert.InDelta(t, 5.0, inv.Total(), 1e-9)
}

func TestCloneNestedValues(t *testing.T) {
	t.Parallel()

	nestedProps := props.New(map[string]any{"depth": 1})
	nestedRecord := record.Must(record.New(map[string]any{"depth": 1}))
	shared := map[string]any{"depth": 1}

	src := record.Must(record.New(map[string]any{
		"props":  nestedProps,
		"record": nestedRecord,
		"shared": shared,
	}))
	clone := src.Clone()

	require.NoError(t, nestedProps.Set("depth", 2))
	require.NoError(t, nestedRecord.Set("depth", 2))
	shared["depth"] = 2

	v, _ := clone.TryGetValue("props")
	depth, _ := v.(*props.Properties).Get("depth")
	assert.Equal(t, 1, depth, "cloneable values are deep cloned")

	v, _ = clone.TryGetValue("record")
	depth, _ = v.(*record.Record).TryGetValue("depth")
	assert.Equal(t, 1, depth, "nested records are deep cloned")

	v, _ = clone.TryGetValue("shared")
	assert.Equal(t, 2, v.(map[string]any)["depth"], "plain containers are shared")
}

func TestDeepClone(t *testing.T) {
	t.Parallel()

	var c coding.Cloneable = record.Must(record.New(map[string]any{"a": 1}))

	clone, ok := c.DeepClone().(*record.Record)
	require.True(t, ok)
	assert.Equal(t, 1, clone.Count())
}

func TestCloneNilChildren(t *testing.T) {
	t.Parallel()

	src := record.Must(record.New(map[string]any{
		"record": (*record.Record)(nil),
		"props":  (*props.Properties)(nil),
		"bag": props.New(map[string]any{
			"inner": (*props.Properties)(nil),
		}),
	}))

	var clone *record.Record
	require.NotPanics(t, func() { clone = src.Clone() })

	v, ok := clone.TryGetValue("record")
	require.True(t, ok)
	assert.Nil(t, v.(*record.Record))

	v, ok = clone.TryGetValue("props")
	require.True(t, ok)
	assert.Nil(t, v.(*props.Properties))

	v, _ = clone.TryGetValue("bag")
	inner, ok := v.(*props.Properties).Get("inner")
	require.True(t, ok)
	assert.Nil(t, inner.(*props.Properties))
}
