package coding_test

import (
	"maps"
	"reflect"
	"testing"

	"kvcoding/coding"
	"kvcoding/options"
	"kvcoding/primitive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Label string

func TestGenericMapStrategy(t *testing.T) {
	t.Parallel()

	data := map[string]any{"a": 1, "b": "x"}

	s, err := coding.Resolve(data)
	require.NoError(t, err)
	assert.Equal(t, coding.GenericMap(), s)

	v, err := s.Get(data, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, s.Set(data, "c", []int{1}))
	assert.Equal(t, []int{1}, data["c"])
	assert.Equal(t, 3, s.Count(data))

	typ, err := s.FieldType(data, "anything")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[any](), typ)

	removed, err := s.Remove(data, "b")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Remove(data, "b")
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Equal(t, map[string]any{"a": 1, "c": []int{1}}, maps.Collect(s.Entries(data)))

	require.NoError(t, s.Clear(data))
	assert.Empty(t, data)
}

func TestTypedMapStrategy(t *testing.T) {
	t.Parallel()

	t.Run("typed values", func(t *testing.T) {
		t.Parallel()

		data := map[string]int64{"a": 1}

		s, err := coding.Resolve(data)
		require.NoError(t, err)

		require.NoError(t, s.Set(data, "b", int32(2)))
		assert.Equal(t, int64(2), data["b"])

		err = s.Set(data, "c", "3")
		require.ErrorIs(t, err, coding.ErrTypeMismatch)
		assert.NotContains(t, data, "c")

		require.NoError(t, s.Set(data, "a", nil))
		assert.Equal(t, int64(0), data["a"])

		typ, err := s.FieldType(data, "zzz")
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[int64](), typ)
		assert.False(t, s.IsReadonly(data, "a"))

		assert.Equal(t, map[string]any{"a": int64(0), "b": int64(2)}, maps.Collect(s.Entries(data)))

		require.NoError(t, s.Clear(data))
		assert.Zero(t, s.Count(data))
	})

	t.Run("named keys", func(t *testing.T) {
		t.Parallel()

		data := map[Label]string{"env": "prod"}

		s, err := coding.Resolve(data)
		require.NoError(t, err)

		assert.True(t, s.ContainsKey(data, "env"))

		require.NoError(t, s.Set(data, "team", "core"))
		assert.Equal(t, "core", data[Label("team")])

		removed, err := s.Remove(data, "env")
		require.NoError(t, err)
		assert.True(t, removed)

		_, err = s.Get(data, "env")
		require.ErrorIs(t, err, coding.ErrKeyNotFound)
	})

	t.Run("conversion options", func(t *testing.T) {
		t.Parallel()

		data := map[string]bool{}

		s, err := coding.NewMapStrategy(reflect.TypeOf(data), options.WithCategories(primitive.CategoryTextualBool))
		require.NoError(t, err)

		require.NoError(t, s.Set(data, "enabled", "on"))
		assert.True(t, data["enabled"])
	})
}

func TestNewMapStrategyRejectsNonStringKeys(t *testing.T) {
	t.Parallel()

	_, err := coding.NewMapStrategy(reflect.TypeFor[map[int]string]())
	require.ErrorIs(t, err, coding.ErrNoStrategyFound)

	_, err = coding.Resolve(map[int]string{1: "one"})
	require.ErrorIs(t, err, coding.ErrNoStrategyFound)
}

type Priority int

type Shade string

func (s Shade) IsValid() bool { return s == "light" || s == "dark" }

func TestMapStrategyNamedValues(t *testing.T) {
	t.Parallel()

	t.Run("named int", func(t *testing.T) {
		t.Parallel()

		data := map[string]Priority{}
		s, err := coding.Resolve(data)
		require.NoError(t, err)

		require.NoError(t, s.Set(data, "urgent", 2))
		assert.Equal(t, Priority(2), data["urgent"])

		err = s.Set(data, "low", "1")
		require.ErrorIs(t, err, coding.ErrTypeMismatch)
	})

	t.Run("validated string", func(t *testing.T) {
		t.Parallel()

		data := map[string]Shade{}
		s, err := coding.Resolve(data)
		require.NoError(t, err)

		require.NoError(t, s.Set(data, "bg", "dark"))
		assert.Equal(t, Shade("dark"), data["bg"])

		err = s.Set(data, "fg", "purple")
		require.ErrorIs(t, err, coding.ErrTypeMismatch)
		require.ErrorIs(t, err, primitive.ErrInvalidValue)
		assert.NotContains(t, data, "fg")
	})
}
