package options_test

import (
	"testing"

	"kvcoding/options"
	"kvcoding/primitive"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		o := options.Apply()
		assert.Equal(t, primitive.CategorySafeNumber, o.Categories)
		assert.Equal(t, []string{"kvc", "json"}, o.TagNames)
		assert.True(t, o.LooseKeys)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		o := options.Apply(
			options.WithCategories(primitive.CategoryTextNumber),
			options.WithExtraCategories(primitive.CategoryDuration),
			options.WithTagNames("yaml"),
			options.WithLooseKeys(false),
		)
		assert.Equal(t, primitive.CategoryTextNumber|primitive.CategoryDuration, o.Categories)
		assert.Equal(t, []string{"yaml"}, o.TagNames)
		assert.False(t, o.LooseKeys)
	})

	t.Run("defaults are not shared", func(t *testing.T) {
		t.Parallel()

		o := options.Apply()
		o.TagNames[0] = "mutated"
		assert.Equal(t, "kvc", options.Default().TagNames[0])
	})
}
