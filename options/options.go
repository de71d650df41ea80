package options

import (
	"slices"

	"kvcoding/primitive"
)

// DefaultTagNames are the struct tags consulted for key names, in order.
var DefaultTagNames = []string{"kvc", "json"}

// Options configures the built-in coding strategies.
type Options struct {
	// Categories lists the conversions applied when a value is stored into a slot of another type.
	Categories primitive.CategoryEnum
	// TagNames are the struct tags consulted for key names and options, first present tag wins.
	TagNames []string
	// LooseKeys enables normalized key lookup on structured records (total_cents finds TotalCents).
	LooseKeys bool
}

type Option func(*Options)

// Default returns the options used when none are given.
func Default() Options {
	return Options{
		Categories: primitive.CategorySafeNumber,
		TagNames:   slices.Clone(DefaultTagNames),
		LooseKeys:  true,
	}
}

// Apply returns Default modified by opts.
func Apply(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithCategories replaces the allowed conversion categories.
func WithCategories(categories primitive.CategoryEnum) Option {
	return func(o *Options) { o.Categories = categories }
}

// WithExtraCategories adds conversion categories to the ones already allowed.
func WithExtraCategories(categories primitive.CategoryEnum) Option {
	return func(o *Options) { o.Categories |= categories }
}

// WithTagNames replaces the struct tags consulted for key names.
func WithTagNames(names ...string) Option {
	return func(o *Options) { o.TagNames = slices.Clone(names) }
}

func WithLooseKeys(enabled bool) Option {
	return func(o *Options) { o.LooseKeys = enabled }
}
