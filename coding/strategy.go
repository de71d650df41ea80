package coding

import (
	"iter"
	"reflect"
)

// Strategy performs key-value operations on values of one shape.
//
// A Strategy holds no per-value state: every call receives the value it acts on,
// so one instance serves every value of its shape. Implementations never retain data.
type Strategy interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(data any, key string) (any, error)
	// Set creates key if the shape supports dynamic keys, or overwrites it.
	// It fails with ErrReadOnlyField for keys that cannot be written and with
	// ErrTypeMismatch for values that do not fit the key's type.
	Set(data any, key string, value any) error
	// Remove deletes key, reporting whether it was present.
	// It fails with ErrReadOnlyField if key exists but cannot be removed.
	Remove(data any, key string) (bool, error)
	ContainsKey(data any, key string) bool
	// IsReadonly reports whether Set would fail with ErrReadOnlyField for key.
	IsReadonly(data any, key string) bool
	// FieldType returns the type a value stored under key is expected to have.
	FieldType(data any, key string) (reflect.Type, error)
	Count(data any) int
	// Clear removes every key, or fails with ErrReadOnlyField without removing any.
	Clear(data any) error
	// Entries lazily yields every key with its value. Mutating data while
	// iterating is not supported.
	Entries(data any) iter.Seq2[string, any]
}

// Cloneable is implemented by values able to produce an independent deep copy of themselves.
type Cloneable interface {
	DeepClone() any
}

// Computed is implemented by structs exposing derived values as read-only keys.
// ComputedFields lists exported method names; each must take no arguments and return one value.
type Computed interface {
	ComputedFields() []string
}

// Bag is a dynamic property container addressed by string keys.
type Bag interface {
	Get(key string) (any, bool)
	Set(key string, value any) error
	Delete(key string) (bool, error)
	Len() int
	All() iter.Seq2[string, any]
}

// ReadonlyBag is implemented by bags with keys that cannot be written or deleted.
type ReadonlyBag interface {
	Bag
	IsReadonly(key string) bool
}

// TypedBag is implemented by bags that declare the type expected under a key.
type TypedBag interface {
	Bag
	KeyType(key string) (reflect.Type, bool)
}

// ClearableBag is implemented by bags able to clear themselves in one step.
type ClearableBag interface {
	Bag
	Clear() error
}
