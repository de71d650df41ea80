package record

import (
	"iter"
	"reflect"

	"kvcoding/coding"
)

// Entry is one key with its value.
type Entry struct {
	Key   string
	Value any
}

// Record is an associative view over a value of any shape known to a coding.Registry.
// The strategy is resolved once, in New, and never changes afterwards.
type Record struct {
	data any
	kvc  coding.Strategy
}

// New wraps data using coding.Default.
// It fails with coding.ErrArgumentNull for nil data and coding.ErrNoStrategyFound for unknown shapes.
func New(data any) (*Record, error) {
	return NewFromRegistry(coding.Default, data)
}

// NewFromRegistry wraps data using the strategy reg resolves for it.
func NewFromRegistry(reg *coding.Registry, data any) (*Record, error) {
	kvc, err := reg.Resolve(data)
	if err != nil {
		return nil, err
	}

	return &Record{data: data, kvc: kvc}, nil
}

// Must returns r, panicking if err is not nil.
func Must(r *Record, err error) *Record {
	if err != nil {
		panic(err)
	}

	return r
}

// Data returns the wrapped value.
func (r *Record) Data() any { return r.data }

// SetData replaces the wrapped value with one of the same dynamic type.
func (r *Record) SetData(data any) error {
	if coding.IsNil(data) {
		return coding.ErrArgumentNull
	}

	if reflect.TypeOf(data) != reflect.TypeOf(r.data) {
		return &TypeChangeError{From: reflect.TypeOf(r.data), To: reflect.TypeOf(data)}
	}

	r.data = data

	return nil
}

// Strategy returns the strategy the record delegates to.
func (r *Record) Strategy() coding.Strategy { return r.kvc }

// Get returns the value under key or an error wrapping coding.ErrKeyNotFound.
func (r *Record) Get(key string) (any, error) {
	return r.kvc.Get(r.data, key)
}

// Set stores value under key, creating the key when the shape allows it.
func (r *Record) Set(key string, value any) error {
	return r.kvc.Set(r.data, key, value)
}

// Add is Set: it overwrites an existing key instead of failing.
func (r *Record) Add(key string, value any) error {
	return r.Set(key, value)
}

// AddEntry is Add for an Entry.
func (r *Record) AddEntry(e Entry) error {
	return r.Add(e.Key, e.Value)
}

func (r *Record) ContainsKey(key string) bool {
	return r.kvc.ContainsKey(r.data, key)
}

// Remove deletes key, reporting whether it was present.
func (r *Record) Remove(key string) (bool, error) {
	return r.kvc.Remove(r.data, key)
}

// TryGetValue returns the value under key and true, or nil and false when the key
// cannot be read. It never reports an error.
func (r *Record) TryGetValue(key string) (any, bool) {
	if !r.ContainsKey(key) {
		return nil, false
	}

	v, err := r.Get(key)
	if err != nil {
		return nil, false
	}

	return v, true
}

// Contains reports whether e.Key is present with a value equal to e.Value.
func (r *Record) Contains(e Entry) bool {
	v, ok := r.TryGetValue(e.Key)
	return ok && Equal(e.Value, v)
}

// RemoveEntry deletes e.Key only if its current value equals e.Value.
func (r *Record) RemoveEntry(e Entry) (bool, error) {
	if !r.Contains(e) {
		return false, nil
	}

	return r.Remove(e.Key)
}

// Clear removes every key, failing with coding.ErrReadOnlyField for fixed-schema shapes.
func (r *Record) Clear() error {
	return r.kvc.Clear(r.data)
}

func (r *Record) Count() int {
	return r.kvc.Count(r.data)
}

// CanWrite reports whether Set may succeed for key.
func (r *Record) CanWrite(key string) bool {
	return !r.kvc.IsReadonly(r.data, key)
}

// FieldType returns the type expected for values stored under key.
func (r *Record) FieldType(key string) (reflect.Type, error) {
	return r.kvc.FieldType(r.data, key)
}

// IsReadOnly reports whether the collection itself rejects mutation; a Record never does,
// individual keys may (see CanWrite).
func (r *Record) IsReadOnly() bool { return false }

// All lazily yields every entry. Mutating the record while iterating is not supported.
func (r *Record) All() iter.Seq2[string, any] {
	return r.kvc.Entries(r.data)
}

// Entries returns a snapshot of every entry.
func (r *Record) Entries() []Entry {
	out := make([]Entry, 0, r.Count())
	for k, v := range r.All() {
		out = append(out, Entry{Key: k, Value: v})
	}

	return out
}

// Keys returns a snapshot of the keys.
func (r *Record) Keys() []string {
	out := make([]string, 0, r.Count())
	for k := range r.All() {
		out = append(out, k)
	}

	return out
}

// Values returns a snapshot of the values.
func (r *Record) Values() []any {
	out := make([]any, 0, r.Count())
	for _, v := range r.All() {
		out = append(out, v)
	}

	return out
}

// CopyTo is not supported and always fails with coding.ErrNotImplemented.
func (r *Record) CopyTo([]Entry, int) error {
	return coding.ErrNotImplemented
}
