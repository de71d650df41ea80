// Package props provides Properties, a dynamic property bag usable as a
// key-value coding Bag.
package props

import (
	"iter"
	"maps"
	"slices"

	"kvcoding/coding"
)

// Properties stores values under string keys. Keys may be locked, after which
// they can be read but neither written nor deleted.
//
// The zero value for a Properties instance is ready for reads/writes without
// any additional initialization. Properties is not safe for concurrent use.
type Properties struct {
	values map[string]any
	locked map[string]struct{}
}

// New returns Properties holding a copy of values.
func New(values map[string]any) *Properties {
	p := &Properties{}
	p.lazyInit()
	maps.Copy(p.values, values)

	return p
}

func (p *Properties) lazyInit() {
	if p.values == nil {
		p.values = map[string]any{}
	}

	if p.locked == nil {
		p.locked = map[string]struct{}{}
	}
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
// It fails with coding.ErrReadOnlyField for locked keys.
func (p *Properties) Set(key string, value any) error {
	if p.IsReadonly(key) {
		return coding.ErrReadOnlyField
	}

	p.lazyInit()
	p.values[key] = value

	return nil
}

// Delete removes key, reporting whether it was present.
func (p *Properties) Delete(key string) (bool, error) {
	if _, ok := p.values[key]; !ok {
		return false, nil
	}

	if p.IsReadonly(key) {
		return false, coding.ErrReadOnlyField
	}

	delete(p.values, key)

	return true, nil
}

func (p *Properties) Len() int { return len(p.values) }

// All yields every key with its value in unspecified order.
func (p *Properties) All() iter.Seq2[string, any] {
	return maps.All(p.values)
}

// Keys returns a sorted snapshot of the keys.
func (p *Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p.values))
}

// Lock makes key read-only. Locking an absent key reserves it: it cannot be set later.
func (p *Properties) Lock(key string) {
	p.lazyInit()
	p.locked[key] = struct{}{}
}

func (p *Properties) IsReadonly(key string) bool {
	_, ok := p.locked[key]
	return ok
}

// Clear removes every key. It fails with coding.ErrReadOnlyField, removing nothing,
// if any present key is locked.
func (p *Properties) Clear() error {
	for key := range p.values {
		if p.IsReadonly(key) {
			return coding.ErrReadOnlyField
		}
	}

	clear(p.values)

	return nil
}

// DeepClone returns a copy of p with its own entries and locks.
// Values implementing coding.Cloneable are cloned, others are shared.
func (p *Properties) DeepClone() any {
	out := &Properties{
		values: make(map[string]any, len(p.values)),
		locked: maps.Clone(p.locked),
	}

	if out.locked == nil {
		out.locked = map[string]struct{}{}
	}

	for k, v := range p.values {
		if c, ok := v.(coding.Cloneable); ok && !coding.IsNil(v) {
			v = c.DeepClone()
		}

		out.values[k] = v
	}

	return out
}
