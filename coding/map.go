package coding

import (
	"fmt"
	"iter"
	"maps"
	"reflect"

	"kvcoding/options"
)

var anyType = reflect.TypeFor[any]()

// GenericMap returns the strategy for map[string]any, the normalized shape records clone into.
func GenericMap() Strategy { return genericMapStrategy{} }

type genericMapStrategy struct{}

func (genericMapStrategy) Get(data any, key string) (any, error) {
	v, ok := data.(map[string]any)[key]
	if !ok {
		return nil, keyError("get", key, ErrKeyNotFound)
	}

	return v, nil
}

func (genericMapStrategy) Set(data any, key string, value any) error {
	data.(map[string]any)[key] = value
	return nil
}

func (genericMapStrategy) Remove(data any, key string) (bool, error) {
	m := data.(map[string]any)
	if _, ok := m[key]; !ok {
		return false, nil
	}

	delete(m, key)

	return true, nil
}

func (genericMapStrategy) ContainsKey(data any, key string) bool {
	_, ok := data.(map[string]any)[key]
	return ok
}

func (genericMapStrategy) IsReadonly(any, string) bool { return false }

func (genericMapStrategy) FieldType(any, string) (reflect.Type, error) { return anyType, nil }

func (genericMapStrategy) Count(data any) int { return len(data.(map[string]any)) }

func (genericMapStrategy) Clear(data any) error {
	clear(data.(map[string]any))
	return nil
}

func (genericMapStrategy) Entries(data any) iter.Seq2[string, any] {
	return maps.All(data.(map[string]any))
}

// mapStrategy serves any map type with string-kind keys through reflection.
type mapStrategy struct {
	typ  reflect.Type
	opts options.Options
}

// NewMapStrategy returns a strategy for maps of type t, whose key kind must be string.
func NewMapStrategy(t reflect.Type, opts ...options.Option) (Strategy, error) {
	return newMapStrategy(t, options.Apply(opts...))
}

func newMapStrategy(t reflect.Type, o options.Options) (Strategy, error) {
	if !isMapShape(t) {
		return nil, fmt.Errorf("%w: %s is not a map with string keys", ErrNoStrategyFound, t)
	}

	if t == reflect.TypeFor[map[string]any]() {
		return genericMapStrategy{}, nil
	}

	return &mapStrategy{typ: t, opts: o}, nil
}

func (s *mapStrategy) key(key string) reflect.Value {
	return reflect.ValueOf(key).Convert(s.typ.Key())
}

func (s *mapStrategy) Get(data any, key string) (any, error) {
	v := reflect.ValueOf(data).MapIndex(s.key(key))
	if !v.IsValid() {
		return nil, keyError("get", key, ErrKeyNotFound)
	}

	return v.Interface(), nil
}

func (s *mapStrategy) Set(data any, key string, value any) error {
	v, err := assign(s.typ.Elem(), value, s.opts.Categories)
	if err != nil {
		return keyError("set", key, err)
	}

	reflect.ValueOf(data).SetMapIndex(s.key(key), v)

	return nil
}

func (s *mapStrategy) Remove(data any, key string) (bool, error) {
	m, k := reflect.ValueOf(data), s.key(key)
	if !m.MapIndex(k).IsValid() {
		return false, nil
	}

	m.SetMapIndex(k, reflect.Value{})

	return true, nil
}

func (s *mapStrategy) ContainsKey(data any, key string) bool {
	return reflect.ValueOf(data).MapIndex(s.key(key)).IsValid()
}

func (s *mapStrategy) IsReadonly(any, string) bool { return false }

func (s *mapStrategy) FieldType(any, string) (reflect.Type, error) { return s.typ.Elem(), nil }

func (s *mapStrategy) Count(data any) int { return reflect.ValueOf(data).Len() }

func (s *mapStrategy) Clear(data any) error {
	reflect.ValueOf(data).Clear()
	return nil
}

func (s *mapStrategy) Entries(data any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		it := reflect.ValueOf(data).MapRange()
		for it.Next() {
			if !yield(it.Key().String(), it.Value().Interface()) {
				return
			}
		}
	}
}
