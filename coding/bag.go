package coding

import (
	"iter"
	"reflect"
)

// BagStrategy returns the strategy serving every Bag implementation.
func BagStrategy() Strategy { return bagStrategy{} }

type bagStrategy struct{}

func (bagStrategy) Get(data any, key string) (any, error) {
	v, ok := data.(Bag).Get(key)
	if !ok {
		return nil, keyError("get", key, ErrKeyNotFound)
	}

	return v, nil
}

func (s bagStrategy) Set(data any, key string, value any) error {
	if s.IsReadonly(data, key) {
		return keyError("set", key, ErrReadOnlyField)
	}

	return keyError("set", key, data.(Bag).Set(key, value))
}

func (s bagStrategy) Remove(data any, key string) (bool, error) {
	b := data.(Bag)
	if _, ok := b.Get(key); !ok {
		return false, nil
	}

	if s.IsReadonly(data, key) {
		return false, keyError("remove", key, ErrReadOnlyField)
	}

	removed, err := b.Delete(key)
	if err != nil {
		return false, keyError("remove", key, err)
	}

	return removed, nil
}

func (bagStrategy) ContainsKey(data any, key string) bool {
	_, ok := data.(Bag).Get(key)
	return ok
}

func (bagStrategy) IsReadonly(data any, key string) bool {
	rb, ok := data.(ReadonlyBag)
	return ok && rb.IsReadonly(key)
}

// FieldType prefers the bag's declared type, then the dynamic type of the current value.
// Absent keys and nil values accept anything.
func (bagStrategy) FieldType(data any, key string) (reflect.Type, error) {
	if tb, ok := data.(TypedBag); ok {
		if t, ok := tb.KeyType(key); ok {
			return t, nil
		}
	}

	if v, ok := data.(Bag).Get(key); ok && v != nil {
		return reflect.TypeOf(v), nil
	}

	return anyType, nil
}

func (bagStrategy) Count(data any) int { return data.(Bag).Len() }

func (s bagStrategy) Clear(data any) error {
	if cb, ok := data.(ClearableBag); ok {
		return cb.Clear()
	}

	b := data.(Bag)
	keys := make([]string, 0, b.Len())

	for key := range b.All() {
		if s.IsReadonly(data, key) {
			return keyError("clear", key, ErrReadOnlyField)
		}

		keys = append(keys, key)
	}

	for _, key := range keys {
		if _, err := b.Delete(key); err != nil {
			return keyError("clear", key, err)
		}
	}

	return nil
}

func (bagStrategy) Entries(data any) iter.Seq2[string, any] {
	return data.(Bag).All()
}
