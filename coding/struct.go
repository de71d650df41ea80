package coding

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"kvcoding/internal/match"
	"kvcoding/options"
	"kvcoding/utils"
)

var computedType = reflect.TypeFor[Computed]()

// field is one key of a structured record: a struct field or a computed getter.
type field struct {
	key      string
	index    []int
	typ      reflect.Type
	readonly bool
	getter   *Getter
}

// structStrategy serves one struct type, accessed either by value (read-only) or through a pointer.
type structStrategy struct {
	typ    reflect.Type
	fields []*field
	byKey  map[string]*field
	loose  *match.Index
	opts   options.Options
}

// NewStructStrategy returns a strategy for values of type t, a struct or a pointer to a struct.
//
// Keys are the exported fields, including fields promoted from embedded structs, named by the
// first present tag in the configured tag names, or by the Go field name. A tag name of "-" hides
// the field and the tag option "readonly" rejects writes. Methods listed by Computed are exposed
// as read-only keys named after the method. A struct without any key is rejected with
// ErrNoStrategyFound.
func NewStructStrategy(t reflect.Type, opts ...options.Option) (Strategy, error) {
	return newStructStrategy(t, options.Apply(opts...))
}

func newStructStrategy(t reflect.Type, o options.Options) (Strategy, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrNoStrategyFound, t)
	}

	s := &structStrategy{
		typ:   t,
		byKey: make(map[string]*field),
		opts:  o,
	}

	for _, sf := range reflect.VisibleFields(t) {
		f, ok := s.parseField(sf)
		if !ok {
			continue
		}

		if _, taken := s.byKey[f.key]; taken {
			continue
		}

		s.add(f)
	}

	if err := s.addComputed(); err != nil {
		return nil, err
	}

	if len(s.fields) == 0 {
		return nil, fmt.Errorf("%w: %s has no exported or computed fields", ErrNoStrategyFound, t)
	}

	keys := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		keys = append(keys, f.key)
	}

	s.loose = match.NewIndex(keys)

	return s, nil
}

func (s *structStrategy) add(f *field) {
	s.fields = append(s.fields, f)
	s.byKey[f.key] = f
}

func (s *structStrategy) parseField(sf reflect.StructField) (*field, bool) {
	if !sf.IsExported() {
		return nil, false
	}

	// embedded structs contribute their promoted fields instead of themselves
	if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
		return nil, false
	}

	// promoted fields behind an embedded pointer may be unreachable
	for i := 1; i < len(sf.Index); i++ {
		if s.typ.FieldByIndex(sf.Index[:i]).Type.Kind() == reflect.Pointer {
			return nil, false
		}
	}

	f := &field{key: sf.Name, index: sf.Index, typ: sf.Type}

	for _, tagName := range s.opts.TagNames {
		tag, ok := sf.Tag.Lookup(tagName)
		if !ok {
			continue
		}

		name, rest := utils.Unpack2(strings.SplitN(tag, ",", 2))
		if name == "-" && rest == "" {
			return nil, false
		}

		if slices.Contains(strings.Split(rest, ","), "readonly") {
			f.readonly = true
		}

		// a tag without a name defers naming to the next tag
		if name != "" {
			f.key = name
			break
		}
	}

	return f, true
}

func (s *structStrategy) addComputed() error {
	ptr := reflect.PointerTo(s.typ)
	if !ptr.Implements(computedType) {
		return nil
	}

	names := reflect.New(s.typ).Interface().(Computed).ComputedFields()
	for _, name := range names {
		g, err := ParseGetter(ptr, name)
		if err != nil {
			return err
		}

		if _, taken := s.byKey[name]; taken {
			return fmt.Errorf("%w: %s.%s collides with a field key", ErrInvalidComputedField, s.typ, name)
		}

		s.add(&field{key: name, typ: g.Result, readonly: true, getter: &g})
	}

	return nil
}

func (s *structStrategy) lookup(key string) (*field, bool) {
	if f, ok := s.byKey[key]; ok {
		return f, true
	}

	if !s.opts.LooseKeys {
		return nil, false
	}

	canonical, ok := s.loose.Lookup(key)
	if !ok {
		return nil, false
	}

	return s.byKey[canonical], true
}

// value returns the struct held by data and whether it can be written.
func (s *structStrategy) value(data any) (reflect.Value, bool) {
	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Pointer {
		return rv.Elem(), true
	}

	return rv, false
}

func (s *structStrategy) read(data any, f *field) any {
	rv, addressable := s.value(data)
	if f.getter == nil {
		return rv.FieldByIndex(f.index).Interface()
	}

	ptr := reflect.ValueOf(data)
	if !addressable {
		ptr = reflect.New(s.typ)
		ptr.Elem().Set(rv)
	}

	return f.getter.Call(ptr)
}

func (s *structStrategy) Get(data any, key string) (any, error) {
	f, ok := s.lookup(key)
	if !ok {
		return nil, keyError("get", key, ErrKeyNotFound)
	}

	return s.read(data, f), nil
}

func (s *structStrategy) Set(data any, key string, value any) error {
	f, ok := s.lookup(key)
	if !ok {
		return keyError("set", key, fmt.Errorf("%w: %s has no such field", ErrKeyNotFound, s.typ))
	}

	rv, writable := s.value(data)
	if f.readonly || !writable {
		return keyError("set", key, ErrReadOnlyField)
	}

	v, err := assign(f.typ, value, s.opts.Categories)
	if err != nil {
		return keyError("set", key, err)
	}

	rv.FieldByIndex(f.index).Set(v)

	return nil
}

func (s *structStrategy) Remove(data any, key string) (bool, error) {
	if _, ok := s.lookup(key); !ok {
		return false, nil
	}

	return false, keyError("remove", key, fmt.Errorf("%w: fields of %s cannot be removed", ErrReadOnlyField, s.typ))
}

func (s *structStrategy) ContainsKey(_ any, key string) bool {
	_, ok := s.lookup(key)
	return ok
}

func (s *structStrategy) IsReadonly(data any, key string) bool {
	f, ok := s.lookup(key)
	if !ok {
		return true
	}

	_, writable := s.value(data)

	return f.readonly || !writable
}

func (s *structStrategy) FieldType(_ any, key string) (reflect.Type, error) {
	f, ok := s.lookup(key)
	if !ok {
		return nil, keyError("type", key, ErrKeyNotFound)
	}

	return f.typ, nil
}

func (s *structStrategy) Count(any) int { return len(s.fields) }

func (s *structStrategy) Clear(any) error {
	return fmt.Errorf("clear %s: %w: structured records have a fixed set of fields", s.typ, ErrReadOnlyField)
}

func (s *structStrategy) Entries(data any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, f := range s.fields {
			if !yield(f.key, s.read(data, f)) {
				return
			}
		}
	}
}
