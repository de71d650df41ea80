package coding

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"kvcoding/options"
)

// Priorities of the built-in strategies; lower values are consulted first.
const (
	PriorityBag    = 100
	PriorityStruct = 200
	PriorityMap    = 1000
)

// Matcher reports whether a strategy applies to values of type t.
type Matcher func(t reflect.Type) bool

// Factory builds the strategy serving values of type t.
// It is called at most once per type until the registry changes.
type Factory func(t reflect.Type) (Strategy, error)

type registration struct {
	name     string
	priority int
	seq      int
	match    Matcher
	factory  Factory
}

// Registry resolves values to strategies by their shape.
//
// Registrations are consulted in ascending priority; ties keep registration order.
// Resolved strategies are cached per reflect.Type. A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []registration
	seq     int
	cache   sync.Map // reflect.Type -> Strategy
}

// Default is the registry used by Register and Resolve.
var Default = NewDefaultRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewDefaultRegistry returns a registry holding the built-in bag, struct and map strategies
// configured with opts.
func NewDefaultRegistry(opts ...options.Option) *Registry {
	o := options.Apply(opts...)

	r := NewRegistry()
	r.Register("bag", PriorityBag, MatchImplements(reflect.TypeFor[Bag]()), func(reflect.Type) (Strategy, error) {
		return BagStrategy(), nil
	})
	r.Register("struct", PriorityStruct, isStructShape, func(t reflect.Type) (Strategy, error) {
		return newStructStrategy(t, o)
	})
	r.Register("map", PriorityMap, isMapShape, func(t reflect.Type) (Strategy, error) {
		return newMapStrategy(t, o)
	})

	return r
}

// Register adds a strategy for the values matched by match.
func (r *Registry) Register(name string, priority int, match Matcher, factory Factory) {
	if match == nil || factory == nil {
		panic("coding: matcher and factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.entries = append(r.entries, registration{
		name:     name,
		priority: priority,
		seq:      r.seq,
		match:    match,
		factory:  factory,
	})
	slices.SortStableFunc(r.entries, func(a, b registration) int {
		if a.priority != b.priority {
			return a.priority - b.priority
		}

		return a.seq - b.seq
	})

	r.cache.Clear()
}

// Names returns the registered strategy names in resolution order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}

	return names
}

// Resolve returns the strategy for the shape of data.
func (r *Registry) Resolve(data any) (Strategy, error) {
	if IsNil(data) {
		return nil, ErrArgumentNull
	}

	t := reflect.TypeOf(data)
	if s, ok := r.cache.Load(t); ok {
		return s.(Strategy), nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if !e.match(t) {
			continue
		}

		s, err := e.factory(t)
		if err != nil {
			return nil, fmt.Errorf("%s strategy for %s: %w", e.name, t, err)
		}

		r.cache.Store(t, s)

		return s, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoStrategyFound, t)
}

// Register adds a strategy to Default.
func Register(name string, priority int, match Matcher, factory Factory) {
	Default.Register(name, priority, match, factory)
}

// Resolve resolves data against Default.
func Resolve(data any) (Strategy, error) {
	return Default.Resolve(data)
}

// MatchType matches values of exactly type t.
func MatchType(t reflect.Type) Matcher {
	return func(candidate reflect.Type) bool { return candidate == t }
}

// MatchImplements matches values whose type implements the interface iface.
func MatchImplements(iface reflect.Type) Matcher {
	if iface.Kind() != reflect.Interface {
		panic("coding: MatchImplements requires an interface type, got " + iface.String())
	}

	return func(candidate reflect.Type) bool { return candidate.Implements(iface) }
}

// MatchKind matches values whose type has one of kinds.
func MatchKind(kinds ...reflect.Kind) Matcher {
	return func(candidate reflect.Type) bool { return slices.Contains(kinds, candidate.Kind()) }
}

func isStructShape(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}

func isMapShape(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
}
