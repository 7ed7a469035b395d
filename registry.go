package catmap

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/reoring/catmap/event"
	"github.com/reoring/catmap/internal/strcase"
)

// timeKeys are the attribute names whose values are timestamps regardless of
// which record they appear on.
var timeKeys = []string{"creation_time", "time", "reference"}

// Registry maps generic-structure keys to the record types they denote during
// reverse conversion. It also carries the scalar constructors for the types
// that are built from a bare scalar instead of a mapping. A Registry is
// append-only: once built it is never modified, so it may be shared across
// goroutines without synchronization.
type Registry struct {
	types   map[string]reflect.Type
	scalars map[reflect.Type]func(any) (any, error)
}

// NewRegistry builds a Registry from the given class declarations.
//
// Seeds come first: the quantity-error key "mag_errors" and the timestamp
// keys. The walk then registers, for every class, each non-enum property
// under its singular and plural name, followed by the class itself under the
// snake_case singular and plural of its type name. Seeded keys are never
// overridden. A walk registration that would bind an already-registered key
// to a different type is reported as an error rather than silently resolved;
// the upstream last-write-wins behavior was undocumented and a conflicting
// hierarchy is a programming mistake we want surfaced at build time.
func NewRegistry(classes []event.Class) (*Registry, error) {
	r := &Registry{
		types:   make(map[string]reflect.Type),
		scalars: make(map[reflect.Type]func(any) (any, error)),
	}

	// seeds: special-cased keys, inserted before the walk and never overridden.
	r.types["mag_errors"] = reflect.TypeOf(event.QuantityError{})
	for _, k := range timeKeys {
		r.types[k] = reflect.TypeOf(event.Time{})
	}

	r.scalars[reflect.TypeOf(event.Time{})] = scalarTime
	r.scalars[reflect.TypeOf(event.ResourceIdentifier{})] = scalarResourceIdentifier
	r.scalars[reflect.TypeOf(event.QuantityError{})] = scalarQuantityError

	var iss Issues
	for _, c := range classes {
		for _, p := range c.Properties {
			if p.Enum {
				// enum values are validated by the records themselves;
				// pre-constructing them here would bypass that.
				continue
			}
			iss = r.addSingularAndPlural(iss, p.Name, p.Type)
		}
		iss = r.addSingularAndPlural(iss, strcase.CamelToSnake(c.Type.Name()), c.Type)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}

// MustNewRegistry is NewRegistry panicking on conflict. Intended for the
// canonical hierarchy, where a conflict is a bug.
func MustNewRegistry(classes []event.Class) *Registry {
	r, err := NewRegistry(classes)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNewRegistry(event.Classes())
})

// DefaultRegistry returns the process-wide Registry over the full event
// hierarchy. It is built once and immutable afterwards.
func DefaultRegistry() *Registry { return defaultRegistry() }

func (r *Registry) addSingularAndPlural(iss Issues, name string, t reflect.Type) Issues {
	for _, key := range []string{name, name + "s"} {
		prev, ok := r.types[key]
		if !ok {
			r.types[key] = t
			continue
		}
		if prev != t && !r.isSeed(key) {
			iss = append(iss, Issue{
				Path: "/" + key,
				Code: CodeRegistryConflict,
				Message: fmt.Sprintf("key %q already registered to %s, cannot rebind to %s",
					key, prev, t),
			})
		}
		// same type, or a seeded key: first registration wins.
	}
	return iss
}

func (r *Registry) isSeed(key string) bool {
	if key == "mag_errors" {
		return true
	}
	for _, k := range timeKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Lookup returns the type registered under key, if any.
func (r *Registry) Lookup(key string) (reflect.Type, bool) {
	t, ok := r.types[key]
	return t, ok
}

// Len returns the number of registered keys.
func (r *Registry) Len() int { return len(r.types) }

// ---- scalar constructors (sole-argument construction) ----

func scalarTime(v any) (any, error) {
	switch s := v.(type) {
	case string:
		t, err := event.ParseTime(s)
		if err != nil {
			return nil, err
		}
		return &t, nil
	case time.Time:
		// yaml.v3 resolves timestamp-shaped scalars into time.Time already.
		return &event.Time{Time: s.UTC()}, nil
	}
	return nil, fmt.Errorf("catmap: time from %T", v)
}

func scalarResourceIdentifier(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("catmap: resource identifier from %T", v)
	}
	// the value is kept verbatim, even when empty; generated identifiers
	// only ever replace an absent or null key.
	return &event.ResourceIdentifier{ID: s}, nil
}

func scalarQuantityError(v any) (any, error) {
	f, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("catmap: quantity error from %T", v)
	}
	return event.NewQuantityError(f), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
