package catmap

import (
	"reflect"
	"sync"

	"github.com/reoring/catmap/event"
	"github.com/reoring/catmap/internal/strcase"
)

// ParamLister lets a type outside the event hierarchy declare its
// serializable attribute names explicitly. Declared metadata is always
// preferred over the reflective fallback.
type ParamLister interface {
	SerializableParams() []string
}

// extractFunc flattens one typed object. It usually returns a
// map[string]any of the object's serializable attributes (nil when the
// object has none), but the special scalar types return their string form
// instead.
type extractFunc func(v any) any

// ExtractorCache maps a concrete dynamic type to the function that pulls its
// serializable attributes into a generic mapping. It is seeded with the
// special scalar types and the Event record, and synthesizes an extractor for
// any other type on first use. Entries are append-only and keyed by exact
// concrete type (not assignability), so a synthesized function is reused by
// every later instance of that type. Writes are guarded for concurrent first
// use; synthesis is deterministic, so a duplicate build would only waste
// work, never change results.
type ExtractorCache struct {
	mu      sync.Mutex
	funcs   map[reflect.Type]extractFunc
	classes map[reflect.Type]event.Class
}

// NewExtractorCache returns a cache seeded for the given class declarations.
func NewExtractorCache(classes []event.Class) *ExtractorCache {
	c := &ExtractorCache{
		funcs:   make(map[reflect.Type]extractFunc),
		classes: make(map[reflect.Type]event.Class, len(classes)),
	}
	for _, cl := range classes {
		c.classes[cl.Type] = cl
	}

	// special cases known a priori: the scalar types flatten to strings, and
	// the Event record extracts over its declared parameter names.
	stringify := func(v any) any { return v.(interface{ String() string }).String() }
	c.funcs[reflect.TypeOf(event.Time{})] = stringify
	c.funcs[reflect.TypeOf(&event.Time{})] = stringify
	c.funcs[reflect.TypeOf(event.ResourceIdentifier{})] = stringify
	c.funcs[reflect.TypeOf(&event.ResourceIdentifier{})] = stringify
	if cl, ok := c.classes[reflect.TypeOf(event.Event{})]; ok {
		fn := attrExtractor(cl.Params())
		c.funcs[reflect.TypeOf(&event.Event{})] = fn
		c.funcs[reflect.TypeOf(event.Event{})] = fn
	}
	return c
}

var defaultExtractors = sync.OnceValue(func() *ExtractorCache {
	return NewExtractorCache(event.Classes())
})

// DefaultExtractors returns the process-wide cache over the full event
// hierarchy.
func DefaultExtractors() *ExtractorCache { return defaultExtractors() }

// Extract flattens v using the cached function for its dynamic type,
// synthesizing and caching one on first use.
func (c *ExtractorCache) Extract(v any) any {
	t := reflect.TypeOf(v)

	c.mu.Lock()
	fn, ok := c.funcs[t]
	if !ok {
		fn = c.synthesize(t, v)
		c.funcs[t] = fn
	}
	c.mu.Unlock()

	return fn(v)
}

// Size returns the number of cached extractor functions, seeds included.
func (c *ExtractorCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.funcs)
}

// synthesize builds an extractor for t. Parameter discovery is tried in
// order: the hierarchy's class declaration, the type's own ParamLister
// implementation, and finally reflection over exported struct fields. A type
// yielding no parameters gets a function that always returns nil ("object has
// no serializable attributes"), never an error.
func (c *ExtractorCache) synthesize(t reflect.Type, v any) extractFunc {
	base := t
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if cl, ok := c.classes[base]; ok {
		return attrExtractor(cl.Params())
	}
	if pl, ok := v.(ParamLister); ok {
		return attrExtractor(pl.SerializableParams())
	}
	if base.Kind() != reflect.Struct {
		return func(any) any { return nil }
	}
	var params []string
	for i := 0; i < base.NumField(); i++ {
		f := base.Field(i)
		if !f.IsExported() {
			continue
		}
		params = append(params, strcase.CamelToSnake(f.Name))
	}
	return attrExtractor(params)
}

// attrExtractor returns a function collecting the named attributes of an
// object into a mapping. Names with no matching field are skipped; nil is
// returned instead of an empty mapping so "no attributes" stays
// distinguishable from an empty one.
func attrExtractor(params []string) extractFunc {
	return func(v any) any {
		rv := reflect.ValueOf(v)
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return nil
			}
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			return nil
		}
		out := make(map[string]any, len(params))
		for _, name := range params {
			fv := rv.FieldByName(strcase.SnakeToCamel(name))
			if !fv.IsValid() {
				continue
			}
			out[name] = fieldValue(fv)
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
}

// fieldValue unwraps a struct field into an interface value, normalizing
// typed nils to untyped nil.
func fieldValue(fv reflect.Value) any {
	switch fv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		if fv.IsNil() {
			return nil
		}
	}
	return fv.Interface()
}
