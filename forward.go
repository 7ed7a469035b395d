package catmap

import (
	"reflect"

	"github.com/goccy/go-json"
)

// ToGeneric recursively converts a value from the event hierarchy into a
// generic structure of map[string]any, []any and scalar leaves, suitable for
// encoding as JSON or YAML. It is total: every well-formed input converts,
// there is no error path. The process-wide extractor cache is used; see
// (*ExtractorCache).ToGeneric for an injected one.
func ToGeneric(v any) any {
	return DefaultExtractors().ToGeneric(v)
}

// ToGeneric converts v using this cache's extractors.
func (c *ExtractorCache) ToGeneric(v any) any {
	switch classify(v) {
	case kindLeaf:
		return normalizeLeaf(v)
	case kindSequence:
		return c.genericSequence(v)
	case kindMapping:
		return c.genericMapping(v)
	default:
		// a typed object flattens to a mapping (or a string for the scalar
		// types), which is then converted like any other value.
		return c.ToGeneric(c.Extract(v))
	}
}

// genericSequence converts each element, preserving order. An empty sequence
// is returned unchanged: "empty container" and "absent" stay distinct and no
// allocation happens.
func (c *ExtractorCache) genericSequence(v any) any {
	if s, ok := v.([]any); ok {
		if len(s) == 0 {
			return s
		}
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = c.ToGeneric(e)
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Len() == 0 {
		return v
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = c.ToGeneric(rv.Index(i).Interface())
	}
	return out
}

func (c *ExtractorCache) genericMapping(v any) any {
	if m, ok := v.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, e := range m {
			out[k] = c.ToGeneric(e)
		}
		return out
	}
	rv := reflect.ValueOf(v)
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = c.ToGeneric(iter.Value().Interface())
	}
	return out
}

// normalizeLeaf strips named scalar types (enumerations and the like) down to
// their underlying plain Go scalar, and typed nils down to untyped nil, so
// the generic structure carries no domain types.
func normalizeLeaf(v any) any {
	if v == nil {
		return nil
	}
	switch v.(type) {
	case bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}
