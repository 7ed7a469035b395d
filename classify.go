package catmap

import (
	"reflect"

	"github.com/goccy/go-json"
)

// valueKind is the classifier's verdict for a value: leaf scalar, ordered
// sequence, string-keyed mapping, or typed domain object. Dispatch everywhere
// in this package switches on valueKind so the set of cases stays closed and
// exhaustive.
type valueKind int

const (
	kindLeaf valueKind = iota
	kindSequence
	kindMapping
	kindObject
)

// classify decides the kind of v. Numbers, strings, booleans and nil are
// leaves (named string/number types such as enumerations included); slices
// and arrays are sequences; string-keyed maps are mappings; everything else
// is a typed object. Nil pointers classify as leaf nil, non-nil pointers
// classify as whatever they point at.
func classify(v any) valueKind {
	if v == nil {
		return kindLeaf
	}
	switch v.(type) {
	case bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return kindLeaf
	case []any:
		return kindSequence
	case map[string]any:
		return kindMapping
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return kindLeaf
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return kindLeaf
	case reflect.Slice, reflect.Array:
		return kindSequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return kindMapping
		}
		return kindObject
	default:
		return kindObject
	}
}

// isNilValue reports whether v is nil or a typed nil pointer/slice/map boxed
// in an interface.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
