// Package deepcopy duplicates generic node trees (map[string]any, []any and
// scalar leaves) so that non-destructive reverse conversion never mutates the
// caller's input.
package deepcopy

import "reflect"

// Node returns a deep copy of v. Maps and slices are re-allocated recursively;
// scalar leaves (and any non-container value) are returned as-is. Empty
// containers are copied too, preserving the empty-vs-nil distinction.
func Node(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Node(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Node(e)
		}
		return out
	default:
		// typed slices travel through generic trees too (an empty sequence
		// keeps its concrete type on the forward path); copy their backing
		// array so the caller's slice is never shared.
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && !rv.IsNil() {
			out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
			for i := 0; i < rv.Len(); i++ {
				if e := Node(rv.Index(i).Interface()); e != nil {
					out.Index(i).Set(reflect.ValueOf(e))
				}
			}
			return out.Interface()
		}
		return v
	}
}

// Mapping copies a top-level mapping. nil in, nil out.
func Mapping(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return Node(m).(map[string]any)
}
