package catmap

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/reoring/catmap/event"
	"github.com/reoring/catmap/internal/deepcopy"
	"github.com/reoring/catmap/internal/strcase"
)

// ConvertOpt bundles reverse-conversion options. The last option passed wins.
type ConvertOpt struct {
	// Destructive lets the converter mutate and rebuild the input mapping in
	// place instead of deep-copying it first. Callers that still need their
	// input afterwards must leave this false.
	Destructive bool
	// Registry overrides DefaultRegistry().
	Registry *Registry
}

// Defaulter is implemented by records that derive defaults for unset
// attributes after construction (generated resource identifiers and the
// like).
type Defaulter interface {
	ApplyDefaults()
}

// Validator is implemented by records that check themselves after
// construction. Validation errors propagate to the caller unmodified; the
// converter adds no classification of its own.
type Validator interface {
	Validate() error
}

// ToCatalog reconstructs a Catalog from a generic mapping. Nested keys that
// the registry recognizes are rebuilt bottom-up into typed records before
// each enclosing record is constructed; unrecognized keys pass through
// untouched and fail construction if the target record has no such parameter.
func ToCatalog(m map[string]any, opts ...ConvertOpt) (*event.Catalog, error) {
	var opt ConvertOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	r := opt.Registry
	if r == nil {
		r = DefaultRegistry()
	}
	if m == nil {
		return nil, singleIssue(CodeInvalidType, "/", "top-level input must be a mapping")
	}
	if !opt.Destructive {
		m = deepcopy.Mapping(m)
	}
	resolved, err := r.resolve(m, "")
	if err != nil {
		return nil, err
	}
	obj, err := r.construct(reflect.TypeOf(event.Catalog{}), resolved, "")
	if err != nil {
		return nil, err
	}
	return obj.(*event.Catalog), nil
}

// resolve rewrites m in place: every value whose key is registered is
// replaced by the corresponding typed record (or sequence of records, or
// scalar-constructed value). Null values and unregistered keys are left
// untouched.
func (r *Registry) resolve(m map[string]any, path string) (map[string]any, error) {
	for key, val := range m {
		t, ok := r.types[key]
		if !ok || isNilValue(val) {
			continue
		}
		kpath := path + "/" + key
		switch tv := val.(type) {
		case []any:
			for i, e := range tv {
				obj, err := r.instantiate(e, t, fmt.Sprintf("%s/%d", kpath, i))
				if err != nil {
					return nil, err
				}
				tv[i] = obj
			}
		case map[string]any:
			obj, err := r.instantiate(tv, t, kpath)
			if err != nil {
				return nil, err
			}
			m[key] = obj
		default:
			if rv := reflect.ValueOf(val); rv.Kind() == reflect.Slice {
				// typed sequences: empty ones keep their identity (the
				// forward converter returns them unchanged), anything else
				// is instantiated element by element.
				if rv.Len() == 0 {
					continue
				}
				out := make([]any, rv.Len())
				for i := 0; i < rv.Len(); i++ {
					obj, err := r.instantiate(rv.Index(i).Interface(), t, fmt.Sprintf("%s/%d", kpath, i))
					if err != nil {
						return nil, err
					}
					out[i] = obj
				}
				m[key] = out
				continue
			}
			// the scalar is the sole constructor argument.
			obj, err := r.constructScalar(t, val)
			if err != nil {
				return nil, Issues{{Path: kpath, Code: CodeConstructError, Message: "scalar construction failed", Cause: err}}
			}
			m[key] = obj
		}
	}
	return m, nil
}

// instantiate builds a record of type t from one generic element. Empty or
// null input is returned unchanged: no record is constructed for it, the
// absent-vs-empty ambiguity is resolved by the eventual constructor. Nested
// registered keys are resolved first so every constructor only ever sees
// fully built children.
func (r *Registry) instantiate(v any, t reflect.Type, path string) (any, error) {
	if isNilValue(v) {
		return v, nil
	}
	if reflect.TypeOf(v) == reflect.PointerTo(t) {
		// already a constructed record, nothing to rebuild.
		return v, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, singleIssue(CodeConstructError, path,
			fmt.Sprintf("cannot construct %s from %T", t, v))
	}
	if len(m) == 0 {
		return m, nil
	}
	if _, err := r.resolve(m, path); err != nil {
		return nil, err
	}
	return r.construct(t, m, path)
}

// construct allocates a record of struct type t and assigns its fields from
// the resolved mapping, then runs the two post-construction phases: derived
// defaults (Defaulter), and the explicit-null fix-up: any key the caller set
// to null must end up null on the record even when a default filled it.
// Finally the record validates itself (Validator); those errors propagate
// as-is.
func (r *Registry) construct(t reflect.Type, m map[string]any, path string) (any, error) {
	if t.Kind() != reflect.Struct {
		return nil, singleIssue(CodeConstructError, path,
			fmt.Sprintf("cannot construct %s from a mapping", t))
	}
	pv := reflect.New(t)
	sv := pv.Elem()
	for key, val := range m {
		field := sv.FieldByName(strcase.SnakeToCamel(key))
		if !field.IsValid() {
			return nil, singleIssue(CodeUnknownParam, path+"/"+key,
				fmt.Sprintf("%s has no parameter %q", t, key))
		}
		if isNilValue(val) {
			continue
		}
		if err := setField(field, val); err != nil {
			return nil, Issues{{Path: path + "/" + key, Code: CodeConstructError,
				Message: fmt.Sprintf("parameter %q", key), Cause: err}}
		}
	}

	obj := pv.Interface()
	if d, ok := obj.(Defaulter); ok {
		d.ApplyDefaults()
	}
	for key, val := range m {
		if !isNilValue(val) {
			continue
		}
		if field := sv.FieldByName(strcase.SnakeToCamel(key)); field.IsValid() && field.CanSet() {
			field.SetZero()
		}
	}
	if vd, ok := obj.(Validator); ok {
		if err := vd.Validate(); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// constructScalar builds a value of type t from a bare scalar: the special
// scalar types use their registered constructors, plain registered property
// types fall back to direct conversion.
func (r *Registry) constructScalar(t reflect.Type, v any) (any, error) {
	if fn, ok := r.scalars[t]; ok {
		return fn(v)
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return v, nil
	}
	if n, ok := v.(json.Number); ok && isNumericKind(t.Kind()) {
		f, err := n.Float64()
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(f).Convert(t).Interface(), nil
	}
	if compatibleKinds(rv.Kind(), t.Kind()) {
		return rv.Convert(t).Interface(), nil
	}
	return nil, fmt.Errorf("catmap: cannot construct %s from %T", t, v)
}

// ---- field assignment ----

func setField(dst reflect.Value, val any) error {
	rv := reflect.ValueOf(val)
	dt := dst.Type()
	if rv.Type().AssignableTo(dt) {
		dst.Set(rv)
		return nil
	}
	switch dt.Kind() {
	case reflect.Pointer:
		elem := reflect.New(dt.Elem())
		if err := setField(elem.Elem(), val); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	case reflect.Slice:
		src, ok := val.([]any)
		if !ok {
			return fmt.Errorf("cannot assign %T to %s", val, dt)
		}
		out := reflect.MakeSlice(dt, len(src), len(src))
		for i, e := range src {
			if isNilValue(e) {
				continue
			}
			if err := setField(out.Index(i), e); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		dst.Set(out)
		return nil
	default:
		return setScalar(dst, val)
	}
}

func setScalar(dst reflect.Value, val any) error {
	dt := dst.Type()
	if n, ok := val.(json.Number); ok {
		switch {
		case isIntKind(dt.Kind()):
			i, err := strconv.ParseInt(n.String(), 10, 64)
			if err != nil {
				return err
			}
			dst.SetInt(i)
			return nil
		case isFloatKind(dt.Kind()):
			f, err := n.Float64()
			if err != nil {
				return err
			}
			dst.SetFloat(f)
			return nil
		}
	}
	rv := reflect.ValueOf(val)
	if compatibleKinds(rv.Kind(), dt.Kind()) {
		dst.Set(rv.Convert(dt))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", val, dt)
}

// compatibleKinds limits reflect conversion to the safe cases: numeric to
// numeric, string-kind to string-kind (named string types included), bool to
// bool. Go's int-to-string rune conversion must never happen here.
func compatibleKinds(src, dst reflect.Kind) bool {
	switch {
	case isNumericKind(src) && isNumericKind(dst):
		return true
	case src == reflect.String && dst == reflect.String:
		return true
	case src == reflect.Bool && dst == reflect.Bool:
		return true
	}
	return false
}

func isNumericKind(k reflect.Kind) bool { return isIntKind(k) || isFloatKind(k) }

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
