package recjson

import (
	"fmt"
	"reflect"
	"strings"
)

// binder is the default thin layer between the engine and a concrete struct
// type: it builds instances from binding maps (the constructor contract) and
// reads field values back out (the accessor contract). Both sides resolve
// struct fields once at definition time.
type binder[T any] struct {
	rt         reflect.Type
	names      []string       // declared field names in declaration order
	idxByField map[string]int // declared field name -> struct field index
}

func newBinder[T any](fields Fields) (*binder[T], error) {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("recjson: Define[T] requires struct T, got %T", zero)
	}
	idxByName := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := resolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByName[name] = i
	}
	m := make(map[string]int, len(fields))
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		i, ok := idxByName[f.Name]
		if !ok {
			return nil, fmt.Errorf("recjson: struct %s has no field for %q", rt.Name(), f.Name)
		}
		m[f.Name] = i
		names = append(names, f.Name)
	}
	return &binder[T]{rt: rt, names: names, idxByField: m}, nil
}

// resolveStructKey resolves a struct field's external name.
// Priority: recjson tag > json tag name > field name; "-" disables the field.
func resolveStructKey(sf reflect.StructField) string {
	if rt := sf.Tag.Get("recjson"); rt != "" {
		if i := strings.IndexByte(rt, ','); i >= 0 {
			return rt[:i]
		}
		return rt
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// construct builds a T from a complete binding map. Every declared field
// must be bound and no unknown names may appear; violations surface as
// required/unknown_key issues.
func (b *binder[T]) construct(bindings map[string]any) (T, error) {
	var zero T
	var iss Issues
	for _, name := range b.names {
		if _, ok := bindings[name]; !ok {
			iss = AppendIssues(iss, issueAt("/"+name, CodeRequired, nil)[0])
		}
	}
	for name := range bindings {
		if _, ok := b.idxByField[name]; !ok {
			iss = AppendIssues(iss, issueAt("/"+name, CodeUnknownKey, nil)[0])
		}
	}
	if len(iss) > 0 {
		return zero, iss
	}
	rv := reflect.New(b.rt).Elem()
	for _, name := range b.names {
		fv := rv.Field(b.idxByField[name])
		if err := convertAssign(fv, bindings[name], "/"+name); err != nil {
			return zero, err
		}
	}
	return rv.Interface().(T), nil
}

// get reads the current value of a declared field from rec.
func (b *binder[T]) get(rec T, name string) (any, error) {
	idx, ok := b.idxByField[name]
	if !ok {
		return nil, issueAt("/"+name, CodeUnknownKey, nil)
	}
	rv := reflect.ValueOf(rec)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	return rv.Field(idx).Interface(), nil
}

// convertAssign stores v into dst, converting element-wise through slices
// and string-keyed maps so coerced []any trees land in typed struct fields.
func convertAssign(dst reflect.Value, v any, path string) error {
	if v == nil {
		return issueWithHint(path, CodeInvalidType, "null is not supported", nil)
	}
	vv := reflect.ValueOf(v)
	if vv.Type().AssignableTo(dst.Type()) {
		dst.Set(vv)
		return nil
	}
	if vv.Type().ConvertibleTo(dst.Type()) && convertibleKinds(vv.Kind(), dst.Kind()) {
		dst.Set(vv.Convert(dst.Type()))
		return nil
	}
	switch dst.Kind() {
	case reflect.Interface:
		if vv.Type().Implements(dst.Type()) {
			dst.Set(vv)
			return nil
		}
	case reflect.Slice:
		if arr, ok := v.([]any); ok {
			out := reflect.MakeSlice(dst.Type(), len(arr), len(arr))
			for i, el := range arr {
				if err := convertAssign(out.Index(i), el, fmt.Sprintf("%s/%d", path, i)); err != nil {
					return err
				}
			}
			dst.Set(out)
			return nil
		}
	case reflect.Map:
		if m, ok := v.(map[string]any); ok && dst.Type().Key().Kind() == reflect.String {
			out := reflect.MakeMapWithSize(dst.Type(), len(m))
			for k, el := range m {
				ev := reflect.New(dst.Type().Elem()).Elem()
				if err := convertAssign(ev, el, path+"/"+k); err != nil {
					return err
				}
				out.SetMapIndex(reflect.ValueOf(k).Convert(dst.Type().Key()), ev)
			}
			dst.Set(out)
			return nil
		}
	case reflect.Pointer:
		ev := reflect.New(dst.Type().Elem())
		if err := convertAssign(ev.Elem(), v, path); err != nil {
			return err
		}
		dst.Set(ev)
		return nil
	}
	return issueWithHint(path, CodeInvalidType,
		fmt.Sprintf("cannot assign %T to %s", v, dst.Type()), nil)
}

// convertibleKinds limits reflect conversions to same-family kinds so a
// string never silently converts to an int or vice versa.
func convertibleKinds(src, dst reflect.Kind) bool {
	num := func(k reflect.Kind) bool {
		return k >= reflect.Int && k <= reflect.Uint64
	}
	if num(src) && num(dst) {
		return true
	}
	return src == dst
}
