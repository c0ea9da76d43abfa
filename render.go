package recjson

import (
	"fmt"
	"reflect"

	"github.com/recjson/recjson/internal/tree"
)

// Marshaler is the delegation hook for values the classifier cannot walk
// itself. A value of a type defined with Define never needs to implement it;
// the registry resolves those by Go type.
type Marshaler interface {
	ToJSON() (any, error)
}

// Render classifies v and produces a pure JSON tree: primitives pass through
// (integers normalized to int64), sequences and string-keyed mappings are
// walked recursively, record values delegate to their own ToJSON. A value
// with none of those shapes fails with unclassifiable.
func Render(v any) (any, error) {
	return render("", v, defaultMaxDepth)
}

func render(path string, v any, depth int) (any, error) {
	if depth <= 0 {
		return nil, issueAt(ptr(path), CodeMaxDepth, nil)
	}
	if v == nil {
		return nil, issueWithHint(ptr(path), CodeUnclassifiable, "null values are not supported", nil)
	}
	switch x := v.(type) {
	case string, bool, int64:
		return x, nil
	case int, int8, int16, int32, uint, uint8, uint16, uint32, uint64:
		n, err := tree.Normalize(x)
		if err != nil {
			return nil, issueWithHint(ptr(path), CodeUnclassifiable, err.Error(), nil)
		}
		return n, nil
	case []any:
		out := make([]any, len(x))
		for i, el := range x {
			r, err := render(fmt.Sprintf("%s/%d", path, i), el, depth-1)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, el := range x {
			r, err := render(path+"/"+k, el, depth-1)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	case Marshaler:
		r, err := x.ToJSON()
		if err != nil {
			return nil, prefixIssues(path, err)
		}
		return r, nil
	}
	return renderReflect(path, v, depth)
}

// renderReflect handles typed slices, arrays and string-keyed maps, then
// falls back to the registry for values of defined record types.
func renderReflect(path string, v any, depth int) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, issueWithHint(ptr(path), CodeUnclassifiable, "null values are not supported", nil)
		}
		return render(path, rv.Elem().Interface(), depth)
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			r, err := render(fmt.Sprintf("%s/%d", path, i), rv.Index(i).Interface(), depth-1)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, issueWithHint(ptr(path), CodeUnclassifiable,
				"mapping keys must be strings", map[string]any{"key_type": rv.Type().Key().String()})
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			r, err := render(path+"/"+k, iter.Value().Interface(), depth-1)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	}
	if rt := lookupGoType(rv.Type()); rt != nil {
		r, err := rt.ToTree(v)
		if err != nil {
			return nil, prefixIssues(path, err)
		}
		return r, nil
	}
	return nil, issueWithHint(ptr(path), CodeUnclassifiable,
		"value has no supported shape and no ToJSON", map[string]any{"type": fmt.Sprintf("%T", v)})
}
