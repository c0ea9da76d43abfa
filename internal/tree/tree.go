// Package tree normalizes decoded wire values into the engine's tree form:
// string, int64, bool, []any, map[string]any. Decoders hand their raw output
// here so the engine sees exactly one representation per value.
package tree

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Normalize converts v into the canonical tree form. Integer values of any
// width collapse to int64. Floating-point numbers, nulls, and non-string map
// keys are outside the supported model and fail.
func Normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("null values are not supported")
	case string:
		return x, nil
	case bool:
		return x, nil
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint:
		return uintToInt64(uint64(x))
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		return uintToInt64(x)
	case float32:
		return nil, fmt.Errorf("float values are not supported: %v", x)
	case float64:
		return nil, fmt.Errorf("float values are not supported: %v", x)
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return nil, fmt.Errorf("non-integer number %q is not supported", x.String())
		}
		return n, nil
	case []any:
		out := make([]any, len(x))
		for i, el := range x {
			n, err := Normalize(el)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, el := range x {
			n, err := Normalize(el)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, el := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string map key %v is not supported", k)
			}
			n, err := Normalize(el)
			if err != nil {
				return nil, err
			}
			out[ks] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

func uintToInt64(u uint64) (any, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("integer %d overflows int64", u)
	}
	return int64(u), nil
}

// Equal reports whether two trees are equal after normalization. Values that
// fail to normalize are never equal.
func Equal(a, b any) bool {
	na, err := Normalize(a)
	if err != nil {
		return false
	}
	nb, err := Normalize(b)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(na, nb)
}
