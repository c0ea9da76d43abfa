package recjson

import "fmt"

// Match walks schema in lock-step with v and harvests field bindings:
// sequence nodes recurse positionally, field references coerce the
// corresponding element against the declared field type, literal leaves
// must equal the corresponding element exactly. Bindings from sibling
// sub-schemas merge into one flat mapping; well-formed schemas do not
// repeat field names, so later siblings never meaningfully shadow earlier
// ones. A sequence node requires an array of exactly its own length.
func Match(v any, schema Schema, fields Fields) (map[string]any, error) {
	return matchSchema("", v, schema, fields, defaultMaxDepth)
}

func matchSchema(path string, v any, schema Schema, fields Fields, depth int) (map[string]any, error) {
	if depth <= 0 {
		return nil, issueAt(ptr(path), CodeMaxDepth, nil)
	}
	switch n := schema.(type) {
	case seqNode:
		arr, ok := v.([]any)
		if !ok {
			return nil, issueWithHint(ptr(path), CodeInvalidType, "expected array", map[string]any{"got": fmt.Sprintf("%T", v)})
		}
		if len(arr) != len(n) {
			return nil, issueWithHint(ptr(path), CodeArityMismatch, "schema sequence length",
				map[string]any{"want": len(n), "got": len(arr)})
		}
		out := make(map[string]any)
		for i, sub := range n {
			b, err := matchSchema(fmt.Sprintf("%s/%d", path, i), arr[i], sub, fields, depth-1)
			if err != nil {
				return nil, err
			}
			for k, bv := range b {
				out[k] = bv
			}
		}
		return out, nil
	case strLeaf:
		name := string(n)
		if ft, ok := fields.Lookup(name); ok {
			cv, err := coerceValue(path, v, ft, depth-1)
			if err != nil {
				return nil, err
			}
			return map[string]any{name: cv}, nil
		}
		if sv, ok := v.(string); ok && sv == name {
			return map[string]any{}, nil
		}
		return nil, issueAt(ptr(path), CodeLiteralMismatch, map[string]any{"want": name, "got": v})
	case intLeaf:
		if leafEqual(v, int64(n)) {
			return map[string]any{}, nil
		}
		return nil, issueAt(ptr(path), CodeLiteralMismatch, map[string]any{"want": int64(n), "got": v})
	case boolLeaf:
		if bv, ok := v.(bool); ok && bv == bool(n) {
			return map[string]any{}, nil
		}
		return nil, issueAt(ptr(path), CodeLiteralMismatch, map[string]any{"want": bool(n), "got": v})
	default:
		return nil, issueWithHint(ptr(path), CodeMalformedSchema,
			fmt.Sprintf("unexpected schema node %T", schema), nil)
	}
}
