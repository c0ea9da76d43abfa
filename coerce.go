package recjson

import (
	"fmt"
	"reflect"

	"github.com/recjson/recjson/internal/tree"
)

// Coerce converts one tree value into the shape demanded by ft. It is the
// deserialization-side leaf of the engine; Match calls it at every field
// reference. Primitive descriptors pass the value through without checking
// its runtime kind: the reference behavior is deliberately permissive and
// tightening it would reject inputs that currently round-trip.
func Coerce(v any, ft *FieldType) (any, error) {
	return coerceValue("", v, ft, defaultMaxDepth)
}

func coerceValue(path string, v any, ft *FieldType, depth int) (any, error) {
	if depth <= 0 {
		return nil, issueAt(ptr(path), CodeMaxDepth, nil)
	}
	if ft == nil {
		return nil, issueWithHint(ptr(path), CodeMalformedSchema, "nil field type", nil)
	}
	switch ft.kind {
	case KindString, KindInt, KindBool:
		return canonLeaf(v), nil
	case KindEnum:
		for _, allowed := range ft.enum {
			if leafEqual(v, allowed) {
				return canonLeaf(v), nil
			}
		}
		return nil, issueAt(ptr(path), CodeInvalidEnum, map[string]any{"allowed": ft.enum, "got": v})
	case KindUnion:
		return coerceUnion(path, v, ft, depth)
	case KindSeq:
		arr, ok := v.([]any)
		if !ok {
			return nil, issueWithHint(ptr(path), CodeInvalidType, "expected array", map[string]any{"got": fmt.Sprintf("%T", v)})
		}
		out := make([]any, len(arr))
		for i, el := range arr {
			cv, err := coerceValue(fmt.Sprintf("%s/%d", path, i), el, ft.elem, depth-1)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	case KindTuple:
		arr, ok := v.([]any)
		if !ok {
			return nil, issueWithHint(ptr(path), CodeInvalidType, "expected array", map[string]any{"got": fmt.Sprintf("%T", v)})
		}
		if len(arr) != len(ft.elems) {
			return nil, issueAt(ptr(path), CodeArityMismatch, map[string]any{"want": len(ft.elems), "got": len(arr)})
		}
		out := make([]any, len(arr))
		for i, el := range arr {
			cv, err := coerceValue(fmt.Sprintf("%s/%d", path, i), el, ft.elems[i], depth-1)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	case KindMap:
		return nil, issueWithHint(ptr(path), CodeUnsupportedKind,
			"string-keyed mappings are not supported as field types", nil)
	case KindRecord:
		rec, err := ft.rec.FromTree(v)
		if err != nil {
			return nil, prefixIssues(path, err)
		}
		return rec, nil
	case KindRef:
		rt := Lookup(ft.ref)
		if rt == nil {
			return nil, issueAt(ptr(path), CodeUnknownRecord, map[string]any{"name": ft.ref})
		}
		rec, err := rt.FromTree(v)
		if err != nil {
			return nil, prefixIssues(path, err)
		}
		return rec, nil
	default:
		return nil, issueWithHint(ptr(path), CodeMalformedSchema, "unknown field kind", nil)
	}
}

// coerceUnion tries alternatives in declared order and returns the first
// success. Only the engine's own Issues count as a failed trial; any other
// error aborts immediately so unrelated faults are never masked.
func coerceUnion(path string, v any, ft *FieldType, depth int) (any, error) {
	for _, alt := range ft.alts {
		cv, err := coerceValue(path, v, alt, depth-1)
		if err == nil {
			return cv, nil
		}
		if _, ok := AsIssues(err); !ok {
			return nil, err
		}
	}
	return nil, issueAt(ptr(path), CodeUnionExhausted, map[string]any{"alternatives": len(ft.alts), "got": v})
}

// canonLeaf collapses integer widths so pass-through primitives compare
// equal after a round trip. Non-integer values return unchanged.
func canonLeaf(v any) any {
	switch v.(type) {
	case int, int8, int16, int32, uint, uint8, uint16, uint32, uint64:
		if n, err := tree.Normalize(v); err == nil {
			return n
		}
	}
	return v
}

// leafEqual compares two leaves with integer widths collapsed.
func leafEqual(a, b any) bool {
	a, b = canonLeaf(a), canonLeaf(b)
	switch a.(type) {
	case string, int64, bool:
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
