package tree_test

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/recjson/recjson/internal/tree"
)

func TestNormalize_IntegerWidthsCollapse(t *testing.T) {
	for _, v := range []any{int(7), int8(7), int16(7), int32(7), int64(7), uint(7), uint8(7), uint16(7), uint32(7), uint64(7)} {
		n, err := tree.Normalize(v)
		if err != nil {
			t.Fatalf("Normalize(%T) failed: %v", v, err)
		}
		if n != int64(7) {
			t.Fatalf("Normalize(%T) = %#v, want int64(7)", v, n)
		}
	}
}

func TestNormalize_JSONNumber(t *testing.T) {
	n, err := tree.Normalize(json.Number("42"))
	if err != nil || n != int64(42) {
		t.Fatalf("Normalize = %v, %v", n, err)
	}
	if _, err := tree.Normalize(json.Number("4.2")); err == nil {
		t.Fatalf("expected error for fractional number")
	}
}

func TestNormalize_Rejections(t *testing.T) {
	cases := []any{
		nil,
		1.5,
		float32(1.5),
		uint64(math.MaxUint64),
		map[any]any{1: "x"},
		struct{}{},
	}
	for _, v := range cases {
		if _, err := tree.Normalize(v); err == nil {
			t.Fatalf("Normalize(%#v) should fail", v)
		}
	}
}

func TestNormalize_RecursesComposites(t *testing.T) {
	in := map[string]any{"a": []any{1, map[any]any{"k": uint8(2)}}}
	n, err := tree.Normalize(in)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	want := map[string]any{"a": []any{int64(1), map[string]any{"k": int64(2)}}}
	if !reflect.DeepEqual(n, want) {
		t.Fatalf("Normalize = %#v, want %#v", n, want)
	}
}

func TestEqual(t *testing.T) {
	if !tree.Equal([]any{1, "a"}, []any{int64(1), "a"}) {
		t.Fatalf("trees differing only in int width should be equal")
	}
	if tree.Equal([]any{1}, []any{2}) {
		t.Fatalf("different trees reported equal")
	}
	if tree.Equal([]any{1.5}, []any{1.5}) {
		t.Fatalf("unnormalizable trees must never be equal")
	}
}
