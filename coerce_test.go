package recjson_test

import (
	"errors"
	"reflect"
	"testing"

	recjson "github.com/recjson/recjson"
)

type TagA struct {
	V int64 `json:"v"`
}

type TagB struct {
	V int64 `json:"v"`
}

var tagAType = recjson.MustDefine[TagA]("TagA",
	recjson.Seq(recjson.Str("t"), recjson.Str("v")),
	recjson.Fields{{Name: "v", Type: recjson.Integer()}},
)

var tagBType = recjson.MustDefine[TagB]("TagB",
	recjson.Seq(recjson.Str("t"), recjson.Str("v")),
	recjson.Fields{{Name: "v", Type: recjson.Integer()}},
)

func TestCoerce_UnionPrecedence(t *testing.T) {
	// Both literal sets accept 1; the earlier alternative is authoritative.
	ft := recjson.Union(recjson.Enum(int64(0), int64(1)), recjson.Enum(int64(1), int64(2)))
	got, err := recjson.Coerce(int64(1), ft)
	if err != nil {
		t.Fatalf("Coerce failed: %v", err)
	}
	if got != int64(1) {
		t.Fatalf("Coerce = %v, want 1", got)
	}

	// Same input matches both record alternatives; the first-declared one
	// must produce the result.
	u := recjson.Union(recjson.Record(tagBType), recjson.Record(tagAType))
	rec, err := recjson.Coerce([]any{"t", int64(7)}, u)
	if err != nil {
		t.Fatalf("Coerce failed: %v", err)
	}
	if _, ok := rec.(TagB); !ok {
		t.Fatalf("Coerce = %T, want TagB (first-declared alternative)", rec)
	}
}

func TestCoerce_UnionExhausted(t *testing.T) {
	ft := recjson.Union(recjson.Enum(int64(0), int64(1)), recjson.Enum(int64(1), int64(2)))
	_, err := recjson.Coerce(int64(3), ft)
	iss, ok := recjson.AsIssues(err)
	if !ok || iss[0].Code != recjson.CodeUnionExhausted {
		t.Fatalf("err = %v, want union_exhausted", err)
	}
}

// failingRecord is a RecordType whose FromTree fails with a non-engine
// error; union trials must propagate it instead of swallowing it.
type failingRecord struct{}

var errBroken = errors.New("broken collaborator")

func (failingRecord) Name() string              { return "failingRecord" }
func (failingRecord) Schema() recjson.Schema    { return recjson.Seq() }
func (failingRecord) Fields() recjson.Fields    { return nil }
func (failingRecord) FromTree(any) (any, error) { return nil, errBroken }
func (failingRecord) ToTree(any) (any, error)   { return nil, errBroken }

func TestCoerce_UnionDoesNotMaskForeignErrors(t *testing.T) {
	ft := recjson.Union(recjson.Record(failingRecord{}), recjson.Enum(int64(1)))
	_, err := recjson.Coerce(int64(1), ft)
	if !errors.Is(err, errBroken) {
		t.Fatalf("err = %v, want the collaborator's own error", err)
	}
}

func TestCoerce_EnumMismatch(t *testing.T) {
	ft := recjson.Enum("red", "green")
	if _, err := recjson.Coerce("red", ft); err != nil {
		t.Fatalf("member value rejected: %v", err)
	}
	_, err := recjson.Coerce("blue", ft)
	iss, ok := recjson.AsIssues(err)
	if !ok || iss[0].Code != recjson.CodeInvalidEnum {
		t.Fatalf("err = %v, want invalid_enum", err)
	}
}

func TestCoerce_TupleArityEnforced(t *testing.T) {
	ft := recjson.TupleOf(recjson.Integer(), recjson.Integer())
	got, err := recjson.Coerce([]any{int64(1), int64(2)}, ft)
	if err != nil {
		t.Fatalf("Coerce failed: %v", err)
	}
	if !reflect.DeepEqual(got, []any{int64(1), int64(2)}) {
		t.Fatalf("Coerce = %#v", got)
	}
	// A 3-element array must fail, never silently truncate.
	_, err = recjson.Coerce([]any{int64(1), int64(2), int64(3)}, ft)
	iss, ok := recjson.AsIssues(err)
	if !ok || iss[0].Code != recjson.CodeArityMismatch {
		t.Fatalf("err = %v, want arity_mismatch", err)
	}
}

func TestCoerce_SliceElements(t *testing.T) {
	ft := recjson.SliceOf(recjson.Enum(int64(1), int64(2)))
	got, err := recjson.Coerce([]any{int64(1), int64(2), int64(1)}, ft)
	if err != nil {
		t.Fatalf("Coerce failed: %v", err)
	}
	if !reflect.DeepEqual(got, []any{int64(1), int64(2), int64(1)}) {
		t.Fatalf("Coerce = %#v", got)
	}
	_, err = recjson.Coerce("not-an-array", ft)
	iss, ok := recjson.AsIssues(err)
	if !ok || iss[0].Code != recjson.CodeInvalidType {
		t.Fatalf("err = %v, want invalid_type", err)
	}
	_, err = recjson.Coerce([]any{int64(1), int64(9)}, ft)
	iss, ok = recjson.AsIssues(err)
	if !ok || iss[0].Code != recjson.CodeInvalidEnum {
		t.Fatalf("err = %v, want invalid_enum at element", err)
	}
	if iss[0].Path != "/1" {
		t.Fatalf("issue path = %q, want /1", iss[0].Path)
	}
}

func TestCoerce_MappingFieldAlwaysFails(t *testing.T) {
	ft := recjson.MapOf()
	for _, v := range []any{map[string]any{}, "x", int64(1), []any{}} {
		_, err := recjson.Coerce(v, ft)
		iss, ok := recjson.AsIssues(err)
		if !ok || iss[0].Code != recjson.CodeUnsupportedKind {
			t.Fatalf("Coerce(%v) err = %v, want unsupported_kind", v, err)
		}
	}
}

func TestCoerce_PrimitivePassThrough(t *testing.T) {
	// Primitive descriptors do not check the runtime kind; the reference
	// behavior is permissive and kept so.
	got, err := recjson.Coerce(int64(5), recjson.String())
	if err != nil {
		t.Fatalf("Coerce failed: %v", err)
	}
	if got != int64(5) {
		t.Fatalf("Coerce = %v, want pass-through 5", got)
	}
	// Plain ints collapse to int64 so round trips compare equal.
	got, err = recjson.Coerce(5, recjson.Integer())
	if err != nil {
		t.Fatalf("Coerce failed: %v", err)
	}
	if got != int64(5) {
		t.Fatalf("Coerce = %#v, want int64(5)", got)
	}
}

func TestCoerce_UnknownRef(t *testing.T) {
	_, err := recjson.Coerce([]any{"t", int64(1)}, recjson.Ref("NeverDefined"))
	iss, ok := recjson.AsIssues(err)
	if !ok || iss[0].Code != recjson.CodeUnknownRecord {
		t.Fatalf("err = %v, want unknown_record", err)
	}
}
