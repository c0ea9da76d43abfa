package recjson

// Kind enumerates the closed set of field-type variants. The variant is
// fixed when the descriptor is constructed; conversion never re-derives it
// from reflection.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindEnum
	KindUnion
	KindSeq
	KindTuple
	KindMap
	KindRecord
	KindRef
)

// FieldType describes the target shape of one field's value during
// deserialization. Descriptors are immutable after construction and shared
// process-wide by the record type that declares them.
type FieldType struct {
	kind  Kind
	enum  []any
	alts  []*FieldType
	elem  *FieldType
	elems []*FieldType
	rec   RecordType
	ref   string
}

// Kind returns the variant of the descriptor.
func (ft *FieldType) Kind() Kind { return ft.kind }

// String declares a string field. The value passes through coercion
// unchanged; the runtime kind is not checked (see Coerce).
func String() *FieldType { return &FieldType{kind: KindString} }

// Integer declares an integer field. Same pass-through leniency as String.
func Integer() *FieldType { return &FieldType{kind: KindInt} }

// Boolean declares a boolean field. Same pass-through leniency as String.
func Boolean() *FieldType { return &FieldType{kind: KindBool} }

// Enum declares a fixed-choice literal field: the value must be a member of
// the closed, ordered set vals.
func Enum(vals ...any) *FieldType {
	return &FieldType{kind: KindEnum, enum: vals}
}

// Union declares a tagged union. Alternatives are tried in declared order
// and the first successful coercion wins; when two alternatives accept the
// same value the earlier one is authoritative. Order is a precedence rule,
// not an ambiguity.
func Union(alts ...*FieldType) *FieldType {
	return &FieldType{kind: KindUnion, alts: alts}
}

// SliceOf declares a homogeneous sequence: elem is applied to every element
// of a JSON array.
func SliceOf(elem *FieldType) *FieldType {
	return &FieldType{kind: KindSeq, elem: elem}
}

// TupleOf declares a fixed-arity tuple: elems are matched positionally
// against a JSON array of exactly len(elems) elements.
func TupleOf(elems ...*FieldType) *FieldType {
	return &FieldType{kind: KindTuple, elems: elems}
}

// MapOf declares a string-keyed mapping field. Mappings are not supported
// as field types: every coercion against this descriptor fails with
// unsupported_kind. The constructor exists so the limitation is declared
// loudly rather than reached by accident.
func MapOf() *FieldType { return &FieldType{kind: KindMap} }

// Record declares a nested record field that delegates to rt's own
// FromTree/ToTree.
func Record(rt RecordType) *FieldType {
	return &FieldType{kind: KindRecord, rec: rt}
}

// Ref declares a nested record field resolved by name through the global
// registry at coercion time. Late binding makes recursive record types
// definable.
func Ref(name string) *FieldType {
	return &FieldType{kind: KindRef, ref: name}
}

// Field pairs a declared field name with its type descriptor.
type Field struct {
	Name string
	Type *FieldType
}

// Fields is the ordered field-name -> field-type mapping of a record type.
type Fields []Field

// Lookup returns the descriptor declared for name.
func (fs Fields) Lookup(name string) (*FieldType, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// Names returns the declared field names in declaration order.
func (fs Fields) Names() []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name
	}
	return out
}
