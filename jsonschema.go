package recjson

import (
	"fmt"

	js "github.com/recjson/recjson/jsonschema"
)

// JSONSchema projects the record type's schema tree and field types into a
// minimal JSON Schema document. Sequence schemas become arrays with
// prefixItems, literals become const, literal sets become enum, unions
// become anyOf, nested records become $defs references.
func (t *Type[T]) JSONSchema() (*js.Schema, error) {
	e := &schemaExporter{defs: make(map[string]*js.Schema), visiting: make(map[string]bool)}
	root, err := e.schemaJSON(t.schema, t.fields)
	if err != nil {
		return nil, err
	}
	if len(e.defs) > 0 {
		root.Defs = e.defs
	}
	return root, nil
}

type schemaExporter struct {
	defs     map[string]*js.Schema
	visiting map[string]bool
}

func (e *schemaExporter) schemaJSON(s Schema, fields Fields) (*js.Schema, error) {
	switch n := s.(type) {
	case seqNode:
		items := make([]*js.Schema, len(n))
		for i, sub := range n {
			sj, err := e.schemaJSON(sub, fields)
			if err != nil {
				return nil, err
			}
			items[i] = sj
		}
		ln := len(n)
		return &js.Schema{Type: "array", PrefixItems: items, MinItems: &ln, MaxItems: &ln}, nil
	case strLeaf:
		if ft, ok := fields.Lookup(string(n)); ok {
			return e.fieldTypeJSON(ft)
		}
		return &js.Schema{Const: string(n)}, nil
	case intLeaf:
		return &js.Schema{Const: int64(n)}, nil
	case boolLeaf:
		return &js.Schema{Const: bool(n)}, nil
	default:
		return nil, issueWithHint("/", CodeMalformedSchema, fmt.Sprintf("unexpected schema node %T", s), nil)
	}
}

func (e *schemaExporter) fieldTypeJSON(ft *FieldType) (*js.Schema, error) {
	switch ft.kind {
	case KindString:
		return &js.Schema{Type: "string"}, nil
	case KindInt:
		return &js.Schema{Type: "integer"}, nil
	case KindBool:
		return &js.Schema{Type: "boolean"}, nil
	case KindEnum:
		return &js.Schema{Enum: append([]any(nil), ft.enum...)}, nil
	case KindUnion:
		alts := make([]*js.Schema, len(ft.alts))
		for i, alt := range ft.alts {
			aj, err := e.fieldTypeJSON(alt)
			if err != nil {
				return nil, err
			}
			alts[i] = aj
		}
		return &js.Schema{AnyOf: alts}, nil
	case KindSeq:
		el, err := e.fieldTypeJSON(ft.elem)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "array", Items: el}, nil
	case KindTuple:
		items := make([]*js.Schema, len(ft.elems))
		for i, el := range ft.elems {
			ej, err := e.fieldTypeJSON(el)
			if err != nil {
				return nil, err
			}
			items[i] = ej
		}
		ln := len(ft.elems)
		return &js.Schema{Type: "array", PrefixItems: items, MinItems: &ln, MaxItems: &ln}, nil
	case KindMap:
		return nil, issueWithHint("/", CodeUnsupportedKind,
			"string-keyed mappings are not supported as field types", nil)
	case KindRecord:
		return e.recordRef(ft.rec.Name(), ft.rec)
	case KindRef:
		rt := Lookup(ft.ref)
		if rt == nil {
			return nil, issueAt("/", CodeUnknownRecord, map[string]any{"name": ft.ref})
		}
		return e.recordRef(ft.ref, rt)
	default:
		return nil, issueWithHint("/", CodeMalformedSchema, "unknown field kind", nil)
	}
}

// recordRef emits a $defs reference, materializing the definition once.
// The visiting set keeps recursive record types from looping.
func (e *schemaExporter) recordRef(name string, rt RecordType) (*js.Schema, error) {
	if _, done := e.defs[name]; !done && !e.visiting[name] {
		e.visiting[name] = true
		def, err := e.schemaJSON(rt.Schema(), rt.Fields())
		e.visiting[name] = false
		if err != nil {
			return nil, err
		}
		e.defs[name] = def
	}
	return &js.Schema{Ref: "#/$defs/" + name}, nil
}
