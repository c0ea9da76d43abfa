package recjson

import "fmt"

// Schema is a declarative tree describing how a record's fields map onto a
// JSON tree shape. Leaves are either field references (a string naming a
// declared field) or literal tokens; interior nodes are positional
// sequences. The node set is closed: values are built with Str, Int, Bool
// and Seq only. A schema is fixed when its record type is defined and is
// shared, immutable, by every instance of that type.
type Schema interface {
	schemaNode()
}

type strLeaf string
type intLeaf int64
type boolLeaf bool
type seqNode []Schema

func (strLeaf) schemaNode()  {}
func (intLeaf) schemaNode()  {}
func (boolLeaf) schemaNode() {}
func (seqNode) schemaNode()  {}

// Str returns a string leaf. During conversion it acts as a field reference
// when s names a declared field of the record type, and as a literal token
// otherwise.
func Str(s string) Schema { return strLeaf(s) }

// Int returns an integer literal leaf.
func Int(n int64) Schema { return intLeaf(n) }

// Bool returns a boolean literal leaf.
func Bool(b bool) Schema { return boolLeaf(b) }

// Seq returns a sequence node matched positionally against a JSON array of
// exactly the same length.
func Seq(nodes ...Schema) Schema { return seqNode(nodes) }

// checkSchema validates a schema tree at definition time so the conversion
// walks never meet a foreign node. Nil nodes are the only way to produce a
// malformed tree through the public constructors.
func checkSchema(s Schema, path string) error {
	switch n := s.(type) {
	case strLeaf, intLeaf, boolLeaf:
		return nil
	case seqNode:
		for i, sub := range n {
			if err := checkSchema(sub, fmt.Sprintf("%s/%d", path, i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return issueAt(ptr(path), CodeMalformedSchema, map[string]any{"got": fmt.Sprintf("%T", s)})
	}
}

// ptr renders an internal path as a JSON Pointer, mapping the empty root
// path to "/".
func ptr(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
