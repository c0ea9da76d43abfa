// Package codec converts wire bytes to and from the engine's tree form
// (string, int64, bool, []any, map[string]any). Every decoder normalizes
// its library's raw output through internal/tree so the engine sees one
// representation regardless of wire format.
package codec

// Codec encodes/decodes tree values to wire bytes.
type Codec interface {
	Name() string
	// Decode parses data and returns a normalized tree.
	Decode(data []byte) (any, error)
	// Encode serializes a tree. The tree is normalized first, so hand-built
	// values with plain ints are accepted.
	Encode(v any) ([]byte, error)
}
