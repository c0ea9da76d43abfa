// Package jsonschema holds a minimal JSON Schema representation used for
// export. Keep this struct small and extend incrementally.
package jsonschema

// Schema is the subset of JSON Schema the exporter emits.
type Schema struct {
	// Core
	Type  string `json:"type,omitempty"`
	Const any    `json:"const,omitempty"`
	Enum  []any  `json:"enum,omitempty"`

	// Array
	Items       *Schema   `json:"items,omitempty"`
	PrefixItems []*Schema `json:"prefixItems,omitempty"`
	MinItems    *int      `json:"minItems,omitempty"`
	MaxItems    *int      `json:"maxItems,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`

	// References
	Ref  string             `json:"$ref,omitempty"`
	Defs map[string]*Schema `json:"$defs,omitempty"`
}
