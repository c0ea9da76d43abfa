package recjson

import (
	"fmt"
	"reflect"
)

// defaultMaxDepth bounds recursion over schema/tree nesting. Conversions are
// otherwise proportional to input depth, so a hostile or cyclic input would
// run the stack out before failing.
const defaultMaxDepth = 1000

// Constructor builds a record instance from a complete field-binding map.
// It must accept every declared field by name and reject missing or unknown
// names.
type Constructor[T any] func(bindings map[string]any) (T, error)

// Accessor reads the current value of one declared field from a record.
type Accessor[T any] func(rec T, name string) (any, error)

// Option configures a record type definition.
type Option[T any] func(*typeConfig[T])

type typeConfig[T any] struct {
	ctor     Constructor[T]
	access   Accessor[T]
	maxDepth int
}

// WithConstructor overrides the default reflection-based constructor.
func WithConstructor[T any](fn Constructor[T]) Option[T] {
	return func(c *typeConfig[T]) { c.ctor = fn }
}

// WithAccessor overrides the default reflection-based field accessor.
func WithAccessor[T any](fn Accessor[T]) Option[T] {
	return func(c *typeConfig[T]) { c.access = fn }
}

// WithMaxDepth overrides the recursion guard for this type's conversions.
func WithMaxDepth[T any](n int) Option[T] {
	return func(c *typeConfig[T]) { c.maxDepth = n }
}

// RecordType is the untyped view of a defined record type. It is what
// nested-record field types and the registry hold; Type[T] satisfies it.
type RecordType interface {
	Name() string
	Schema() Schema
	Fields() Fields
	// FromTree converts a parsed tree into a boxed record instance.
	FromTree(v any) (any, error)
	// ToTree converts a boxed record instance into a pure tree.
	ToTree(rec any) (any, error)
}

// Type bundles one schema, one ordered field mapping, and the constructor
// and accessor collaborators into the two directional entry points. A Type
// is immutable after Define and safe for concurrent use.
type Type[T any] struct {
	name     string
	schema   Schema
	fields   Fields
	ctor     Constructor[T]
	access   Accessor[T]
	maxDepth int
}

// Define validates and registers a record type. The default constructor and
// accessor bind field names onto struct T (resolved via recjson/json tags,
// falling back to field names); both can be replaced through options when T
// is not a plain struct.
func Define[T any](name string, schema Schema, fields Fields, opts ...Option[T]) (*Type[T], error) {
	if name == "" {
		return nil, fmt.Errorf("recjson: record type name must not be empty")
	}
	if err := checkSchema(schema, ""); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("recjson: %s declares a field with an empty name", name)
		}
		if f.Type == nil {
			return nil, fmt.Errorf("recjson: %s field %q has a nil type", name, f.Name)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("recjson: %s declares field %q twice", name, f.Name)
		}
		seen[f.Name] = true
	}

	cfg := typeConfig[T]{maxDepth: defaultMaxDepth}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.maxDepth <= 0 {
		cfg.maxDepth = defaultMaxDepth
	}
	if cfg.ctor == nil || cfg.access == nil {
		b, err := newBinder[T](fields)
		if err != nil {
			return nil, err
		}
		if cfg.ctor == nil {
			cfg.ctor = b.construct
		}
		if cfg.access == nil {
			cfg.access = b.get
		}
	}

	t := &Type[T]{
		name:     name,
		schema:   schema,
		fields:   fields,
		ctor:     cfg.ctor,
		access:   cfg.access,
		maxDepth: cfg.maxDepth,
	}
	var zero T
	if err := register(t, reflect.TypeOf(zero)); err != nil {
		return nil, err
	}
	return t, nil
}

// MustDefine is Define panicking on error, for package-level declarations.
func MustDefine[T any](name string, schema Schema, fields Fields, opts ...Option[T]) *Type[T] {
	t, err := Define[T](name, schema, fields, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the registered name.
func (t *Type[T]) Name() string { return t.name }

// Schema returns the shared schema tree.
func (t *Type[T]) Schema() Schema { return t.schema }

// Fields returns the ordered field mapping.
func (t *Type[T]) Fields() Fields { return append(Fields(nil), t.fields...) }

// FromJSON is the sole deserialization entry point: it matches v against
// the schema, harvests field bindings, and constructs the record. Failure
// means a structural or type mismatch between v and the schema.
func (t *Type[T]) FromJSON(v any) (T, error) {
	var zero T
	bindings, err := matchSchema("", v, t.schema, t.fields, t.maxDepth)
	if err != nil {
		return zero, err
	}
	return t.ctor(bindings)
}

// ToJSON projects rec through the schema into a pure tree. It fails only
// when the record graph holds a value the classifier cannot render.
func (t *Type[T]) ToJSON(rec T) (any, error) {
	return projectSchema("", t.schema, t.fields, func(name string) (any, error) {
		return t.access(rec, name)
	}, t.maxDepth)
}

// FromTree implements RecordType.
func (t *Type[T]) FromTree(v any) (any, error) {
	rec, err := t.FromJSON(v)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ToTree implements RecordType.
func (t *Type[T]) ToTree(rec any) (any, error) {
	rv, ok := rec.(T)
	if !ok {
		return nil, issueWithHint("/", CodeInvalidType,
			fmt.Sprintf("expected %s instance, got %T", t.name, rec), nil)
	}
	return t.ToJSON(rv)
}
