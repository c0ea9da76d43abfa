package recjson

import "fmt"

// Project interprets schema against a record's field values: sequence nodes
// recurse, field references render the live field value through the
// classifier, literal leaves pass through unchanged as fixed markers in the
// output. get resolves a declared field name to its current value.
func Project(schema Schema, fields Fields, get func(name string) (any, error)) (any, error) {
	return projectSchema("", schema, fields, get, defaultMaxDepth)
}

func projectSchema(path string, schema Schema, fields Fields, get func(string) (any, error), depth int) (any, error) {
	if depth <= 0 {
		return nil, issueAt(ptr(path), CodeMaxDepth, nil)
	}
	switch n := schema.(type) {
	case seqNode:
		out := make([]any, len(n))
		for i, sub := range n {
			r, err := projectSchema(fmt.Sprintf("%s/%d", path, i), sub, fields, get, depth-1)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case strLeaf:
		name := string(n)
		if _, ok := fields.Lookup(name); !ok {
			return name, nil
		}
		fv, err := get(name)
		if err != nil {
			return nil, prefixIssues(path, err)
		}
		return render(path, fv, depth-1)
	case intLeaf:
		return int64(n), nil
	case boolLeaf:
		return bool(n), nil
	default:
		return nil, issueWithHint(ptr(path), CodeMalformedSchema,
			fmt.Sprintf("unexpected schema node %T", schema), nil)
	}
}
