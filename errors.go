package recjson

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType     = "invalid_type"
	CodeRequired        = "required"
	CodeUnknownKey      = "unknown_key"
	CodeMalformedSchema = "malformed_schema"
	CodeLiteralMismatch = "literal_mismatch"
	CodeInvalidEnum     = "invalid_enum"
	CodeUnionExhausted  = "union_exhausted"
	CodeArityMismatch   = "arity_mismatch"
	CodeUnsupportedKind = "unsupported_kind"
	CodeUnclassifiable  = "unclassifiable"
	CodeUnknownRecord   = "unknown_record"
	CodeParseError      = "parse_error"
	CodeMaxDepth        = "max_depth"
)

// Issue represents a single conversion failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /2/items/0).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"want":2, "got":3})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of conversion failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. literal_mismatch at /0
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
