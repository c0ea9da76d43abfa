package codec

import (
	"bytes"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/recjson/recjson/internal/tree"
)

// JSON is a Codec backed by goccy/go-json. The zero value is ready to use.
// Numbers decode through UseNumber so integers keep full precision; values
// with a fraction or exponent, and nulls, are rejected.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Decode(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	// reject trailing content after the first document
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, fmt.Errorf("json: trailing data after document")
	}
	n, err := tree.Normalize(v)
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return n, nil
}

func (JSON) Encode(v any) ([]byte, error) {
	n, err := tree.Normalize(v)
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return gojson.Marshal(n)
}
