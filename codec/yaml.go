package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/recjson/recjson/internal/tree"
)

// YAML is a Codec backed by gopkg.in/yaml.v3. The zero value is ready to
// use. Only the JSON-compatible subset of YAML survives normalization:
// floats, nulls and non-string keys fail.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	n, err := tree.Normalize(v)
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return n, nil
}

func (YAML) Encode(v any) ([]byte, error) {
	n, err := tree.Normalize(v)
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return yaml.Marshal(n)
}
