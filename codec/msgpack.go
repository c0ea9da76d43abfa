package codec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/recjson/recjson/internal/tree"
)

// Msgpack is a Codec backed by vmihailenco/msgpack/v5. The zero value is
// ready to use.
type Msgpack struct{}

func (Msgpack) Name() string { return "msgpack" }

func (Msgpack) Decode(data []byte) (any, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("msgpack: %w", err)
	}
	n, err := tree.Normalize(v)
	if err != nil {
		return nil, fmt.Errorf("msgpack: %w", err)
	}
	return n, nil
}

func (Msgpack) Encode(v any) ([]byte, error) {
	n, err := tree.Normalize(v)
	if err != nil {
		return nil, fmt.Errorf("msgpack: %w", err)
	}
	return msgpack.Marshal(n)
}
