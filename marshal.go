package recjson

import (
	"github.com/recjson/recjson/codec"
)

// Unmarshal decodes JSON bytes and deserializes them through t. It is a
// convenience over UnmarshalWith with the JSON codec.
func Unmarshal[T any](t *Type[T], data []byte) (T, error) {
	return UnmarshalWith(t, codec.JSON{}, data)
}

// Marshal serializes rec through t and encodes the tree as JSON bytes.
func Marshal[T any](t *Type[T], rec T) ([]byte, error) {
	return MarshalWith(t, codec.JSON{}, rec)
}

// UnmarshalWith decodes data with c into a tree and deserializes it through
// t. Decoder failures surface as parse_error issues; everything after the
// tree boundary follows the engine's own error model.
func UnmarshalWith[T any](t *Type[T], c codec.Codec, data []byte) (T, error) {
	var zero T
	v, err := c.Decode(data)
	if err != nil {
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return t.FromJSON(v)
}

// MarshalWith serializes rec through t and encodes the tree with c.
func MarshalWith[T any](t *Type[T], c codec.Codec, rec T) ([]byte, error) {
	v, err := t.ToJSON(rec)
	if err != nil {
		return nil, err
	}
	b, err := c.Encode(v)
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return b, nil
}
