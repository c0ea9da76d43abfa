package codec

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/recjson/recjson/internal/tree"
)

// CBOR is a Codec backed by fxamacker/cbor. The zero value is NOT ready to
// use; construct with NewCBOR or MustCBOR. Maps decode as map[string]any and
// integers convert to signed form so normalization sees the tree shape
// directly.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec = CBOR{}

// NewCBOR constructs a CBOR codec. When deterministic is true the encoder
// uses RFC 8949 Core Deterministic options, useful when outputs are hashed
// or compared byte-for-byte.
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		IntDec:         cbor.IntDecConvertSigned,
	}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error; handy for package-level
// variables.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (CBOR) Name() string { return "cbor" }

func (c CBOR) Decode(data []byte) (any, error) {
	var v any
	if err := c.dec.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("cbor: %w", err)
	}
	n, err := tree.Normalize(v)
	if err != nil {
		return nil, fmt.Errorf("cbor: %w", err)
	}
	return n, nil
}

func (c CBOR) Encode(v any) ([]byte, error) {
	n, err := tree.Normalize(v)
	if err != nil {
		return nil, fmt.Errorf("cbor: %w", err)
	}
	return c.enc.Marshal(n)
}
