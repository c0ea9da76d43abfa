package recjson_test

import (
	"reflect"
	"testing"

	recjson "github.com/recjson/recjson"
	"github.com/recjson/recjson/codec"
)

func TestUnmarshal_JSONBytes(t *testing.T) {
	data := []byte(`["cart", [["item","apple",3]], 3]`)
	cart, err := recjson.Unmarshal(cartType, data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := Cart{Items: []Item{{SKU: "apple", Qty: 3}}, Total: 3}
	if !reflect.DeepEqual(cart, want) {
		t.Fatalf("Unmarshal = %#v, want %#v", cart, want)
	}

	out, err := recjson.Marshal(cartType, cart)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := recjson.Unmarshal(cartType, out)
	if err != nil {
		t.Fatalf("re-Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(back, cart) {
		t.Fatalf("round trip = %#v, want %#v", back, cart)
	}
}

func TestUnmarshal_DecoderFailureIsParseError(t *testing.T) {
	_, err := recjson.Unmarshal(cartType, []byte(`["cart",`))
	iss, ok := recjson.AsIssues(err)
	if !ok || iss[0].Code != recjson.CodeParseError {
		t.Fatalf("err = %v, want parse_error", err)
	}
}

func TestUnmarshal_FloatRejected(t *testing.T) {
	_, err := recjson.Unmarshal(itemType, []byte(`["item","apple",1.5]`))
	iss, ok := recjson.AsIssues(err)
	if !ok || iss[0].Code != recjson.CodeParseError {
		t.Fatalf("err = %v, want parse_error for float input", err)
	}
}

func TestMarshalWith_AlternateCodecs(t *testing.T) {
	item := Item{SKU: "pear", Qty: 2}
	for _, c := range []codec.Codec{codec.YAML{}, codec.MustCBOR(true), codec.Msgpack{}} {
		data, err := recjson.MarshalWith(itemType, c, item)
		if err != nil {
			t.Fatalf("%s: MarshalWith failed: %v", c.Name(), err)
		}
		back, err := recjson.UnmarshalWith(itemType, c, data)
		if err != nil {
			t.Fatalf("%s: UnmarshalWith failed: %v", c.Name(), err)
		}
		if back != item {
			t.Fatalf("%s: round trip = %#v, want %#v", c.Name(), back, item)
		}
	}
}
