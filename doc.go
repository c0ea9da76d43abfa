package recjson

// Package recjson converts between Go record values and JSON-compatible
// trees (strings, integers, booleans, arrays, string-keyed objects), driven
// by a declarative schema instead of per-type conversion code.
//
// A schema is itself a tree. Its leaves are either field references (a
// string naming a declared field of the record) or literal tokens (fixed
// values matched verbatim, typically type tags); interior nodes are
// positional sequences. The same schema drives both directions:
//
//   - ToJSON walks the schema and substitutes live field values for field
//     references, rendering them into pure trees.
//   - FromJSON walks the schema in lock-step with an incoming tree, checks
//     literals for equality, coerces field references against their declared
//     field types, and constructs the record from the collected bindings.
//
// Design policy:
// - Keep only public APIs in the root package; shared details live under internal/.
// - Wire codecs (JSON/YAML/CBOR/Msgpack bytes <-> trees) live under codec/.
// - Every failure surfaces as Issues (JSON Pointer, code, message); nothing
//   is logged, retried, or partially applied.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	type Point struct {
//		X int64 `json:"x"`
//		Y int64 `json:"y"`
//	}
//
//	var pointType = recjson.MustDefine[Point]("Point",
//		recjson.Seq(recjson.Str("point"), recjson.Str("x"), recjson.Str("y")),
//		recjson.Fields{
//			{Name: "x", Type: recjson.Integer()},
//			{Name: "y", Type: recjson.Integer()},
//		},
//	)
//
//	p, err := pointType.FromJSON([]any{"point", int64(3), int64(4)})
//	v, err := pointType.ToJSON(p) // []any{"point", int64(3), int64(4)}
