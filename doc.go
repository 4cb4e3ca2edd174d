package foreign

// Package foreign provides:
//
// - An opaque Foreign value type for externally-sourced dynamic data, with
//   typed try-read primitives (ReadString, ReadInt, ReadArray, ...)
// - Type-directed bidirectional conversion via Decoder/Encoder/Codec
//   (compile-time bindings, no runtime registry and no reflection)
// - A stable error model via Errors (nested ErrorAtIndex/ErrorAtProperty
//   wrappers that spell out the exact path to the failing value)
// - JSON/YAML materialization helpers (JSONBytes, YAMLBytes, EncodeJSON)
//
// Design policy:
// - Keep only public APIs in the root package; put codec instances under
//   codec/ and the CLI under cmd/foreign.
// - Decoding is fail-fast: composite codecs stop at the first inner failure
//   and wrap it with exactly one path segment before propagating.
// - Encoding is total; malformed host values cannot arise because the type
//   system already enforces their shape.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  f, err := foreign.JSONBytes(data)
//  c := codec.Array(codec.Int())
//  xs, err := c.Decode(ctx, f)
//
//  out, err := foreign.EncodeJSON(c.Encode(xs))
//
