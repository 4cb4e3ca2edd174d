package foreign

import "context"

// Decoder turns a Foreign value into a T or a path-annotated error chain.
// Implementations are pure: the same input always yields the same result, and
// the input tree is never mutated. The context is carried for parity with the
// rest of the ecosystem; decoding has no suspension points of its own.
type Decoder[T any] interface {
	Decode(ctx context.Context, f Foreign) (T, error)
}

// Encoder turns a well-typed host value into its Foreign representation.
// Encoding is total: it never fails for any value of T.
type Encoder[T any] interface {
	Encode(v T) Foreign
}

// Codec performs bidirectional conversion between Foreign and T. For each
// supported type there is exactly one codec value; bindings are resolved at
// compile time by the target type and are never shadowed or replaced at
// runtime. Composite codecs are built generically from their element codec.
type Codec[T any] interface {
	Decoder[T]
	Encoder[T]
}

// KeyCodec bridges a map's required string keys and an arbitrary key type K.
// DecodeKey is partial (reports false when the string does not denote a K);
// EncodeKey is total and produces the canonical string form. It is consumed
// only by the string-keyed map codec.
type KeyCodec[K comparable] interface {
	DecodeKey(s string) (K, bool)
	EncodeKey(k K) string
}

// Decode is a thin wrapper around Decoder.Decode for call sites that prefer
// the free-function form.
func Decode[T any](ctx context.Context, d Decoder[T], f Foreign) (T, error) {
	return d.Decode(ctx, f)
}

// Encode is the encoding counterpart of Decode.
func Encode[T any](e Encoder[T], v T) Foreign {
	return e.Encode(v)
}
