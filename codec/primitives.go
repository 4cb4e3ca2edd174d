package codec

import (
	"context"

	foreign "github.com/reoring/foreign"
)

// String returns the codec binding for string.
func String() foreign.Codec[string] { return stringCodec{} }

type stringCodec struct{}

func (stringCodec) Decode(ctx context.Context, f foreign.Foreign) (string, error) {
	return foreign.ReadString(f)
}
func (stringCodec) Encode(v string) foreign.Foreign { return foreign.String(v) }

// Char returns the codec binding for rune. Decoding accepts a Char value or a
// one-rune String.
func Char() foreign.Codec[rune] { return charCodec{} }

type charCodec struct{}

func (charCodec) Decode(ctx context.Context, f foreign.Foreign) (rune, error) {
	return foreign.ReadChar(f)
}
func (charCodec) Encode(v rune) foreign.Foreign { return foreign.Char(v) }

// Boolean returns the codec binding for bool.
func Boolean() foreign.Codec[bool] { return booleanCodec{} }

type booleanCodec struct{}

func (booleanCodec) Decode(ctx context.Context, f foreign.Foreign) (bool, error) {
	return foreign.ReadBoolean(f)
}
func (booleanCodec) Encode(v bool) foreign.Foreign { return foreign.Boolean(v) }

// Number returns the codec binding for float64.
func Number() foreign.Codec[float64] { return numberCodec{} }

type numberCodec struct{}

func (numberCodec) Decode(ctx context.Context, f foreign.Foreign) (float64, error) {
	return foreign.ReadNumber(f)
}
func (numberCodec) Encode(v float64) foreign.Foreign { return foreign.Number(v) }

// Int returns the codec binding for int. Decoding requires a number with an
// integral value in int range.
func Int() foreign.Codec[int] { return intCodec{} }

type intCodec struct{}

func (intCodec) Decode(ctx context.Context, f foreign.Foreign) (int, error) {
	return foreign.ReadInt(f)
}
func (intCodec) Encode(v int) foreign.Foreign { return foreign.Int(v) }

// Identity returns the passthrough codec for Foreign itself. Decode always
// succeeds and returns the value unchanged.
func Identity() foreign.Codec[foreign.Foreign] { return identityCodec{} }

type identityCodec struct{}

func (identityCodec) Decode(ctx context.Context, f foreign.Foreign) (foreign.Foreign, error) {
	return f, nil
}
func (identityCodec) Encode(v foreign.Foreign) foreign.Foreign { return v }
