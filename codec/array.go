package codec

import (
	"context"

	foreign "github.com/reoring/foreign"
)

// Array lifts a codec for T into a codec for []T. Elements decode
// sequentially and fail-fast: the first failing element aborts the decode and
// its error is rewrapped with that element's index; later elements are never
// attempted.
func Array[T any](elem foreign.Codec[T]) foreign.Codec[[]T] {
	return arrayCodec[T]{elem: elem}
}

type arrayCodec[T any] struct{ elem foreign.Codec[T] }

func (c arrayCodec[T]) Decode(ctx context.Context, f foreign.Foreign) ([]T, error) {
	items, err := foreign.ReadArray(f)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i := range items {
		v, err := c.elem.Decode(ctx, items[i])
		if err != nil {
			return nil, foreign.AtIndex(i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (c arrayCodec[T]) Encode(v []T) foreign.Foreign {
	items := make([]foreign.Foreign, len(v))
	for i := range v {
		items[i] = c.elem.Encode(v[i])
	}
	return foreign.Array(items)
}
