package codec

import (
	"context"

	foreign "github.com/reoring/foreign"
)

// Option lifts a codec for T into a codec for foreign.Option[T]. Null and
// undefined decode to None without consulting the inner codec; any other
// value is handed to the inner codec and wrapped in Some. Optionality is
// transparent: inner failures propagate without an extra path segment.
func Option[T any](inner foreign.Codec[T]) foreign.Codec[foreign.Option[T]] {
	return optionCodec[T]{inner: inner}
}

type optionCodec[T any] struct{ inner foreign.Codec[T] }

func (c optionCodec[T]) Decode(ctx context.Context, f foreign.Foreign) (foreign.Option[T], error) {
	if foreign.IsNullOrUndefined(f) {
		return foreign.None[T](), nil
	}
	v, err := c.inner.Decode(ctx, f)
	if err != nil {
		return foreign.None[T](), err
	}
	return foreign.Some(v), nil
}

func (c optionCodec[T]) Encode(v foreign.Option[T]) foreign.Foreign {
	x, ok := v.Get()
	if !ok {
		return foreign.Undefined()
	}
	return c.inner.Encode(x)
}
