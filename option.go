package foreign

// Option holds either a value of T or nothing. It is the decode target for
// foreign values that may be null, undefined or absent.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, some: true} }

// None returns the empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.some }

// OrElse returns the held value, or fallback when the Option is empty.
func (o Option[T]) OrElse(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}
