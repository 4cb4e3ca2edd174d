package codec

import (
	"context"

	foreign "github.com/reoring/foreign"
)

// StrMap lifts a key codec for K and a codec for T into a codec for map[K]T
// against a string-keyed foreign object. Entry decoding is fail-fast; entry
// visitation order is implementation-defined. A value that decodes fine can
// still fail the entry when its key does not decode to K. When the key codec
// is not injective, colliding entries silently overwrite each other, in both
// directions.
func StrMap[K comparable, T any](keys foreign.KeyCodec[K], elem foreign.Codec[T]) foreign.Codec[map[K]T] {
	return strMapCodec[K, T]{keys: keys, elem: elem}
}

type strMapCodec[K comparable, T any] struct {
	keys foreign.KeyCodec[K]
	elem foreign.Codec[T]
}

func (c strMapCodec[K, T]) Decode(ctx context.Context, f foreign.Foreign) (map[K]T, error) {
	entries, err := foreign.ReadObject(f)
	if err != nil {
		return nil, err
	}
	out := make(map[K]T, len(entries))
	for key, fv := range entries {
		v, err := c.elem.Decode(ctx, fv)
		if err != nil {
			return nil, foreign.AtProperty(key, err)
		}
		k, ok := c.keys.DecodeKey(key)
		if !ok {
			return nil, foreign.AtProperty(key, foreign.Errors{foreign.CustomError{Message: "Cannot decode key"}})
		}
		out[k] = v
	}
	return out, nil
}

func (c strMapCodec[K, T]) Encode(v map[K]T) foreign.Foreign {
	entries := make(map[string]foreign.Foreign, len(v))
	for k, val := range v {
		entries[c.keys.EncodeKey(k)] = c.elem.Encode(val)
	}
	return foreign.Object(entries)
}
