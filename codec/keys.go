package codec

import (
	"strconv"

	foreign "github.com/reoring/foreign"
)

// StringKey returns the identity key codec for string-keyed maps.
func StringKey() foreign.KeyCodec[string] { return stringKey{} }

type stringKey struct{}

func (stringKey) DecodeKey(s string) (string, bool) { return s, true }
func (stringKey) EncodeKey(k string) string         { return k }

// IntKey returns the key codec for int-keyed maps. Decoding is a strict
// base-10 parse: any non-integer text, surrounding whitespace, or overflow
// yields no key. Encoding is the canonical decimal form, so round-trips are
// exact; note that decode is not injective ("07" and "7" both decode to 7).
func IntKey() foreign.KeyCodec[int] { return intKey{} }

type intKey struct{}

func (intKey) DecodeKey(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func (intKey) EncodeKey(k int) string { return strconv.Itoa(k) }
