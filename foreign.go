package foreign

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Kind enumerates the runtime shapes a Foreign value can take.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindChar
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "Undefined"
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindChar:
		return "Char"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// TypeName identifies the host type a reader expected. It appears in
// TypeMismatch errors and in rendered messages.
type TypeName string

const (
	TypeForeign TypeName = "Foreign"
	TypeString  TypeName = "String"
	TypeChar    TypeName = "Char"
	TypeBoolean TypeName = "Boolean"
	TypeNumber  TypeName = "Number"
	TypeInt     TypeName = "Int"
	TypeArray   TypeName = "Array"
	TypeObject  TypeName = "Object"
)

// Foreign is an externally-sourced, dynamically-shaped value (for example the
// result of parsing JSON). It is opaque to callers: inspect it only through
// the typed readers below, never by poking at its shape directly. Values are
// immutable; decode never mutates its input.
type Foreign struct {
	kind Kind
	b    bool
	n    float64
	s    string
	r    rune
	arr  []Foreign
	obj  map[string]Foreign
}

// Kind reports the runtime shape of f.
func (f Foreign) Kind() Kind { return f.kind }

// ---- constructors (the identity lift from host values) ----

// Undefined returns the canonical "no value" Foreign.
func Undefined() Foreign { return Foreign{kind: KindUndefined} }

// Null returns the Foreign null value.
func Null() Foreign { return Foreign{kind: KindNull} }

// Boolean lifts a bool.
func Boolean(b bool) Foreign { return Foreign{kind: KindBoolean, b: b} }

// Number lifts a float64.
func Number(n float64) Foreign { return Foreign{kind: KindNumber, n: n} }

// Int lifts an int. Foreign has no separate integer shape; integers are
// numbers whose value happens to be integral.
func Int(i int) Foreign { return Foreign{kind: KindNumber, n: float64(i)} }

// String lifts a string.
func String(s string) Foreign { return Foreign{kind: KindString, s: s} }

// Char lifts a single rune.
func Char(r rune) Foreign { return Foreign{kind: KindChar, r: r} }

// Array lifts a slice of Foreign values. The slice is not copied; callers
// must not mutate it afterwards.
func Array(items []Foreign) Foreign { return Foreign{kind: KindArray, arr: items} }

// Object lifts a string-keyed map of Foreign values. The map is not copied;
// callers must not mutate it afterwards.
func Object(entries map[string]Foreign) Foreign { return Foreign{kind: KindObject, obj: entries} }

// ---- typed readers (the try-read collaborator surface) ----

func mismatch(expected TypeName, actual Foreign) error {
	return Errors{TypeMismatch{Expected: expected, Actual: actual}}
}

// ReadString reads f as a string, failing with a TypeMismatch otherwise.
func ReadString(f Foreign) (string, error) {
	if f.kind != KindString {
		return "", mismatch(TypeString, f)
	}
	return f.s, nil
}

// ReadChar reads f as a single character. A Char value is read directly; a
// String is accepted when it contains exactly one rune.
func ReadChar(f Foreign) (rune, error) {
	switch f.kind {
	case KindChar:
		return f.r, nil
	case KindString:
		if utf8.RuneCountInString(f.s) == 1 {
			r, _ := utf8.DecodeRuneInString(f.s)
			return r, nil
		}
	}
	return 0, mismatch(TypeChar, f)
}

// ReadBoolean reads f as a bool.
func ReadBoolean(f Foreign) (bool, error) {
	if f.kind != KindBoolean {
		return false, mismatch(TypeBoolean, f)
	}
	return f.b, nil
}

// ReadNumber reads f as a float64.
func ReadNumber(f Foreign) (float64, error) {
	if f.kind != KindNumber {
		return 0, mismatch(TypeNumber, f)
	}
	return f.n, nil
}

// ReadInt reads f as an int. The value must be a number with an integral
// value representable as int; anything else is a TypeMismatch with expected
// type Int.
func ReadInt(f Foreign) (int, error) {
	if f.kind != KindNumber {
		return 0, mismatch(TypeInt, f)
	}
	// 1<<63 is exactly representable as float64; math.MaxInt is not.
	const minIntF float64 = -1 << 63
	const maxIntF float64 = 1 << 63
	n := f.n
	if n != math.Trunc(n) || n < minIntF || n >= maxIntF {
		return 0, mismatch(TypeInt, f)
	}
	return int(n), nil
}

// ReadArray reads f as an ordered sequence of Foreign values.
func ReadArray(f Foreign) ([]Foreign, error) {
	if f.kind != KindArray {
		return nil, mismatch(TypeArray, f)
	}
	return f.arr, nil
}

// ReadObject reads f as a string-keyed mapping of Foreign values.
func ReadObject(f Foreign) (map[string]Foreign, error) {
	if f.kind != KindObject {
		return nil, mismatch(TypeObject, f)
	}
	return f.obj, nil
}

// IsNullOrUndefined reports whether f carries no value. Optional decoding
// uses this probe before consulting the inner decoder.
func IsNullOrUndefined(f Foreign) bool {
	return f.kind == KindUndefined || f.kind == KindNull
}
