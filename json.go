package foreign

import (
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// JSONBytes parses a JSON document and lifts it into a Foreign tree. Numbers
// become Number values (float64 semantics), objects become Object, and null
// becomes Null. The input must be a single complete document.
func JSONBytes(b []byte) (Foreign, error) {
	var v any
	if err := j.Unmarshal(b, &v); err != nil {
		return Undefined(), err
	}
	return liftJSON(v)
}

// JSONReader reads a JSON document from r and lifts it into a Foreign tree.
func JSONReader(r io.Reader) (Foreign, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Undefined(), err
	}
	return JSONBytes(b)
}

func liftJSON(v any) (Foreign, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Boolean(x), nil
	case float64:
		return Number(x), nil
	case string:
		return String(x), nil
	case []any:
		items := make([]Foreign, len(x))
		for i, e := range x {
			f, err := liftJSON(e)
			if err != nil {
				return Undefined(), err
			}
			items[i] = f
		}
		return Array(items), nil
	case map[string]any:
		entries := make(map[string]Foreign, len(x))
		for k, e := range x {
			f, err := liftJSON(e)
			if err != nil {
				return Undefined(), err
			}
			entries[k] = f
		}
		return Object(entries), nil
	default:
		return Undefined(), fmt.Errorf("foreign: cannot lift %T from JSON", v)
	}
}

// EncodeJSON renders a Foreign tree as JSON. Undefined and Null both render
// as null; Char renders as a one-rune string.
func EncodeJSON(f Foreign) ([]byte, error) {
	return j.Marshal(lowerJSON(f))
}

func lowerJSON(f Foreign) any {
	switch f.kind {
	case KindBoolean:
		return f.b
	case KindNumber:
		return f.n
	case KindString:
		return f.s
	case KindChar:
		return string(f.r)
	case KindArray:
		out := make([]any, len(f.arr))
		for i, e := range f.arr {
			out[i] = lowerJSON(e)
		}
		return out
	case KindObject:
		out := make(map[string]any, len(f.obj))
		for k, e := range f.obj {
			out[k] = lowerJSON(e)
		}
		return out
	default: // Undefined, Null
		return nil
	}
}
