package foreign

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLBytes parses a YAML document and lifts it into a Foreign tree. Mapping
// keys must be strings; integers and floats both lift to Number.
func YAMLBytes(b []byte) (Foreign, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return Undefined(), err
	}
	return liftYAML(v)
}

// YAMLReader reads a YAML document from r and lifts it into a Foreign tree.
func YAMLReader(r io.Reader) (Foreign, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Undefined(), err
	}
	return YAMLBytes(b)
}

func liftYAML(v any) (Foreign, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Boolean(x), nil
	case int:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	case string:
		return String(x), nil
	case []any:
		items := make([]Foreign, len(x))
		for i, e := range x {
			f, err := liftYAML(e)
			if err != nil {
				return Undefined(), err
			}
			items[i] = f
		}
		return Array(items), nil
	case map[string]any:
		entries := make(map[string]Foreign, len(x))
		for k, e := range x {
			f, err := liftYAML(e)
			if err != nil {
				return Undefined(), err
			}
			entries[k] = f
		}
		return Object(entries), nil
	case map[any]any:
		entries := make(map[string]Foreign, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return Undefined(), fmt.Errorf("foreign: YAML mapping key %v is not a string", k)
			}
			f, err := liftYAML(e)
			if err != nil {
				return Undefined(), err
			}
			entries[ks] = f
		}
		return Object(entries), nil
	default:
		return Undefined(), fmt.Errorf("foreign: cannot lift %T from YAML", v)
	}
}
