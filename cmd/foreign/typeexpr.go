package main

import (
	"context"
	"fmt"
	"strings"

	foreign "github.com/reoring/foreign"
	"github.com/reoring/foreign/codec"
)

// Type expressions select a codec at runtime for the CLI:
//
//	string | char | bool | number | int | foreign
//	array<T> | option<T> | map<string,T> | map<int,T>
//
// Every compiled node is erased to Codec[Foreign]: decode runs the typed
// codec and re-encodes the result, so "check" exercises the real combinators
// and yields the canonical form for free.

func compileType(expr string) (foreign.Codec[foreign.Foreign], error) {
	p := &typeParser{src: expr}
	c, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("unexpected trailing input at %d in %q", p.pos, expr)
	}
	return c, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) parse() (foreign.Codec[foreign.Foreign], error) {
	name := p.ident()
	switch name {
	case "string":
		return erase(codec.String()), nil
	case "char":
		return erase(codec.Char()), nil
	case "bool":
		return erase(codec.Boolean()), nil
	case "number":
		return erase(codec.Number()), nil
	case "int":
		return erase(codec.Int()), nil
	case "foreign":
		return codec.Identity(), nil
	case "array":
		elem, err := p.args1()
		if err != nil {
			return nil, err
		}
		return erase(codec.Array(elem)), nil
	case "option":
		elem, err := p.args1()
		if err != nil {
			return nil, err
		}
		return erase(codec.Option(elem)), nil
	case "map":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		key := p.ident()
		if err := p.expect(','); err != nil {
			return nil, err
		}
		elem, err := p.parse()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		switch key {
		case "string":
			return erase(codec.StrMap(codec.StringKey(), elem)), nil
		case "int":
			return erase(codec.StrMap(codec.IntKey(), elem)), nil
		default:
			return nil, fmt.Errorf("unsupported map key type %q (want string or int)", key)
		}
	case "":
		return nil, fmt.Errorf("expected a type name at %d in %q", p.pos, p.src)
	default:
		return nil, fmt.Errorf("unknown type %q", name)
	}
}

func (p *typeParser) args1() (foreign.Codec[foreign.Foreign], error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	elem, err := p.parse()
	if err != nil {
		return nil, err
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	return elem, nil
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *typeParser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= 'a' && c <= 'z' {
			p.pos++
			continue
		}
		break
	}
	return strings.ToLower(p.src[start:p.pos])
}

func (p *typeParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return fmt.Errorf("expected %q at %d in %q", string(c), p.pos, p.src)
	}
	p.pos++
	return nil
}

// erase adapts a typed codec to Codec[Foreign] by decoding and immediately
// re-encoding. The re-encoded value is the canonical foreign form.
func erase[T any](c foreign.Codec[T]) foreign.Codec[foreign.Foreign] {
	return erasedCodec[T]{inner: c}
}

type erasedCodec[T any] struct{ inner foreign.Codec[T] }

func (c erasedCodec[T]) Decode(ctx context.Context, f foreign.Foreign) (foreign.Foreign, error) {
	v, err := c.inner.Decode(ctx, f)
	if err != nil {
		return foreign.Undefined(), err
	}
	return c.inner.Encode(v), nil
}

func (c erasedCodec[T]) Encode(v foreign.Foreign) foreign.Foreign { return v }
