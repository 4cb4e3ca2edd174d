package codec_test

import (
	"context"
	"reflect"
	"testing"

	foreign "github.com/reoring/foreign"
	"github.com/reoring/foreign/codec"
)

func TestString_Decode_Encode(t *testing.T) {
	ctx := context.Background()
	c := codec.String()

	v, err := c.Decode(ctx, foreign.String("asdf"))
	if err != nil || v != "asdf" {
		t.Fatalf("decode err=%v v=%q", err, v)
	}
	rt, err := c.Decode(ctx, c.Encode(v))
	if err != nil || rt != v {
		t.Fatalf("round trip err=%v v=%q", err, rt)
	}
}

func TestInt_MismatchHasNoWrapper(t *testing.T) {
	ctx := context.Background()
	in := foreign.String("7")

	_, err := codec.Int().Decode(ctx, in)
	es, ok := foreign.AsErrors(err)
	if !ok || len(es) != 1 {
		t.Fatalf("expected a single error, got %v", err)
	}
	tm, ok := es[0].(foreign.TypeMismatch)
	if !ok {
		t.Fatalf("primitive failures must be bare TypeMismatch, got %#v", es[0])
	}
	if tm.Expected != foreign.TypeInt || !reflect.DeepEqual(tm.Actual, in) {
		t.Fatalf("got %#v", tm)
	}
}

func TestPrimitives_RoundTrip(t *testing.T) {
	ctx := context.Background()

	if v, err := codec.Boolean().Decode(ctx, codec.Boolean().Encode(true)); err != nil || v != true {
		t.Fatalf("bool err=%v v=%v", err, v)
	}
	if v, err := codec.Number().Decode(ctx, codec.Number().Encode(2.25)); err != nil || v != 2.25 {
		t.Fatalf("number err=%v v=%v", err, v)
	}
	if v, err := codec.Int().Decode(ctx, codec.Int().Encode(-9)); err != nil || v != -9 {
		t.Fatalf("int err=%v v=%v", err, v)
	}
	if v, err := codec.Char().Decode(ctx, codec.Char().Encode('木')); err != nil || v != '木' {
		t.Fatalf("char err=%v v=%q", err, v)
	}
	if v, err := codec.String().Decode(ctx, codec.String().Encode("")); err != nil || v != "" {
		t.Fatalf("empty string err=%v v=%q", err, v)
	}
}

func TestIdentity_Passthrough(t *testing.T) {
	ctx := context.Background()
	c := codec.Identity()
	for _, f := range []foreign.Foreign{
		foreign.Undefined(),
		foreign.Null(),
		foreign.String("x"),
		foreign.Array([]foreign.Foreign{foreign.Int(1)}),
	} {
		got, err := c.Decode(ctx, f)
		if err != nil || !reflect.DeepEqual(got, f) {
			t.Fatalf("identity decode err=%v got=%v want=%v", err, got, f)
		}
		if !reflect.DeepEqual(c.Encode(f), f) {
			t.Fatalf("identity encode changed the value")
		}
	}
}
