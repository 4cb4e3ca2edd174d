package codec_test

import (
	"context"
	"reflect"
	"testing"

	foreign "github.com/reoring/foreign"
	"github.com/reoring/foreign/codec"
)

func TestArray_Decode(t *testing.T) {
	ctx := context.Background()
	c := codec.Array(codec.Int())

	in := foreign.Array([]foreign.Foreign{foreign.Int(1), foreign.Int(2), foreign.Int(3)})
	got, err := c.Decode(ctx, in)
	if err != nil || !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("decode err=%v got=%v", err, got)
	}
}

func TestArray_FailFastAtIndex(t *testing.T) {
	ctx := context.Background()
	c := codec.Array(codec.Int())
	bad := foreign.String("two")

	in := foreign.Array([]foreign.Foreign{foreign.Int(1), bad, foreign.Int(3)})
	_, err := c.Decode(ctx, in)
	es, ok := foreign.AsErrors(err)
	if !ok || len(es) != 1 {
		t.Fatalf("expected a single error, got %v", err)
	}
	w, ok := es[0].(foreign.ErrorAtIndex)
	if !ok || w.Index != 1 {
		t.Fatalf("expected ErrorAtIndex(1), got %#v", es[0])
	}
	// the inner cause equals decoding the bad element alone
	_, alone := codec.Int().Decode(ctx, bad)
	aloneErrs, _ := foreign.AsErrors(alone)
	if !reflect.DeepEqual(w.Inner, aloneErrs[0]) {
		t.Fatalf("inner=%#v alone=%#v", w.Inner, aloneErrs[0])
	}
	// and it is wrapped exactly once
	if _, nested := w.Inner.(foreign.ErrorAtIndex); nested {
		t.Fatalf("inner cause must not carry an extra index wrapper")
	}
}

func TestArray_NotAnArray(t *testing.T) {
	ctx := context.Background()
	_, err := codec.Array(codec.Int()).Decode(ctx, foreign.String("nope"))
	es, ok := foreign.AsErrors(err)
	if !ok || len(es) != 1 {
		t.Fatalf("expected one error, got %v", err)
	}
	tm, ok := es[0].(foreign.TypeMismatch)
	if !ok || tm.Expected != foreign.TypeArray {
		t.Fatalf("expected TypeMismatch(Array), got %#v", es[0])
	}
}

func TestArray_RoundTripAndEmpty(t *testing.T) {
	ctx := context.Background()
	c := codec.Array(codec.String())

	for _, in := range [][]string{{"a", "b", "c"}, {}} {
		got, err := c.Decode(ctx, c.Encode(in))
		if err != nil || !reflect.DeepEqual(got, in) {
			t.Fatalf("round trip err=%v got=%v want=%v", err, got, in)
		}
	}

	arr, err := foreign.ReadArray(c.Encode(nil))
	if err != nil || len(arr) != 0 {
		t.Fatalf("nil slice should encode to an empty foreign array, err=%v", err)
	}
}

func TestArray_Nested_PathOrder(t *testing.T) {
	ctx := context.Background()
	c := codec.Array(codec.Array(codec.Boolean()))

	in := foreign.Array([]foreign.Foreign{
		foreign.Array([]foreign.Foreign{foreign.Boolean(true)}),
		foreign.Array([]foreign.Foreign{foreign.Boolean(true), foreign.Int(0)}),
	})
	_, err := c.Decode(ctx, in)
	if err == nil {
		t.Fatalf("expected failure")
	}
	want := "at index 1: at index 1: expected Boolean but got Number"
	if got := err.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
