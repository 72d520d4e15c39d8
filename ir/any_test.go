package ir

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	v := FromMap(map[string]*Value{
		"n": Null(),
		"u": FromUint(3),
		"i": FromInt(-3),
		"f": FromFloat(0.5),
		"s": FromString("x"),
		"a": FromSlice([]*Value{FromBool(true)}),
	})
	want := map[string]any{
		"n": nil,
		"u": uint64(3),
		"i": int64(-3),
		"f": 0.5,
		"s": "x",
		"a": []any{true},
	}
	if diff := cmp.Diff(want, ToAny(v)); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}

	rows := FromRows([][]*Value{{FromString("a"), Null()}})
	if diff := cmp.Diff([]any{[]any{"a", nil}}, ToAny(rows)); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
	recs := FromRecords([]map[string]*Value{{"k": FromUint(1)}})
	if diff := cmp.Diff([]any{map[string]any{"k": uint64(1)}}, ToAny(recs)); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	got, err := FromAny(map[string]any{
		"pos":  7,
		"neg":  int32(-7),
		"f":    float32(1.5),
		"list": []any{"a", nil},
		"sub":  map[any]any{1: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := FromMap(map[string]*Value{
		"pos":  FromUint(7),
		"neg":  FromInt(-7),
		"f":    FromFloat(1.5),
		"list": FromSlice([]*Value{FromString("a"), Null()}),
		"sub":  FromMap(map[string]*Value{"1": FromBool(true)}),
	})
	if !Equal(got, want) {
		t.Errorf("got %s want %s", got.ToText(), want.ToText())
	}
}

func TestFromAnyErrors(t *testing.T) {
	if _, err := FromAny([]any{math.Inf(1)}); !errors.Is(err, ErrNonFinite) {
		t.Errorf("inf: %v", err)
	}
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrType) {
		t.Errorf("struct: %v", err)
	}
}
