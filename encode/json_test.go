package encode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/signadot/mawu-format/mawu/ir"
)

type encTest struct {
	in     *ir.Value
	indent int
	out    string
}

func arr(vs ...*ir.Value) *ir.Value { return ir.FromSlice(vs) }

func obj(kvs ...any) *ir.Value {
	m := map[string]*ir.Value{}
	for i := 0; i < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1].(*ir.Value)
	}
	return ir.FromMap(m)
}

func TestEncodeJSON(t *testing.T) {
	tests := []encTest{
		{in: ir.Null(), out: "null"},
		{in: nil, out: "null"},
		{in: ir.FromBool(true), out: "true"},
		{in: ir.FromUint(5), out: "5"},
		{in: ir.FromInt(-5), out: "-5"},
		{in: ir.FromFloat(1), out: "1.0"},
		{in: ir.FromFloat(math.Copysign(0, -1)), out: "-0.0"},
		{in: ir.FromFloat(0.1), out: "0.1"},
		{in: ir.FromFloat(1e21), out: "1.0e+21"},
		{in: ir.FromFloat(-2.5e-9), out: "-2.5e-09"},
		{in: ir.FromString("a\"b\\c/d\n\r\t\b\f"), out: `"a\"b\\c\/d\n\r\t\b\f"`},
		{in: ir.FromString("日本"), out: `"日本"`},
		{in: ir.NewArray(), out: "[]"},
		{in: ir.NewObject(), out: "{}"},
		{in: ir.NewArray(), indent: 2, out: "[]"},
		{in: arr(ir.FromUint(1), ir.FromString("a"), ir.Null()), out: `[1,"a",null]`},
		{in: obj("b", ir.FromUint(1), "a", arr(ir.FromBool(true))), out: `{"a":[true],"b":1}`},
		{
			in:     obj("a", arr(ir.FromUint(1), ir.FromUint(2)), "b", ir.NewObject()),
			indent: 2,
			out:    "{\n  \"a\": [\n    1,\n    2\n  ],\n  \"b\": {}\n}",
		},
		{
			in:     arr(obj("k", ir.FromFloat(2))),
			indent: 4,
			out:    "[\n    {\n        \"k\": 2.0\n    }\n]",
		},
	}
	for _, tt := range tests {
		got, err := JSON(tt.in, tt.indent)
		if err != nil {
			t.Errorf("%s: %v", tt.out, err)
			continue
		}
		if got != tt.out {
			t.Errorf("got %q want %q", got, tt.out)
		}
	}
}

func TestEncodeJSONControlEscape(t *testing.T) {
	got, err := JSON(ir.FromString("\x01\x1f\x7f"), 0)
	if err != nil {
		t.Fatal(err)
	}
	want := `"BSu0001BSu001fBSu007f"`
	want = string(bytes.ReplaceAll([]byte(want), []byte("BS"), []byte{'\\'}))
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodeJSONErrors(t *testing.T) {
	tests := []struct {
		in *ir.Value
		e  error
	}{
		{ir.FromRows(nil), ErrNotJSONType},
		{ir.FromRecords(nil), ErrNotJSONType},
		{arr(ir.FromRows(nil)), ErrNotJSONType},
		{ir.FromFloat(math.NaN()), ErrNonFinite},
		{obj("x", arr(ir.FromFloat(math.Inf(-1)))), ErrNonFinite},
	}
	for _, tt := range tests {
		buf := &bytes.Buffer{}
		err := Encode(tt.in, buf)
		if !errors.Is(err, tt.e) {
			t.Errorf("got %v want %v", err, tt.e)
		}
		if !errors.Is(err, ir.ErrWrite) {
			t.Errorf("%v does not wrap ir.ErrWrite", err)
		}
		if buf.Len() != 0 {
			t.Errorf("partial output %q", buf.String())
		}
	}
}

func TestWriteErrNamesTypes(t *testing.T) {
	err := Encode(ir.FromRows(nil), &bytes.Buffer{})
	we := &WriteErr{}
	if !errors.As(err, &we) {
		t.Fatalf("expected *WriteErr, got %T", err)
	}
	if we.Got != ir.CSVRowsType {
		t.Errorf("got type %s", we.Got)
	}
	if len(we.Want) == 0 {
		t.Error("expected wanted types")
	}
}

func TestEncodeColors(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.UintType, Attr: ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
		},
	}
	got := MustString(arr(ir.FromUint(1), ir.FromString("%")), EncodeColors(c))
	if got != `[<1>,"%"]` {
		t.Errorf("got %s", got)
	}
}
