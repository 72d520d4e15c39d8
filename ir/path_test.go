package ir

import (
	"errors"
	"testing"
)

type pathTest struct {
	Path  string
	Doc   *Value
	Res   string
	NoGet bool
}

func doc() *Value {
	return FromMap(map[string]*Value{
		"a":    FromSlice([]*Value{FromUint(1), FromUint(2)}),
		"f":    FromSlice([]*Value{FromUint(0), FromUint(1), FromUint(2), FromString("three")}),
		"f[3]": FromSlice([]*Value{FromUint(0), FromUint(1), FromUint(2)}),
		"o":    FromMap(map[string]*Value{"a": FromString("inner")}),
	})
}

var pathTests = []pathTest{
	{Path: "$", Doc: Null(), Res: ""},
	{Path: "$.a[1]", Doc: doc(), Res: "2"},
	{Path: "$.f[3]", Doc: doc(), Res: "three"},
	{Path: "$.'f[3]'[2]", Doc: doc(), Res: "2"},
	{Path: "$.o.a", Doc: doc(), Res: "inner"},
	{Path: "$[1]", Doc: FromSlice([]*Value{FromUint(1), FromString("x")}), Res: "x"},
	{
		Path: "$[1][0]",
		Doc:  FromRows([][]*Value{{FromString("h")}, {FromUint(28), Null()}}),
		Res:  "28",
	},
	{
		Path: "$[0].name",
		Doc:  FromRecords([]map[string]*Value{{"name": FromString("ann")}}),
		Res:  "ann",
	},
	{NoGet: true, Path: "$[*]", Doc: FromSlice([]*Value{FromUint(1), FromUint(2)}), Res: "[1,2]"},
	{NoGet: true, Path: "$.a[*]", Doc: FromMap(map[string]*Value{"b": NewArray()}), Res: "[]"},
	{NoGet: true, Path: "$..a", Doc: doc(), Res: `[[1,2],"inner"]`},
	{
		NoGet: true,
		Path:  "$[*].id",
		Doc:   FromRecords([]map[string]*Value{{"id": FromUint(1)}, {"id": FromUint(2)}, {}}),
		Res:   "[1,2]",
	},
}

func TestPaths(t *testing.T) {
	for _, pt := range pathTests {
		t.Run(pt.Path, func(t *testing.T) {
			if !pt.NoGet {
				got, err := pt.Doc.GetPath(pt.Path)
				if err != nil {
					t.Fatal(err)
				}
				if got.ToText() != pt.Res {
					t.Errorf("get %s: got %q want %q", pt.Path, got.ToText(), pt.Res)
				}
				return
			}
			got, err := pt.Doc.ListPath(nil, pt.Path)
			if err != nil {
				t.Fatal(err)
			}
			if s := FromSlice(got).ToText(); s != pt.Res {
				t.Errorf("list %s: got %s want %s", pt.Path, s, pt.Res)
			}
		})
	}
}

func TestGetPathErrors(t *testing.T) {
	d := doc()
	if _, err := d.GetPath("a"); !errors.Is(err, ErrPath) {
		t.Errorf("missing $: %v", err)
	}
	if _, err := d.GetPath("$[*]"); !errors.Is(err, ErrPath) {
		t.Errorf("wildcard: %v", err)
	}
	if _, err := d.GetPath("$.a[7]"); !errors.Is(err, ErrIndex) {
		t.Errorf("index: %v", err)
	}
	if _, err := d.GetPath("$.a.b"); !errors.Is(err, ErrType) {
		t.Errorf("type: %v", err)
	}
	if v, err := d.GetPath("$.zzz"); v != nil || err != nil {
		t.Errorf("missing field: %v %v", v, err)
	}
}

func TestPathString(t *testing.T) {
	for _, p := range []string{"$", "$.a[0]", "$[*].b", "$..name", "$.'f[3]'[2]", "$.'it\\'s'"} {
		pp, err := ParsePath(p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if got := pp.String(); got != p {
			t.Errorf("%s: round trips to %s", p, got)
		}
	}
}

func TestGetPathCopies(t *testing.T) {
	d := doc()
	got, err := d.GetPath("$.o")
	if err != nil {
		t.Fatal(err)
	}
	got.Fields["a"].String = "changed"
	if d.Get("o").Get("a").String != "inner" {
		t.Error("GetPath result shares storage")
	}
}
