package mawu

import (
	"bytes"
	"testing"

	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/libdiff"
	"github.com/signadot/mawu-format/mawu/parse"
)

func TestDiff(t *testing.T) {
	a := mustJSON(t, `{"a":1,"b":[true]}`)
	b := mustJSON(t, `{"a":2,"b":[true]}`)
	lines, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := libdiff.Format(buf, lines); err != nil {
		t.Fatal(err)
	}
	want := "  {\n-   \"a\": 1,\n+   \"a\": 2,\n    \"b\": [\n      true\n    ]\n  }\n"
	if buf.String() != want {
		t.Errorf("got\n%s", buf.String())
	}

	lines, err = Diff(a, a.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if libdiff.Changed(lines) {
		t.Error("equal values differ")
	}
}

func TestDiffCSV(t *testing.T) {
	a, err := parse.CSVHeaded([]byte("k,v\na,1\nb,2\n"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.CSVHeaded([]byte("k,v\na,1\nb,3\n"))
	if err != nil {
		t.Fatal(err)
	}
	lines, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	var ins, del int
	for _, ln := range lines {
		switch ln.Op {
		case libdiff.Insert:
			ins++
		case libdiff.Delete:
			del++
		}
	}
	if ins != 1 || del != 1 {
		t.Errorf("got %+v", lines)
	}
	if _, err := Diff(ir.FromSlice([]*ir.Value{ir.FromRows(nil)}), a); err == nil {
		t.Error("expected write error")
	}
}
