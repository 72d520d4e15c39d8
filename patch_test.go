package mawu

import (
	"errors"
	"testing"

	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/parse"
)

func mustJSON(t *testing.T, s string) *ir.Value {
	t.Helper()
	v, err := parse.JSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestPatch(t *testing.T) {
	tests := []struct {
		doc, patch, want string
	}{
		{
			doc:   `{"a":1,"b":[1,2]}`,
			patch: `[{"op":"replace","path":"/a","value":"x"},{"op":"add","path":"/b/-","value":3}]`,
			want:  `{"a":"x","b":[1,2,3]}`,
		},
		{
			doc:   `[1,2,3]`,
			patch: `[{"op":"remove","path":"/0"}]`,
			want:  `[2,3]`,
		},
		{
			doc:   `{"a":{"b":"v"}}`,
			patch: `[{"op":"test","path":"/a/b","value":"v"},{"op":"move","from":"/a/b","path":"/c"}]`,
			want:  `{"a":{},"c":"v"}`,
		},
	}
	for _, tt := range tests {
		got, err := Patch(mustJSON(t, tt.doc), []byte(tt.patch))
		if err != nil {
			t.Errorf("%s: %v", tt.patch, err)
			continue
		}
		if want := mustJSON(t, tt.want); !ir.Equal(got, want) {
			t.Errorf("got %s want %s", got.ToText(), tt.want)
		}
	}
}

func TestPatchCSV(t *testing.T) {
	recs, err := parse.CSVHeaded([]byte("name,age\nann,28\nbob,3\n"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Patch(recs, []byte(`[{"op":"replace","path":"/1/age","value":4},{"op":"remove","path":"/0"}]`))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromRecords([]map[string]*ir.Value{{"name": ir.FromString("bob"), "age": ir.FromUint(4)}})
	if !ir.Equal(got, want) {
		t.Errorf("got %s", got.ToText())
	}

	rows, err := parse.CSVHeadless([]byte("1,2\n3,4\n"))
	if err != nil {
		t.Fatal(err)
	}
	got, err = Patch(rows, []byte(`[{"op":"add","path":"/0/-","value":"z"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsRows() || len(got.Rows[0]) != 3 || got.Rows[0][2].String != "z" {
		t.Errorf("got %s", got.ToText())
	}
	if _, err := Patch(rows, []byte(`[{"op":"replace","path":"/0","value":1}]`)); !errors.Is(err, ErrPatch) {
		t.Errorf("shape change: %v", err)
	}
}

func TestPatchErrors(t *testing.T) {
	doc := mustJSON(t, `{"a":1}`)
	if _, err := Patch(doc, []byte(`{`)); !errors.Is(err, ErrPatch) {
		t.Errorf("bad patch: %v", err)
	}
	if _, err := Patch(doc, []byte(`[{"op":"test","path":"/a","value":2}]`)); !errors.Is(err, ErrPatch) {
		t.Errorf("failed test op: %v", err)
	}
	if doc.Get("a").Uint != 1 {
		t.Error("Patch modified its input")
	}
}
