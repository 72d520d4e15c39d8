package mawu

import (
	"errors"
	"testing"

	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/parse"
)

func TestFilterRecords(t *testing.T) {
	recs, err := parse.CSVHeaded([]byte("name,age\nann,28\nbob,3\ncat,\n"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Filter(recs, `age != nil && age >= 18`)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromRecords([]map[string]*ir.Value{{"name": ir.FromString("ann"), "age": ir.FromUint(28)}})
	if !ir.Equal(got, want) {
		t.Errorf("got %s", got.ToText())
	}
	got, err = Filter(recs, `index > 0 && record.name != "bob"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Records) != 1 || got.Records[0]["name"].String != "cat" {
		t.Errorf("got %s", got.ToText())
	}
}

func TestFilterRows(t *testing.T) {
	rows, err := parse.CSVHeadless([]byte("1,a\n2,b\n3,c\n"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Filter(rows, `row[0] % 2 == 1`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Rows) != 2 || got.Rows[1][1].String != "c" {
		t.Errorf("got %s", got.ToText())
	}
}

func TestFilterArray(t *testing.T) {
	v, err := parse.JSON([]byte(`[{"k":"x"},{"k":"y"},5]`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Filter(v, `index < 2 && it.k == "y"`)
	if err != nil {
		t.Fatal(err)
	}
	if got.ToText() != `[{"k":"y"}]` {
		t.Errorf("got %s", got.ToText())
	}
}

func TestFilterErrors(t *testing.T) {
	if _, err := Filter(ir.FromUint(1), `true`); !errors.Is(err, ir.ErrType) {
		t.Errorf("scalar: %v", err)
	}
	if _, err := Filter(ir.NewArray(), `1 +`); !errors.Is(err, ErrFilter) {
		t.Errorf("syntax: %v", err)
	}
	if _, err := Filter(ir.NewArray(), `"not bool"`); !errors.Is(err, ErrFilter) {
		t.Errorf("non bool: %v", err)
	}
}
