package encode

import (
	"math"
	"testing"

	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/parse"
)

func roundTripValues() []*ir.Value {
	return []*ir.Value{
		ir.Null(),
		ir.FromBool(false),
		ir.FromUint(math.MaxUint64),
		ir.FromInt(math.MinInt64),
		ir.FromInt(7),
		ir.FromFloat(5),
		ir.FromFloat(0.1),
		ir.FromFloat(1.5e-7),
		ir.FromFloat(1e300),
		ir.FromFloat(math.MaxFloat64),
		ir.FromFloat(math.SmallestNonzeroFloat64),
		ir.FromFloat(math.Copysign(0, -1)),
		ir.FromString(""),
		ir.FromString("tab\there \"q\" back\\slash /\x00\x1f 日本 \U0001F600"),
		ir.NewArray(),
		ir.NewObject(),
		arr(ir.FromUint(1), arr(ir.NewArray(), ir.NewObject()), ir.Null()),
		obj(
			"a", obj("b", arr(ir.FromFloat(-1.25), ir.FromString("x"))),
			"", ir.FromInt(-1),
			"k\"ey", ir.FromBool(true),
		),
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, indent := range []int{0, 2} {
		for _, v := range roundTripValues() {
			s, err := JSON(v, indent)
			if err != nil {
				t.Fatal(err)
			}
			got, err := parse.JSON([]byte(s))
			if err != nil {
				t.Fatalf("%s: %v", s, err)
			}
			if !ir.Equal(ir.Normalize(v), ir.Normalize(got)) {
				t.Errorf("indent %d: %s reparsed as %s", indent, s, got.ToText())
			}
		}
	}
}

func TestJSONIdempotent(t *testing.T) {
	for _, v := range roundTripValues() {
		s1 := MustString(v, Indent(2))
		p1, err := parse.JSON([]byte(s1))
		if err != nil {
			t.Fatal(err)
		}
		s2 := MustString(p1, Indent(2))
		if s1 != s2 {
			t.Errorf("%q != %q", s1, s2)
		}
		p2, err := parse.JSON([]byte(s2))
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(p1, p2) {
			t.Errorf("reparse differs for %q", s1)
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	recs := ir.FromRecords([]rec{
		{"name": ir.FromString("ann"), "age": ir.FromUint(28), "score": ir.FromFloat(-1.5), "note": ir.FromString("")},
		{"name": ir.FromString("bob, jr"), "age": ir.Null(), "score": ir.FromInt(-3), "note": ir.FromString("said \"hi\"")},
	})
	s, err := CSVHeaded(recs)
	if err != nil {
		t.Fatal(err)
	}
	got, err := parse.CSVHeaded([]byte(s))
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	if !ir.Equal(recs, got) {
		t.Errorf("%q reparsed as %s", s, got.ToText())
	}

	rows := ir.FromRows([][]*ir.Value{
		{ir.FromString("a"), ir.FromBool(true), ir.FromFloat(2)},
		{ir.FromUint(1), ir.Null(), ir.FromString("line\r\nbreak")},
	})
	s, err = CSVHeadless(rows)
	if err != nil {
		t.Fatal(err)
	}
	got, err = parse.CSVHeadless([]byte(s))
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	if !ir.Equal(rows, got) {
		t.Errorf("%q reparsed as %s", s, got.ToText())
	}

	for _, rows := range []*ir.Value{
		ir.FromRows([][]*ir.Value{{ir.Null()}, {ir.FromString("x")}}),
		ir.FromRows([][]*ir.Value{{ir.FromString("x")}, {ir.Null()}, {ir.Null()}}),
	} {
		s, err := CSVHeadless(rows)
		if err != nil {
			t.Fatal(err)
		}
		got, err := parse.CSVHeadless([]byte(s))
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if !ir.Equal(rows, got) {
			t.Errorf("%q reparsed as %s", s, got.ToText())
		}
	}

	nulls := ir.FromRecords([]rec{{"k": ir.Null()}, {"k": ir.FromUint(1)}})
	s, err = CSVHeaded(nulls)
	if err != nil {
		t.Fatal(err)
	}
	got, err = parse.CSVHeaded([]byte(s))
	if err != nil {
		t.Fatalf("%q: %v", s, err)
	}
	if !ir.Equal(nulls, got) {
		t.Errorf("%q reparsed as %s", s, got.ToText())
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	v := obj("a", arr(ir.FromUint(1), ir.FromString("x")), "b", obj("c", ir.FromBool(true)))
	s := MustString(v, EncodeFormat(format.YAMLFormat))
	got, err := parse.Parse([]byte(s), parse.ParseYAML())
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	if !ir.Equal(v, got) {
		t.Errorf("%s reparsed as %s", s, got.ToText())
	}
}
