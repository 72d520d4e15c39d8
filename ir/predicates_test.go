package ir

import (
	"math"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		v    *Value
		want bool
	}{
		{Null(), true},
		{FromBool(false), false},
		{FromBool(true), false},
		{FromUint(0), true},
		{FromUint(1), false},
		{FromInt(0), true},
		{FromInt(-1), false},
		{FromFloat(0), true},
		{FromFloat(math.Copysign(0, -1)), true},
		{FromFloat(0.1), false},
		{FromString(""), true},
		{FromString(" "), false},
		{NewArray(), true},
		{FromSlice([]*Value{Null()}), false},
		{NewObject(), true},
		{NewRows(), true},
		{FromRecords([]map[string]*Value{{}}), false},
	}
	for _, tt := range tests {
		if got := tt.v.IsEmpty(); got != tt.want {
			t.Errorf("%s %q IsEmpty = %t", tt.v.Type, tt.v.ToText(), got)
		}
	}
}

func TestIsNegative(t *testing.T) {
	tests := []struct {
		v       *Value
		neg, ok bool
	}{
		{FromUint(0), false, true},
		{FromInt(-1), true, true},
		{FromInt(0), false, true},
		{FromFloat(-0.5), true, true},
		{FromFloat(math.Copysign(0, -1)), false, true},
		{FromString("-1"), false, false},
		{Null(), false, false},
	}
	for _, tt := range tests {
		neg, ok := tt.v.IsNegative()
		if neg != tt.neg || ok != tt.ok {
			t.Errorf("%s %q IsNegative = %t, %t", tt.v.Type, tt.v.ToText(), neg, ok)
		}
		pos, pok := tt.v.IsPositive()
		if pok != tt.ok || (ok && pos == neg) {
			t.Errorf("%s %q IsPositive = %t, %t", tt.v.Type, tt.v.ToText(), pos, pok)
		}
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		v    *Value
		want int
	}{
		{Null(), 0},
		{FromBool(true), 0},
		{FromUint(123), 0},
		{FromString("string"), 6},
		{FromString("é"), 2},
		{FromSlice([]*Value{FromUint(1), FromUint(2), FromUint(3)}), 3},
		{FromMap(map[string]*Value{"a": Null(), "b": Null()}), 2},
		{FromRows([][]*Value{{}, {}}), 2},
	}
	for _, tt := range tests {
		if got := tt.v.Len(); got != tt.want {
			t.Errorf("%s Len = %d want %d", tt.v.Type, got, tt.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	for _, typ := range Types() {
		v := &Value{Type: typ}
		checks := map[Type]bool{
			NullType:       v.IsNull(),
			BoolType:       v.IsBool(),
			UintType:       v.IsUint(),
			IntType:        v.IsInt(),
			FloatType:      v.IsFloat(),
			StringType:     v.IsString(),
			ArrayType:      v.IsArray(),
			ObjectType:     v.IsObject(),
			CSVRowsType:    v.IsRows(),
			CSVRecordsType: v.IsRecords(),
		}
		for ct, got := range checks {
			if got != (ct == typ) {
				t.Errorf("%s: Is%s = %t", typ, ct, got)
			}
		}
		if v.IsNumber() != typ.IsNumber() {
			t.Errorf("%s: IsNumber mismatch", typ)
		}
	}
	if !FromBool(true).IsTrue() || FromBool(true).IsFalse() || !FromBool(false).IsFalse() {
		t.Error("IsTrue/IsFalse")
	}
	if FromString("true").IsTrue() {
		t.Error("text is not a bool")
	}
}

func TestTruth(t *testing.T) {
	if Truth(Null()) || Truth(FromBool(false)) || Truth(FromUint(0)) || Truth(FromString("")) {
		t.Error("expected false")
	}
	if !Truth(FromBool(true)) || !Truth(FromInt(-1)) || !Truth(FromString("x")) || !Truth(FromSlice([]*Value{Null()})) {
		t.Error("expected true")
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s round trips to %s", typ, back)
		}
	}
	var x Type
	if err := x.UnmarshalText([]byte("Number")); err == nil {
		t.Error("expected error")
	}
}
