package ir

import "math"

// Equal reports whether a and b have the same type and content. Floats
// compare by value except that zeros must agree in sign. A nil Value equals
// Null.
func Equal(a, b *Value) bool {
	if a == nil {
		a = &Value{}
	}
	if b == nil {
		b = &Value{}
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case UintType:
		return a.Uint == b.Uint
	case IntType:
		return a.Int == b.Int
	case FloatType:
		if a.Float == 0 && b.Float == 0 {
			return math.Signbit(a.Float) == math.Signbit(b.Float)
		}
		return a.Float == b.Float
	case StringType:
		return a.String == b.String
	case ArrayType:
		return equalSlice(a.Values, b.Values)
	case ObjectType:
		return equalMap(a.Fields, b.Fields)
	case CSVRowsType:
		if len(a.Rows) != len(b.Rows) {
			return false
		}
		for i := range a.Rows {
			if !equalSlice(a.Rows[i], b.Rows[i]) {
				return false
			}
		}
		return true
	case CSVRecordsType:
		if len(a.Records) != len(b.Records) {
			return false
		}
		for i := range a.Records {
			if !equalMap(a.Records[i], b.Records[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalSlice(a, b []*Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalMap(a, b map[string]*Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

// Normalize returns a copy of v with every non-negative Int turned into a
// Uint, the variant the parsers choose for the same text.
func Normalize(v *Value) *Value {
	res := v.Clone()
	normalize(res)
	return res
}

func normalize(v *Value) {
	if v == nil {
		return
	}
	switch v.Type {
	case IntType:
		if v.Int >= 0 {
			*v = Value{Type: UintType, Uint: uint64(v.Int)}
		}
	case ArrayType:
		for _, x := range v.Values {
			normalize(x)
		}
	case ObjectType:
		for _, x := range v.Fields {
			normalize(x)
		}
	case CSVRowsType:
		for _, row := range v.Rows {
			for _, x := range row {
				normalize(x)
			}
		}
	case CSVRecordsType:
		for _, rec := range v.Records {
			for _, x := range rec {
				normalize(x)
			}
		}
	}
}
