package ir

import (
	"fmt"
	"math"
	"reflect"
)

// ToAny converts v to plain Go data: nil, bool, uint64, int64, float64,
// string, []any and map[string]any. CSV rows become a []any of []any and
// CSV records a []any of map[string]any.
func ToAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case BoolType:
		return v.Bool
	case UintType:
		return v.Uint
	case IntType:
		return v.Int
	case FloatType:
		return v.Float
	case StringType:
		return v.String
	case ArrayType:
		return sliceToAny(v.Values)
	case ObjectType:
		return mapToAny(v.Fields)
	case CSVRowsType:
		res := make([]any, len(v.Rows))
		for i, row := range v.Rows {
			res[i] = sliceToAny(row)
		}
		return res
	case CSVRecordsType:
		res := make([]any, len(v.Records))
		for i, rec := range v.Records {
			res[i] = mapToAny(rec)
		}
		return res
	default:
		return nil
	}
}

func sliceToAny(vs []*Value) []any {
	res := make([]any, len(vs))
	for i, x := range vs {
		res[i] = ToAny(x)
	}
	return res
}

func mapToAny(m map[string]*Value) map[string]any {
	res := make(map[string]any, len(m))
	for k, x := range m {
		res[k] = ToAny(x)
	}
	return res
}

// FromAny converts plain Go data to a Value. Integers follow the parsers'
// policy: non-negative values are Uint. Non-finite floats are rejected.
func FromAny(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return t.Clone(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case []any:
		vs := make([]*Value, len(t))
		for i, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vs[i] = v
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Value, len(t))
		for k, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf(".%s: %w", k, err)
			}
			m[k] = v
		}
		return FromMap(m), nil
	case map[any]any:
		m := make(map[string]*Value, len(t))
		for k, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf(".%v: %w", k, err)
			}
			m[fmt.Sprint(k)] = v
		}
		return FromMap(m), nil
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i >= 0 {
			return FromUint(uint64(i)), nil
		}
		return FromInt(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %v", ErrNonFinite, f)
		}
		return FromFloat(f), nil
	}
	return nil, fmt.Errorf("%w: cannot convert %T", ErrType, x)
}
