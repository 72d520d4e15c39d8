package ir

import (
	"fmt"
	"math"
)

// The To conversions may widen, narrow or reparse. Integer targets require
// the value to fit, and floats must be integral. Text is reparsed with
// [FromText] before converting.

func convertErr(v *Value, to string) error {
	return fmt.Errorf("%w: cannot convert %s to %s", ErrConvert, typeOf(v), to)
}

func typeOf(v *Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.Type.String()
}

func (v *Value) reparse(to string) (*Value, error) {
	x, err := FromText(v.String)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	if x.Type == StringType || x.Type == NullType {
		return nil, fmt.Errorf("%w: text %q is not a %s", ErrConvert, v.String, to)
	}
	return x, nil
}

const (
	twoTo63 = float64(1 << 63)
	twoTo64 = twoTo63 * 2
)

func (v *Value) ToUint() (uint64, error) {
	if v == nil {
		return 0, convertErr(v, "Uint")
	}
	switch v.Type {
	case UintType:
		return v.Uint, nil
	case IntType:
		if v.Int < 0 {
			return 0, fmt.Errorf("%w: %d is negative", ErrConvert, v.Int)
		}
		return uint64(v.Int), nil
	case FloatType:
		f := v.Float
		if math.IsNaN(f) || f < 0 || f >= twoTo64 {
			return 0, fmt.Errorf("%w: %v out of Uint range", ErrConvert, f)
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: %v is not integral", ErrConvert, f)
		}
		return uint64(f), nil
	case StringType:
		x, err := v.reparse("Uint")
		if err != nil {
			return 0, err
		}
		return x.ToUint()
	}
	return 0, convertErr(v, "Uint")
}

func (v *Value) ToInt() (int64, error) {
	if v == nil {
		return 0, convertErr(v, "Int")
	}
	switch v.Type {
	case IntType:
		return v.Int, nil
	case UintType:
		if v.Uint > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d out of Int range", ErrConvert, v.Uint)
		}
		return int64(v.Uint), nil
	case FloatType:
		f := v.Float
		if math.IsNaN(f) || f < -twoTo63 || f >= twoTo63 {
			return 0, fmt.Errorf("%w: %v out of Int range", ErrConvert, f)
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: %v is not integral", ErrConvert, f)
		}
		return int64(f), nil
	case StringType:
		x, err := v.reparse("Int")
		if err != nil {
			return 0, err
		}
		return x.ToInt()
	}
	return 0, convertErr(v, "Int")
}

func (v *Value) ToFloat() (float64, error) {
	if v == nil {
		return 0, convertErr(v, "Float")
	}
	switch v.Type {
	case FloatType:
		return v.Float, nil
	case UintType:
		return float64(v.Uint), nil
	case IntType:
		return float64(v.Int), nil
	case StringType:
		x, err := v.reparse("Float")
		if err != nil {
			return 0, err
		}
		return x.ToFloat()
	}
	return 0, convertErr(v, "Float")
}

func (v *Value) ToBool() (bool, error) {
	if v == nil {
		return false, convertErr(v, "Bool")
	}
	switch v.Type {
	case BoolType:
		return v.Bool, nil
	case StringType:
		x, err := v.reparse("Bool")
		if err != nil {
			return false, err
		}
		if x.Type != BoolType {
			return false, fmt.Errorf("%w: text %q is not a Bool", ErrConvert, v.String)
		}
		return x.Bool, nil
	}
	return false, convertErr(v, "Bool")
}

// ToArray returns a deep copy of the elements of an Array.
func (v *Value) ToArray() ([]*Value, error) {
	vs, ok := v.AsArray()
	if !ok {
		return nil, convertErr(v, "Array")
	}
	return cloneSlice(vs), nil
}

// ToObject returns a deep copy of the members of an Object.
func (v *Value) ToObject() (map[string]*Value, error) {
	m, ok := v.AsObject()
	if !ok {
		return nil, convertErr(v, "Object")
	}
	return cloneMap(m), nil
}

func (v *Value) ToRows() ([][]*Value, error) {
	if _, ok := v.AsRows(); !ok {
		return nil, convertErr(v, "CSVRows")
	}
	return v.Clone().Rows, nil
}

func (v *Value) ToRecords() ([]map[string]*Value, error) {
	if _, ok := v.AsRecords(); !ok {
		return nil, convertErr(v, "CSVRecords")
	}
	return v.Clone().Records, nil
}
