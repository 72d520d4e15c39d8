package ir

func (v *Value) is(t Type) bool { return v != nil && v.Type == t }

func (v *Value) IsNull() bool    { return v == nil || v.Type == NullType }
func (v *Value) IsBool() bool    { return v.is(BoolType) }
func (v *Value) IsUint() bool    { return v.is(UintType) }
func (v *Value) IsInt() bool     { return v.is(IntType) }
func (v *Value) IsFloat() bool   { return v.is(FloatType) }
func (v *Value) IsString() bool  { return v.is(StringType) }
func (v *Value) IsArray() bool   { return v.is(ArrayType) }
func (v *Value) IsObject() bool  { return v.is(ObjectType) }
func (v *Value) IsRows() bool    { return v.is(CSVRowsType) }
func (v *Value) IsRecords() bool { return v.is(CSVRecordsType) }

func (v *Value) IsNumber() bool {
	return v != nil && v.Type.IsNumber()
}

func (v *Value) IsTrue() bool  { return v.is(BoolType) && v.Bool }
func (v *Value) IsFalse() bool { return v.is(BoolType) && !v.Bool }

// IsEmpty reports whether v holds nothing. Containers and Text are empty at
// zero length, numbers are empty when they equal zero, Null is always empty
// and Bool never is.
func (v *Value) IsEmpty() bool {
	if v == nil {
		return true
	}
	switch v.Type {
	case NullType:
		return true
	case BoolType:
		return false
	case UintType:
		return v.Uint == 0
	case IntType:
		return v.Int == 0
	case FloatType:
		return v.Float == 0
	default:
		return v.Len() == 0
	}
}

// IsNegative reports whether a number is below zero. ok is false for
// non-numbers. Negative zero is not negative.
func (v *Value) IsNegative() (neg, ok bool) {
	if v == nil {
		return false, false
	}
	switch v.Type {
	case UintType:
		return false, true
	case IntType:
		return v.Int < 0, true
	case FloatType:
		return v.Float < 0, true
	}
	return false, false
}

// IsPositive is the negation of IsNegative; zero counts as positive.
func (v *Value) IsPositive() (pos, ok bool) {
	neg, ok := v.IsNegative()
	if !ok {
		return false, false
	}
	return !neg, true
}

// Len returns the number of elements, members, rows or records of a
// container and the byte length of Text. It is 0 for everything else.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.Type {
	case ArrayType:
		return len(v.Values)
	case ObjectType:
		return len(v.Fields)
	case CSVRowsType:
		return len(v.Rows)
	case CSVRecordsType:
		return len(v.Records)
	case StringType:
		return len(v.String)
	default:
		return 0
	}
}
