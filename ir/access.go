package ir

// The As accessors check the variant and return the stored data without
// copying or coercion. ok is false on a variant mismatch.

func (v *Value) AsBool() (bool, bool) {
	if v == nil || v.Type != BoolType {
		return false, false
	}
	return v.Bool, true
}

func (v *Value) AsUint() (uint64, bool) {
	if v == nil || v.Type != UintType {
		return 0, false
	}
	return v.Uint, true
}

func (v *Value) AsInt() (int64, bool) {
	if v == nil || v.Type != IntType {
		return 0, false
	}
	return v.Int, true
}

func (v *Value) AsFloat() (float64, bool) {
	if v == nil || v.Type != FloatType {
		return 0, false
	}
	return v.Float, true
}

func (v *Value) AsString() (string, bool) {
	if v == nil || v.Type != StringType {
		return "", false
	}
	return v.String, true
}

func (v *Value) AsArray() ([]*Value, bool) {
	if v == nil || v.Type != ArrayType {
		return nil, false
	}
	return v.Values, true
}

func (v *Value) AsObject() (map[string]*Value, bool) {
	if v == nil || v.Type != ObjectType {
		return nil, false
	}
	return v.Fields, true
}

func (v *Value) AsRows() ([][]*Value, bool) {
	if v == nil || v.Type != CSVRowsType {
		return nil, false
	}
	return v.Rows, true
}

func (v *Value) AsRecords() ([]map[string]*Value, bool) {
	if v == nil || v.Type != CSVRecordsType {
		return nil, false
	}
	return v.Records, true
}
