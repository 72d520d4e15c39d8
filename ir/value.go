package ir

// Value is one node of a value tree. Type selects which fields are
// meaningful; the others are zero.
type Value struct {
	Type Type

	Bool   bool
	Uint   uint64
	Int    int64
	Float  float64
	String string

	// Values holds Array elements.
	Values []*Value
	// Fields holds Object members.
	Fields map[string]*Value
	// Rows holds the rows of a headless CSV document.
	Rows [][]*Value
	// Records holds the records of a headed CSV document.
	Records []map[string]*Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(b bool) *Value {
	return &Value{Type: BoolType, Bool: b}
}

func FromUint(u uint64) *Value {
	return &Value{Type: UintType, Uint: u}
}

func FromInt(i int64) *Value {
	return &Value{Type: IntType, Int: i}
}

func FromFloat(f float64) *Value {
	return &Value{Type: FloatType, Float: f}
}

func FromString(s string) *Value {
	return &Value{Type: StringType, String: s}
}

// FromSlice returns an Array owning vs. Nil elements become Null.
func FromSlice(vs []*Value) *Value {
	if vs == nil {
		vs = []*Value{}
	}
	for i := range vs {
		if vs[i] == nil {
			vs[i] = Null()
		}
	}
	return &Value{Type: ArrayType, Values: vs}
}

// FromMap returns an Object owning m. Nil members become Null.
func FromMap(m map[string]*Value) *Value {
	if m == nil {
		m = map[string]*Value{}
	}
	for k, v := range m {
		if v == nil {
			m[k] = Null()
		}
	}
	return &Value{Type: ObjectType, Fields: m}
}

// FromRows returns a headless CSV document owning rows.
func FromRows(rows [][]*Value) *Value {
	if rows == nil {
		rows = [][]*Value{}
	}
	return &Value{Type: CSVRowsType, Rows: rows}
}

// FromRecords returns a headed CSV document owning recs.
func FromRecords(recs []map[string]*Value) *Value {
	if recs == nil {
		recs = []map[string]*Value{}
	}
	return &Value{Type: CSVRecordsType, Records: recs}
}

func NewArray() *Value   { return FromSlice(nil) }
func NewObject() *Value  { return FromMap(nil) }
func NewRows() *Value    { return FromRows(nil) }
func NewRecords() *Value { return FromRecords(nil) }

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:   v.Type,
		Bool:   v.Bool,
		Uint:   v.Uint,
		Int:    v.Int,
		Float:  v.Float,
		String: v.String,
	}
	switch v.Type {
	case ArrayType:
		res.Values = cloneSlice(v.Values)
	case ObjectType:
		res.Fields = cloneMap(v.Fields)
	case CSVRowsType:
		res.Rows = make([][]*Value, len(v.Rows))
		for i, row := range v.Rows {
			res.Rows[i] = cloneSlice(row)
		}
	case CSVRecordsType:
		res.Records = make([]map[string]*Value, len(v.Records))
		for i, rec := range v.Records {
			res.Records[i] = cloneMap(rec)
		}
	}
	return res
}

func cloneSlice(vs []*Value) []*Value {
	res := make([]*Value, len(vs))
	for i, x := range vs {
		res[i] = x.Clone()
	}
	return res
}

func cloneMap(m map[string]*Value) map[string]*Value {
	res := make(map[string]*Value, len(m))
	for k, x := range m {
		res[k] = x.Clone()
	}
	return res
}
