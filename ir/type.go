package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	UintType
	IntType
	FloatType
	StringType
	ArrayType
	ObjectType
	CSVRowsType
	CSVRecordsType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:       "Null",
		BoolType:       "Bool",
		UintType:       "Uint",
		IntType:        "Int",
		FloatType:      "Float",
		StringType:     "String",
		ArrayType:      "Array",
		ObjectType:     "Object",
		CSVRowsType:    "CSVRows",
		CSVRecordsType: "CSVRecords",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":       NullType,
		"Bool":       BoolType,
		"Uint":       UintType,
		"Int":        IntType,
		"Float":      FloatType,
		"String":     StringType,
		"Array":      ArrayType,
		"Object":     ObjectType,
		"CSVRows":    CSVRowsType,
		"CSVRecords": CSVRecordsType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		UintType,
		IntType,
		FloatType,
		StringType,
		ArrayType,
		ObjectType,
		CSVRowsType,
		CSVRecordsType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType, CSVRowsType, CSVRecordsType:
		return false
	default:
		return true
	}
}

func (t Type) IsNumber() bool {
	switch t {
	case UintType, IntType, FloatType:
		return true
	default:
		return false
	}
}

// IsJSON reports whether values of type t can be written as JSON.
func (t Type) IsJSON() bool {
	switch t {
	case CSVRowsType, CSVRecordsType:
		return false
	default:
		return true
	}
}
