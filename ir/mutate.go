package ir

import "fmt"

func typeErr(v *Value, op string, want ...Type) error {
	return fmt.Errorf("%w: %s on %s, want %v", ErrType, op, typeOf(v), want)
}

// Clear empties a container in place. A scalar becomes Null.
func (v *Value) Clear() {
	if v == nil {
		return
	}
	switch v.Type {
	case ArrayType:
		v.Values = []*Value{}
	case ObjectType:
		v.Fields = map[string]*Value{}
	case CSVRowsType:
		v.Rows = [][]*Value{}
	case CSVRecordsType:
		v.Records = []map[string]*Value{}
	default:
		*v = Value{Type: NullType}
	}
}

// Get returns the member of an Object named key, or nil.
func (v *Value) Get(key string) *Value {
	if !v.IsObject() {
		return nil
	}
	return v.Fields[key]
}

func (v *Value) HasKey(key string) bool {
	if !v.IsObject() {
		return false
	}
	_, ok := v.Fields[key]
	return ok
}

// Index returns element i of an Array, or nil when out of range.
func (v *Value) Index(i int) *Value {
	if !v.IsArray() || i < 0 || i >= len(v.Values) {
		return nil
	}
	return v.Values[i]
}

// Set stores x under key in an Object and returns the value it replaced.
func (v *Value) Set(key string, x *Value) (*Value, error) {
	if !v.IsObject() {
		return nil, typeErr(v, "set", ObjectType)
	}
	if x == nil {
		x = Null()
	}
	if v.Fields == nil {
		v.Fields = map[string]*Value{}
	}
	prev := v.Fields[key]
	v.Fields[key] = x
	return prev, nil
}

// Delete removes key from an Object and returns the removed value, or nil
// if it was absent.
func (v *Value) Delete(key string) (*Value, error) {
	if !v.IsObject() {
		return nil, typeErr(v, "delete", ObjectType)
	}
	prev, ok := v.Fields[key]
	if !ok {
		return nil, nil
	}
	delete(v.Fields, key)
	return prev, nil
}

// Insert places x at index i of an Array, shifting later elements right.
// i may equal the length.
func (v *Value) Insert(i int, x *Value) error {
	if !v.IsArray() {
		return typeErr(v, "insert", ArrayType)
	}
	if i < 0 || i > len(v.Values) {
		return fmt.Errorf("%w: insert at %d (len %d)", ErrIndex, i, len(v.Values))
	}
	if x == nil {
		x = Null()
	}
	v.Values = append(v.Values, nil)
	copy(v.Values[i+1:], v.Values[i:])
	v.Values[i] = x
	return nil
}

// RemoveAt removes and returns element i of an Array.
func (v *Value) RemoveAt(i int) (*Value, error) {
	if !v.IsArray() {
		return nil, typeErr(v, "remove", ArrayType)
	}
	if i < 0 || i >= len(v.Values) {
		return nil, fmt.Errorf("%w: remove at %d (len %d)", ErrIndex, i, len(v.Values))
	}
	res := v.Values[i]
	v.Values = append(v.Values[:i], v.Values[i+1:]...)
	return res, nil
}

// Push appends x. On an Array x becomes the last element. On CSV rows x
// must be an Array whose elements become the last row; on CSV records x
// must be an Object whose members become the last record.
func (v *Value) Push(x *Value) error {
	if x == nil {
		x = Null()
	}
	switch {
	case v.IsArray():
		v.Values = append(v.Values, x)
	case v.IsRows():
		if !x.IsArray() {
			return typeErr(x, "push row", ArrayType)
		}
		v.Rows = append(v.Rows, x.Values)
	case v.IsRecords():
		if !x.IsObject() {
			return typeErr(x, "push record", ObjectType)
		}
		v.Records = append(v.Records, x.Fields)
	default:
		return typeErr(v, "push", ArrayType, CSVRowsType, CSVRecordsType)
	}
	return nil
}

// Pop removes and returns the last element, row or record. Rows come back
// as Arrays and records as Objects. It returns nil when v is empty.
func (v *Value) Pop() (*Value, error) {
	switch {
	case v.IsArray():
		n := len(v.Values)
		if n == 0 {
			return nil, nil
		}
		res := v.Values[n-1]
		v.Values = v.Values[:n-1]
		return res, nil
	case v.IsRows():
		n := len(v.Rows)
		if n == 0 {
			return nil, nil
		}
		res := FromSlice(v.Rows[n-1])
		v.Rows = v.Rows[:n-1]
		return res, nil
	case v.IsRecords():
		n := len(v.Records)
		if n == 0 {
			return nil, nil
		}
		res := FromMap(v.Records[n-1])
		v.Records = v.Records[:n-1]
		return res, nil
	}
	return nil, typeErr(v, "pop", ArrayType, CSVRowsType, CSVRecordsType)
}

// Contains reports whether an Array has an element equal to x.
func (v *Value) Contains(x *Value) bool {
	if !v.IsArray() {
		return false
	}
	for _, e := range v.Values {
		if Equal(e, x) {
			return true
		}
	}
	return false
}
