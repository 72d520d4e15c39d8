package ir

// Truth reports the boolean sense of v. Null, false and empty values are
// false.
func Truth(v *Value) bool {
	if v == nil {
		return false
	}
	switch v.Type {
	case BoolType:
		return v.Bool
	case NullType:
		return false
	default:
		return !v.IsEmpty()
	}
}
