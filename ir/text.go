package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/mawu-format/mawu/token"
)

// FormatFloat formats a finite f with the fewest digits that parse back to
// f. The mantissa always carries a fraction so the text never reads as an
// integer. Magnitudes below 1e-6 or from 1e21 up use exponent form.
func FormatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		if !strings.ContainsRune(mant, '.') {
			mant += ".0"
		}
		return mant + "e" + exp
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// ToText renders v as text. Scalars use their literal spelling, Null is
// empty and Text is returned as is. Containers are rendered as compact JSON
// with sorted keys; CSV rows render as nested arrays and CSV records as an
// array of objects.
func (v *Value) ToText() string {
	if v == nil {
		return ""
	}
	switch v.Type {
	case NullType:
		return ""
	case StringType:
		return v.String
	case BoolType, UintType, IntType, FloatType:
		return scalarText(v)
	}
	b := &strings.Builder{}
	writeCompact(b, v)
	return b.String()
}

func scalarText(v *Value) string {
	switch v.Type {
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case UintType:
		return strconv.FormatUint(v.Uint, 10)
	case IntType:
		return strconv.FormatInt(v.Int, 10)
	case FloatType:
		return FormatFloat(v.Float)
	case StringType:
		return token.Quote(v.String)
	default:
		return "null"
	}
}

func writeCompact(b *strings.Builder, v *Value) {
	if v == nil {
		b.WriteString("null")
		return
	}
	switch v.Type {
	case ArrayType:
		writeCompactSlice(b, v.Values)
	case ObjectType:
		writeCompactMap(b, v.Fields)
	case CSVRowsType:
		b.WriteByte('[')
		for i, row := range v.Rows {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCompactSlice(b, row)
		}
		b.WriteByte(']')
	case CSVRecordsType:
		b.WriteByte('[')
		for i, rec := range v.Records {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCompactMap(b, rec)
		}
		b.WriteByte(']')
	default:
		b.WriteString(scalarText(v))
	}
}

func writeCompactSlice(b *strings.Builder, vs []*Value) {
	b.WriteByte('[')
	for i, x := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		writeCompact(b, x)
	}
	b.WriteByte(']')
}

func writeCompactMap(b *strings.Builder, m map[string]*Value) {
	b.WriteByte('{')
	for i, k := range slices.Sorted(maps.Keys(m)) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(token.Quote(k))
		b.WriteByte(':')
		writeCompact(b, m[k])
	}
	b.WriteByte('}')
}
