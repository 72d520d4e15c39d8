package encode

import (
	"io"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/token"
)

func encodeJSON(v *ir.Value, w io.Writer, es *EncState) error {
	if v == nil {
		v = ir.Null()
	}
	switch v.Type {
	case ir.ObjectType:
		return encodeObject(v, w, es)
	case ir.ArrayType:
		return encodeArray(v, w, es)
	case ir.CSVRowsType, ir.CSVRecordsType:
		return &WriteErr{
			Format: format.JSONFormat,
			Err:    ErrNotJSONType,
			Got:    v.Type,
			Want:   []ir.Type{ir.ArrayType, ir.ObjectType},
		}
	}
	s, err := jsonScalar(v, format.JSONFormat)
	if err != nil {
		return err
	}
	return writeString(w, applyValueColor(es, v.Type, s))
}

// jsonScalar renders a leaf in JSON syntax. CSV array cells share it.
func jsonScalar(v *ir.Value, f format.Format) (string, error) {
	if v == nil {
		return "null", nil
	}
	switch v.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(v.Bool), nil
	case ir.UintType:
		return strconv.FormatUint(v.Uint, 10), nil
	case ir.IntType:
		return strconv.FormatInt(v.Int, 10), nil
	case ir.FloatType:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return "", &WriteErr{Format: f, Err: ErrNonFinite, Got: v.Type, Detail: ir.FormatFloat(v.Float)}
		}
		return ir.FormatFloat(v.Float), nil
	case ir.StringType:
		return token.Quote(v.String), nil
	}
	return "", &WriteErr{Format: f, Err: ErrUnallowedType, Got: v.Type}
}

func encodeObject(v *ir.Value, w io.Writer, es *EncState) error {
	n := len(v.Fields)
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	sep := ":"
	if es.indent != 0 {
		sep = ": "
	}
	for i, k := range slices.Sorted(maps.Keys(v.Fields)) {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		field := applyColor(es, ir.ObjectType, FieldColor, token.Quote(k))
		if err := writeString(w, field+applyColor(es, ir.ObjectType, SepColor, sep)); err != nil {
			return err
		}
		if err := encodeJSON(v.Fields[k], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if n != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func encodeArray(v *ir.Value, w io.Writer, es *EncState) error {
	n := len(v.Values)
	if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, x := range v.Values {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(x, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if n != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}
