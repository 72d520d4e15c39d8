package encode

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/token"
)

func encodeCSV(v *ir.Value, w io.Writer, es *EncState) error {
	if v == nil {
		v = ir.Null()
	}
	headed := v.Type == ir.CSVRecordsType
	if es.headed != nil {
		headed = *es.headed
	}
	if headed {
		return encodeRecords(v, w, es)
	}
	return encodeRows(v, w, es)
}

func encodeRows(v *ir.Value, w io.Writer, es *EncState) error {
	if v.Type != ir.CSVRowsType {
		return &WriteErr{Format: format.CSVFormat, Err: ErrUnallowedType, Got: v.Type, Want: []ir.Type{ir.CSVRowsType}}
	}
	for _, row := range v.Rows {
		if err := writeCSVRow(w, es, row); err != nil {
			return err
		}
	}
	return nil
}

// encodeRecords writes the sorted keys of the first record as the header.
// Later records may omit header keys but may not add any.
func encodeRecords(v *ir.Value, w io.Writer, es *EncState) error {
	if v.Type != ir.CSVRecordsType {
		return &WriteErr{Format: format.CSVFormat, Err: ErrUnallowedType, Got: v.Type, Want: []ir.Type{ir.CSVRecordsType}}
	}
	if len(v.Records) == 0 {
		return nil
	}
	header := slices.Sorted(maps.Keys(v.Records[0]))
	cells := make([]string, len(header))
	for i, k := range header {
		cells[i] = applyColor(es, ir.CSVRecordsType, FieldColor, token.QuoteCSV(k))
	}
	if err := writeCSVLine(w, es, cells); err != nil {
		return err
	}
	for _, rec := range v.Records {
		for k := range rec {
			if _, ok := slices.BinarySearch(header, k); !ok {
				return &WriteErr{Format: format.CSVFormat, Err: ErrUnknownColumn, Got: ir.CSVRecordsType, Detail: k}
			}
		}
		row := make([]*ir.Value, len(header))
		for i, k := range header {
			row[i] = rec[k]
		}
		if err := writeCSVRow(w, es, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVRow(w io.Writer, es *EncState, row []*ir.Value) error {
	cells := make([]string, len(row))
	for i, x := range row {
		s, err := csvCell(x)
		if err != nil {
			return err
		}
		t := ir.NullType
		if x != nil {
			t = x.Type
		}
		cells[i] = applyValueColor(es, t, s)
	}
	return writeCSVLine(w, es, cells)
}

func writeCSVLine(w io.Writer, es *EncState, cells []string) error {
	sep := applyColor(es, ir.CSVRowsType, SepColor, ",")
	return writeString(w, strings.Join(cells, sep)+"\n")
}

// csvCell renders one cell. Text is always quoted and Null is empty. An
// array of scalars becomes its bracketed JSON form inside one quoted cell.
func csvCell(x *ir.Value) (string, error) {
	if x == nil {
		return "", nil
	}
	switch x.Type {
	case ir.NullType:
		return "", nil
	case ir.StringType:
		return token.QuoteCSV(x.String), nil
	case ir.ArrayType:
		parts := make([]string, len(x.Values))
		for i, e := range x.Values {
			if e != nil && !e.Type.IsLeaf() {
				return "", &WriteErr{
					Format: format.CSVFormat,
					Err:    ErrUnallowedType,
					Got:    e.Type,
					Detail: "arrays in cells may only hold scalars",
				}
			}
			s, err := jsonScalar(e, format.CSVFormat)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return token.QuoteCSV("[" + strings.Join(parts, ",") + "]"), nil
	case ir.ObjectType, ir.CSVRowsType, ir.CSVRecordsType:
		return "", &WriteErr{
			Format: format.CSVFormat,
			Err:    ErrUnallowedType,
			Got:    x.Type,
			Want:   []ir.Type{ir.StringType, ir.ArrayType},
		}
	}
	return jsonScalar(x, format.CSVFormat)
}
