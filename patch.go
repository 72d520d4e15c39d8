package mawu

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/mawu-format/mawu/encode"
	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/parse"
)

// Patch applies the RFC 6902 patch document to doc and returns the result.
// CSV values are patched in their JSON shape, an array of rows or of
// records, and must keep that shape.
func Patch(doc *ir.Value, patch []byte) (*ir.Value, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding patch: %w", ErrPatch, err)
	}
	s, err := encode.JSON(jsonShape(doc), 0)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.JSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: reading patched document: %w", ErrPatch, err)
	}
	if doc == nil {
		return res, nil
	}
	switch doc.Type {
	case ir.CSVRowsType:
		return toRows(res)
	case ir.CSVRecordsType:
		return toRecords(res)
	}
	return res, nil
}

// jsonShape returns v with CSV variants recast as arrays. Containers share
// storage with v.
func jsonShape(v *ir.Value) *ir.Value {
	if v == nil {
		return ir.Null()
	}
	switch v.Type {
	case ir.CSVRowsType:
		vs := make([]*ir.Value, len(v.Rows))
		for i, row := range v.Rows {
			vs[i] = &ir.Value{Type: ir.ArrayType, Values: row}
		}
		return ir.FromSlice(vs)
	case ir.CSVRecordsType:
		vs := make([]*ir.Value, len(v.Records))
		for i, rec := range v.Records {
			vs[i] = &ir.Value{Type: ir.ObjectType, Fields: rec}
		}
		return ir.FromSlice(vs)
	}
	return v
}

func toRows(v *ir.Value) (*ir.Value, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: patched rows became %s", ErrPatch, v.Type)
	}
	res := ir.NewRows()
	for i, x := range v.Values {
		if !x.IsArray() {
			return nil, fmt.Errorf("%w: patched row %d became %s", ErrPatch, i, x.Type)
		}
		res.Rows = append(res.Rows, x.Values)
	}
	return res, nil
}

func toRecords(v *ir.Value) (*ir.Value, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: patched records became %s", ErrPatch, v.Type)
	}
	res := ir.NewRecords()
	for i, x := range v.Values {
		if !x.IsObject() {
			return nil, fmt.Errorf("%w: patched record %d became %s", ErrPatch, i, x.Type)
		}
		res.Records = append(res.Records, x.Fields)
	}
	return res, nil
}
