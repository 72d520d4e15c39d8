package mawu

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/mawu-format/mawu/ir"
)

// Filter keeps the elements of v for which the boolean expression src
// holds. v must be an Array, CsvRows or CsvRecords, and the result has the
// same variant.
//
// Records expose their columns as variables along with record and index.
// Rows expose row and index. Array elements expose it and index.
func Filter(v *ir.Value, src string) (*ir.Value, error) {
	prog, err := expr.Compile(src, expr.Env(map[string]any{}), expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrFilter, src, err)
	}
	keep := func(env map[string]any) (bool, error) {
		out, err := expr.Run(prog, env)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrFilter, err)
		}
		b, _ := out.(bool)
		return b, nil
	}
	if v == nil {
		return nil, fmt.Errorf("%w: cannot filter null", ir.ErrType)
	}
	switch v.Type {
	case ir.ArrayType:
		res := ir.NewArray()
		for i, x := range v.Values {
			ok, err := keep(map[string]any{"it": ir.ToAny(x), "index": i})
			if err != nil {
				return nil, err
			}
			if ok {
				res.Values = append(res.Values, x.Clone())
			}
		}
		return res, nil
	case ir.CSVRowsType:
		res := ir.NewRows()
		for i, row := range v.Rows {
			arr := &ir.Value{Type: ir.ArrayType, Values: row}
			ok, err := keep(map[string]any{"row": ir.ToAny(arr), "index": i})
			if err != nil {
				return nil, err
			}
			if ok {
				res.Rows = append(res.Rows, arr.Clone().Values)
			}
		}
		return res, nil
	case ir.CSVRecordsType:
		res := ir.NewRecords()
		for i, rec := range v.Records {
			obj := &ir.Value{Type: ir.ObjectType, Fields: rec}
			env := ir.ToAny(obj).(map[string]any)
			env["record"] = ir.ToAny(obj)
			env["index"] = i
			ok, err := keep(env)
			if err != nil {
				return nil, err
			}
			if ok {
				res.Records = append(res.Records, obj.Clone().Fields)
			}
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: cannot filter %s", ir.ErrType, v.Type)
}
