package mawu

import (
	"github.com/signadot/mawu-format/mawu/encode"
	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/libdiff"
)

// Diff renders a and b as text, JSON with two space indents or CSV for the
// CSV variants, and diffs the texts line by line.
func Diff(a, b *ir.Value) ([]libdiff.Line, error) {
	ta, err := diffText(a)
	if err != nil {
		return nil, err
	}
	tb, err := diffText(b)
	if err != nil {
		return nil, err
	}
	return libdiff.Lines(ta, tb), nil
}

func diffText(v *ir.Value) (string, error) {
	switch {
	case v.IsRows():
		return encode.CSVHeadless(v)
	case v.IsRecords():
		return encode.CSVHeaded(v)
	}
	t, err := encode.JSON(v, 2)
	if err != nil {
		return "", err
	}
	return t + "\n", nil
}
