package parse

import (
	"fmt"

	"github.com/signadot/mawu-format/mawu/debug"
	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
)

// DefaultMaxDepth is the JSON nesting cap used when MaxDepth is not given.
const DefaultMaxDepth = 10000

func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	pOpts := &parseOpts{format: format.JSONFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Value
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		res, err = parseJSON(d, pOpts)
	case format.CSVFormat:
		res, err = parseCSV(d, pOpts)
	case format.YAMLFormat:
		res, err = parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: cannot parse format %s", ir.ErrInternal, pOpts.format)
	}
	if debug.Parse() {
		l := debug.Logger()
		if err != nil {
			l.Debug("parse failed", "format", pOpts.format, "bytes", len(d), "err", err)
		} else {
			l.Debug("parsed", "format", pOpts.format, "bytes", len(d), "type", res.Type)
		}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func JSON(d []byte) (*ir.Value, error) {
	return Parse(d, ParseJSON())
}

func CSVHeaded(d []byte) (*ir.Value, error) {
	return Parse(d, ParseCSV(), Headed(true))
}

func CSVHeadless(d []byte) (*ir.Value, error) {
	return Parse(d, ParseCSV(), Headed(false))
}
