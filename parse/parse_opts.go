package parse

import (
	"github.com/signadot/mawu-format/mawu/format"
)

type parseOpts struct {
	format   format.Format
	headed   bool
	maxDepth int
}

type ParseOption func(*parseOpts)

func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseCSV() ParseOption {
	return ParseFormat(format.CSVFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}

// Headed selects headed CSV, where the first record names the columns.
func Headed(v bool) ParseOption {
	return func(o *parseOpts) { o.headed = v }
}

// MaxDepth caps JSON container nesting. A value of zero or less removes
// the cap.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
