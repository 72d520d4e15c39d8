package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
)

func encodeYAML(v *ir.Value, w io.Writer, es *EncState) error {
	var opts []yaml.EncodeOption
	if es.indent != 0 {
		opts = append(opts, yaml.Indent(es.indent))
	}
	d, err := yaml.MarshalWithOptions(ir.ToAny(v), opts...)
	if err != nil {
		t := ir.NullType
		if v != nil {
			t = v.Type
		}
		return &WriteErr{Format: format.YAMLFormat, Err: ir.ErrWrite, Got: t, Detail: err.Error()}
	}
	return writeString(w, string(d))
}
