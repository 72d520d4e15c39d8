package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/mawu-format/mawu/debug"
	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
)

type EncState struct {
	depth, indent int
	format        format.Format
	headed        *bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := &bytes.Buffer{}
	var err error
	switch es.format {
	case format.JSONFormat:
		err = encodeJSON(v, buf, es)
	case format.CSVFormat:
		err = encodeCSV(v, buf, es)
	case format.YAMLFormat:
		err = encodeYAML(v, buf, es)
	default:
		err = fmt.Errorf("%w: cannot encode format %s", ir.ErrInternal, es.format)
	}
	if debug.Encode() {
		l := debug.Logger()
		if err != nil {
			l.Debug("encode failed", "format", es.format, "err", err)
		} else {
			l.Debug("encoded", "format", es.format, "bytes", buf.Len())
		}
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// JSON returns v as JSON text with the given indent.
func JSON(v *ir.Value, indent int) (string, error) {
	return encodeString(v, EncodeFormat(format.JSONFormat), Indent(indent))
}

// CSVHeaded returns a CsvRecords value as CSV with a header line.
func CSVHeaded(v *ir.Value) (string, error) {
	return encodeString(v, EncodeFormat(format.CSVFormat), Headed(true))
}

// CSVHeadless returns a CsvRows value as CSV.
func CSVHeadless(v *ir.Value) (string, error) {
	return encodeString(v, EncodeFormat(format.CSVFormat), Headed(false))
}

func encodeString(v *ir.Value, opts ...EncodeOption) (string, error) {
	buf := &strings.Builder{}
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func applyValueColor(es *EncState, t ir.Type, v string) string {
	return applyColor(es, t, ValueColor, v)
}
