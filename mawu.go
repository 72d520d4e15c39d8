package mawu

import (
	"bytes"
	"os"
	"unicode/utf8"

	"github.com/signadot/mawu-format/mawu/debug"
	"github.com/signadot/mawu-format/mawu/encode"
	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/parse"
)

func ReadJSON(path string) (*ir.Value, error) {
	return read(path, parse.ParseJSON())
}

func ReadCSVHeaded(path string) (*ir.Value, error) {
	return read(path, parse.ParseCSV(), parse.Headed(true))
}

func ReadCSVHeadless(path string) (*ir.Value, error) {
	return read(path, parse.ParseCSV(), parse.Headed(false))
}

// Load reads path in the format named by its suffix, falling back to JSON.
// Options given after the suffix choice override it.
func Load(path string, opts ...parse.ParseOption) (*ir.Value, error) {
	f, ok := format.FromPath(path)
	if !ok {
		f = format.JSONFormat
	}
	return read(path, append([]parse.ParseOption{parse.ParseFormat(f)}, opts...)...)
}

func read(path string, opts ...parse.ParseOption) (*ir.Value, error) {
	d, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

func readFile(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOErr{Op: "read", Path: path, Err: err}
	}
	if !utf8.Valid(d) {
		return nil, &IOErr{Op: "read", Path: path, Err: ErrNotUTF8}
	}
	if debug.IO() {
		debug.Logger().Debug("read", "path", path, "bytes", len(d))
	}
	return d, nil
}

// Write writes v compactly. CsvRecords become headed CSV, CsvRows headless
// CSV and every other value JSON.
func Write(path string, v *ir.Value) error {
	return WritePretty(path, v, 0)
}

// WritePretty is Write with an indent width for JSON output.
func WritePretty(path string, v *ir.Value, spaces int) error {
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, EncodeOpts(v, spaces)...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &IOErr{Op: "write", Path: path, Err: err}
	}
	if debug.IO() {
		debug.Logger().Debug("wrote", "path", path, "bytes", buf.Len())
	}
	return nil
}

// EncodeOpts returns the encode options matching v's variant.
func EncodeOpts(v *ir.Value, spaces int) []encode.EncodeOption {
	if v != nil {
		switch v.Type {
		case ir.CSVRecordsType:
			return []encode.EncodeOption{encode.EncodeFormat(format.CSVFormat), encode.Headed(true)}
		case ir.CSVRowsType:
			return []encode.EncodeOption{encode.EncodeFormat(format.CSVFormat), encode.Headed(false)}
		}
	}
	return []encode.EncodeOption{encode.EncodeFormat(format.JSONFormat), encode.Indent(spaces)}
}
