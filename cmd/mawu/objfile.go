package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/mawu-format/mawu/encode"
	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Value, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, cfg.parseOpts(path)...)
}

// output encodes v to w, ending json output with a newline.
func output(cfg *MainConfig, w io.Writer, v *ir.Value) error {
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, cfg.encOpts(w, v)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if n := buf.Len(); n != 0 && buf.Bytes()[n-1] != '\n' {
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}
