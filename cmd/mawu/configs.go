package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/mawu-format/mawu"
	"github.com/signadot/mawu-format/mawu/encode"
	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
	"github.com/signadot/mawu-format/mawu/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='indent json output by this many spaces'"`
	Headed bool `cli:"name=headed aliases=H desc='csv has a header line'"`
	Depth  int  `cli:"name=depth desc='maximum json nesting depth, 0 for the default'"`
	V      bool `cli:"name=v desc='log parsing, encoding and file i/o to stderr'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	C bool `cli:"name=c aliases=csv desc='do i/o in csv'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.C:
		return format.CSVFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.JSONFormat, false
}

// parseOpts picks the input format from -I, then the format flags, then
// the suffix of path.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	fmat, ok := cfg.flagFormat()
	if !ok {
		if f, ok := format.FromPath(path); ok {
			fmat = f
		}
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	res := []parse.ParseOption{
		parse.ParseFormat(fmat),
		parse.Headed(cfg.Headed),
	}
	if cfg.Depth != 0 {
		res = append(res, parse.MaxDepth(cfg.Depth))
	}
	return res
}

// encOpts encodes CSV variants as CSV unless an output format was asked
// for.
func (cfg *MainConfig) encOpts(w io.Writer, v *ir.Value) []encode.EncodeOption {
	var res []encode.EncodeOption
	fmat, ok := cfg.flagFormat()
	if cfg.OutFormat != nil {
		fmat, ok = *cfg.OutFormat, true
	}
	if ok {
		res = []encode.EncodeOption{encode.EncodeFormat(fmat), encode.Indent(cfg.Indent)}
		if fmat == format.CSVFormat {
			res = append(res, encode.Headed(v.IsRecords()))
		}
	} else {
		res = mawu.EncodeOpts(v, cfg.Indent)
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Context int  `cli:"name=U desc='lines of context around changes, -1 for all'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}
