package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/mawu-format/mawu"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a json patch, and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	target, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := mawu.Patch(target, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return output(cfg.MainConfig, cc.Out, res)
}

// getPatch reads the patch argument as a file unless -s is given.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String && cfg.File {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader
	switch {
	case cfg.String:
		r = strings.NewReader(arg)
	case arg == "-":
		r = cc.In
	default:
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: error opening %s: %w", cli.ErrUsage, arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading patch: %w", err)
	}
	return d, nil
}
