package main

import (
	"fmt"

	"github.com/signadot/mawu-format/mawu"
	"github.com/signadot/mawu-format/mawu/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	lines, err := mawu.Diff(a, b)
	if err != nil {
		return err
	}
	if !libdiff.Changed(lines) {
		return nil
	}
	if cfg.Reverse {
		lines = libdiff.Reverse(lines)
	}
	err = libdiff.Format(cc.Out, lines,
		libdiff.Colorize(cfg.useColor(cc.Out)),
		libdiff.Context(cfg.Context))
	if err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
