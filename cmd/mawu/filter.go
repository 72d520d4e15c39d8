package main

import (
	"fmt"

	"github.com/signadot/mawu-format/mawu"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression", cli.ErrUsage)
	}
	src, files := args[0], args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		v, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := mawu.Filter(v, src)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", file, err)
		}
		if err := output(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
