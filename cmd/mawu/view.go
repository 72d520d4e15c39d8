package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		v, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := output(cfg.MainConfig, cc.Out, v); err != nil {
			return err
		}
	}
	return nil
}
