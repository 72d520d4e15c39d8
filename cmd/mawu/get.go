package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := queryPath("get", args)
	if err != nil {
		return err
	}
	for _, arg := range args {
		if err := queryArg(cfg.MainConfig, cc, arg, path, false); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}
