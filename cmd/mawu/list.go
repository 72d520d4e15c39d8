package main

import (
	"fmt"

	"github.com/signadot/mawu-format/mawu/ir"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := queryPath("list", args)
	if err != nil {
		return err
	}
	for _, arg := range args {
		if err := queryArg(cfg.MainConfig, cc, arg, path, true); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

// queryPath splits the path argument off args, reading stdin when no
// files follow it.
func queryPath(cmd string, args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s requires one argument, a path", cli.ErrUsage, cmd)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return "", nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	return path, args, nil
}

func queryArg(cfg *MainConfig, cc *cli.Context, arg, query string, list bool) error {
	target, err := getObjFile(cfg, cc, arg)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if list {
		res, err := target.ListPath(nil, query)
		if err != nil {
			return fmt.Errorf("error executing list on %s: %w", arg, err)
		}
		return output(cfg, cc.Out, ir.FromSlice(res))
	}
	res, err := target.GetPath(query)
	if err != nil {
		return fmt.Errorf("error executing get on %s: %w", arg, err)
	}
	if res == nil {
		// nothing there, nothing to say
		return nil
	}
	return output(cfg, cc.Out, res)
}
