package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, csv/c, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, csv/c, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "mawu").
		WithSynopsis("mawu [opts] command [opts]").
		WithDescription("mawu reads, converts and edits json and csv documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mawuMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			FilterCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents, converting between formats with -O").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a path such as $.a[0] from files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list <path> [files]").
		WithDescription("list every value matching a path such as $..a or $.b[*]").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-U n] a b").
		WithDescription("diff two documents line by line, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-s|-f] <json-patch> file").
		WithDescription("apply an RFC 6902 json patch to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter <expr> [files]").
		WithDescription(filterDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

const filterDescription = `filter keeps the elements of an array, the rows of a headless csv or the
records of a headed csv for which a boolean expression holds.

Records expose each column by name, plus 'record' and 'index':

  mawu -H filter 'age >= 18' people.csv

Rows expose 'row' and 'index', array elements 'it' and 'index'.`
