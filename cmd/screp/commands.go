package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func MainCommand(ctx context.Context) *cli.Command {
	cfg := &MainConfig{ctx: ctx}
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
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "screp").
		WithSynopsis("screp [opts] command [opts]").
		WithDescription("screp normalizes replay trees dumped by the screp parser.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return screpMain(cfg, cc, args)
		}).
		WithSubs(
			NormCommand(cfg),
			GetCommand(cfg),
			QueryCommand(cfg),
			DiffCommand(cfg),
			VersionCommand(cfg))
}

// sectionOpts returns the section selection options bound to cfg.
func sectionOpts(cfg *SectionConfig) []*cli.Opt {
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return opts
}

func NormCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NormConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, sectionOpts(&cfg.Sections)...)
	return cli.NewCommandAt(&cfg.Norm, "norm").
		WithAliases("n", "no").
		WithSynopsis("norm [opts] [files]").
		WithDescription(normDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return norm(cfg, cc, args)
		})
}

const normDescription = `norm reads raw replay trees and writes their canonical form.

Inputs are json or yaml documents, optionally gzip compressed, as dumped by
the screp parser. With no files, norm reads standard input.

By default the header and computed sections are kept and the commands and
map data sections are replaced by null. Sections are selected with the
flags below or with a -config file such as

  header: true
  computed: false
  mapData: true
  mapTiles: false
  mapResLoc: true
  cmds: false

Flags take precedence over the config file.`

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts := sectionOpts(&cfg.Sections)
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get [opts] <objectpath> [files]").
		WithDescription("get elements of normalized replay trees, such as $.Header.Players[0].Name").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts := sectionOpts(&cfg.Sections)
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query [opts] <expr> [files]").
		WithDescription(queryDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return queryCmd(cfg, cc, args)
		})
}

const queryDescription = `query evaluates an expr expression on normalized replay trees.

The sections Header, Commands, MapData and Computed are variables, and
getpath(path) and listpath(path) select values by object path:

  screp query 'map(Header.Players, .Name)' game.json
  screp query -mapdata 'len(listpath("$.MapData.StartLocations[*]"))' game.json`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, sectionOpts(&cfg.Sections)...)
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] a b").
		WithDescription("diff normalized replay trees as a json merge patch or as text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VersionConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Version, "version").
		WithAliases("v").
		WithSynopsis("version [-json]").
		WithDescription("show version information").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return version(cfg, cc, args)
		})
}
