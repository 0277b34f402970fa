package main

import (
	"fmt"

	"github.com/signadot/screp-format/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	opts, err := cfg.Sections.options()
	if err != nil {
		return err
	}
	w := cc.Out
	for i, arg := range inputArgs(args[1:]) {
		node, err := normFile(cfg.MainConfig, cc, arg, opts, cfg.Sections.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := node.GetPath(path)
		if err != nil {
			return fmt.Errorf("error executing get on %s with %s: %w", arg, path, err)
		}
		if res == nil {
			continue
		}
		if i > 0 {
			if err := writeSep(cfg.MainConfig, w); err != nil {
				return err
			}
		}
		if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
