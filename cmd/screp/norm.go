package main

import (
	"fmt"

	"github.com/signadot/screp-format/encode"

	"github.com/scott-cotton/cli"
)

func norm(cfg *NormConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Norm.Parse(cc, args)
	if err != nil {
		cfg.Norm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts, err := cfg.Sections.options()
	if err != nil {
		return err
	}
	w := cc.Out
	for i, arg := range inputArgs(args) {
		node, err := normFile(cfg.MainConfig, cc, arg, opts, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if i > 0 {
			if err := writeSep(cfg.MainConfig, w); err != nil {
				return err
			}
		}
		if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
