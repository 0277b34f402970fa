package main

import (
	"fmt"

	"github.com/signadot/screp-format/encode"
	"github.com/signadot/screp-format/query"

	"github.com/scott-cotton/cli"
)

func queryCmd(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	expression := args[0]
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
		res, err := query.Eval(node, expression)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
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
