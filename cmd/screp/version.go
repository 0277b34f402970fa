package main

import (
	"fmt"
	"io"

	screp "github.com/signadot/screp-format"
	"github.com/signadot/screp-format/encode"

	"github.com/scott-cotton/cli"
)

func version(cfg *VersionConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Version.Parse(cc, args)
	if err != nil {
		cfg.Version.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: version takes no arguments, got %v", cli.ErrUsage, args)
	}
	entries := screp.BuildInfo().Version()
	w := cc.Out
	if cfg.JSON {
		return encode.Encode(screp.VersionObject(entries).ToIR(), w, cfg.encOpts(w)...)
	}
	_, err = io.WriteString(w, screp.VersionString(entries)+"\n")
	return err
}
