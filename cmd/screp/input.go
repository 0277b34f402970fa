package main

import (
	"fmt"
	"io"
	"os"

	screp "github.com/signadot/screp-format"
	"github.com/signadot/screp-format/ir"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// normFile reads the raw tree at path ("-" for standard input) and
// returns its normalized form.
func normFile(cfg *MainConfig, cc *cli.Context, path string, opts screp.Options, sOpts ...screp.Option) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	node, err := screp.ParseBuffer(cfg.ctx, cfg.parser(), d, opts, sOpts...)
	if err != nil {
		return nil, fmt.Errorf("error normalizing %s: %w", path, err)
	}
	return node, nil
}

func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(cfg *MainConfig, w io.Writer) error {
	if !cfg.outFormat().IsJSON() {
		_, err := w.Write([]byte("---\n"))
		return err
	}
	return nil
}
