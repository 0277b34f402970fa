package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/screp-format/encode"
	"github.com/signadot/screp-format/ir"
	"github.com/signadot/screp-format/libdiff"
	"github.com/signadot/screp-format/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	opts, err := cfg.Sections.options()
	if err != nil {
		return err
	}
	a, err := normFile(cfg.MainConfig, cc, args[0], opts, cfg.Sections.parseOpts()...)
	if err != nil {
		return err
	}
	b, err := normFile(cfg.MainConfig, cc, args[1], opts, cfg.Sections.parseOpts()...)
	if err != nil {
		return err
	}
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if cfg.Text {
		aText, err := encodeText(a)
		if err != nil {
			return false, err
		}
		bText, err := encodeText(b)
		if err != nil {
			return false, err
		}
		d := libdiff.Text(aText, bText)
		if d == "" {
			return false, nil
		}
		if _, err := io.WriteString(w, d); err != nil {
			return false, err
		}
		return true, nil
	}
	p, err := libdiff.MergePatch(a, b)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}
	patch, err := parse.Parse(p, parse.ParseJSON())
	if err != nil {
		return false, fmt.Errorf("error decoding patch: %w", err)
	}
	if err := encode.Encode(patch, w, cfg.encOpts(w)...); err != nil {
		return false, err
	}
	return true, nil
}

func encodeText(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
