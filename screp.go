package screp

import (
	"context"
	"fmt"

	"github.com/signadot/screp-format/debug"
	"github.com/signadot/screp-format/filter"
	"github.com/signadot/screp-format/format"
	"github.com/signadot/screp-format/ir"
	"github.com/signadot/screp-format/parse"
	"github.com/signadot/screp-format/transform"
)

// Parser produces the raw tree of a replay.
type Parser interface {
	Parse(data []byte) (*ir.Node, error)
}

type ParserFunc func(data []byte) (*ir.Node, error)

func (f ParserFunc) Parse(data []byte) (*ir.Node, error) {
	return f(data)
}

// TimeFields lists the raw tree fields holding timestamps.
var TimeFields = []string{"StartTime"}

// JSONParser reads raw trees which were dumped as json or yaml, possibly
// gzip compressed.
type JSONParser struct {
	Format format.Format
}

func (p JSONParser) Parse(data []byte) (*ir.Node, error) {
	return parse.Parse(data, parse.ParseFormat(p.Format), parse.ParseTimeFields(TimeFields...))
}

type config struct {
	skipTransform bool
	skipFilter    bool
	roundtrip     bool
	variant       transform.Variant
}

// Option controls undocumented behavior of ParseBuffer, mostly useful
// for debugging.
type Option func(*config)

func SkipTransform() Option {
	return func(c *config) { c.skipTransform = true }
}
func SkipFilter() Option {
	return func(c *config) { c.skipFilter = true }
}
func Roundtrip() Option {
	return func(c *config) { c.roundtrip = true }
}

// WithVariant selects the canonical shape variant. The legacy variant
// also leaves out the commands section whenever the computed section is
// left out.
func WithVariant(v transform.Variant) Option {
	return func(c *config) { c.variant = v }
}

// ParseBuffer parses data with p and returns its canonical tree, pruned
// according to opts. A parser failure is returned wrapped in ErrParse.
func ParseBuffer(ctx context.Context, p Parser, data []byte, opts Options, cOpts ...Option) (*ir.Node, error) {
	cfg := &config{}
	for _, o := range cOpts {
		o(cfg)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrNoTree)
	}
	if debug.Pipeline() {
		debug.Logf("parse buffer: %d bytes, options %+v\n", len(data), opts)
	}
	canon := transform.Canonicalize(raw, transform.Options{
		RawData:       opts.RawData,
		SkipTransform: cfg.skipTransform,
		Roundtrip:     cfg.roundtrip,
		Variant:       cfg.variant,
	})
	var fOpts []filter.Option
	if cfg.skipFilter {
		fOpts = append(fOpts, filter.SkipFilter())
	}
	if cfg.variant == transform.Legacy {
		fOpts = append(fOpts, filter.ComputedGatesCommands())
	}
	return filter.Sections(canon, opts.Flags(), fOpts...), nil
}
