package main

import (
	"context"
	"fmt"
	"io"
	"os"

	screp "github.com/signadot/screp-format"
	"github.com/signadot/screp-format/encode"
	"github.com/signadot/screp-format/format"
	"github.com/signadot/screp-format/transform"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='do output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do output in yaml'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	ctx context.Context
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parser() screp.Parser {
	p := screp.JSONParser{}
	if cfg.InFormat != nil {
		p.Format = *cfg.InFormat
	}
	return p
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.Y {
		return format.YAMLFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.Main == nil {
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// SectionConfig holds the flags selecting the sections of the output.
type SectionConfig struct {
	NoHeader   bool   `cli:"name=noheader desc='replace the header section by null'"`
	NoComputed bool   `cli:"name=nocomputed desc='replace the computed section by null'"`
	MapData    bool   `cli:"name=mapdata desc='include the map data section'"`
	MapTiles   bool   `cli:"name=maptiles desc='include map tiles in map data'"`
	MapResLoc  bool   `cli:"name=mapresloc desc='include mineral fields and geysers in map data'"`
	Cmds       bool   `cli:"name=cmds desc='include the commands section'"`
	All        bool   `cli:"name=all desc='include all sections'"`
	Raw        bool   `cli:"name=raw desc='keep debug and duplicate fields'"`
	Legacy     bool   `cli:"name=legacy desc='produce the legacy shape variant'"`
	Config     string `cli:"name=config desc='yaml or json file with options'"`
}

func (cfg *SectionConfig) options() (screp.Options, error) {
	opts := screp.DefaultOptions()
	if cfg.Config != "" {
		d, err := os.ReadFile(cfg.Config)
		if err != nil {
			return opts, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		opts, err = screp.LoadOptions(d)
		if err != nil {
			return opts, fmt.Errorf("%w: %s: %w", cli.ErrUsage, cfg.Config, err)
		}
	}
	if cfg.All {
		opts = screp.Options{Header: true, Computed: true, MapData: true, MapTiles: true, MapResLoc: true, Cmds: true, RawData: opts.RawData}
	}
	if cfg.NoHeader {
		opts.Header = false
	}
	if cfg.NoComputed {
		opts.Computed = false
	}
	opts.MapData = opts.MapData || cfg.MapData
	opts.MapTiles = opts.MapTiles || cfg.MapTiles
	opts.MapResLoc = opts.MapResLoc || cfg.MapResLoc
	opts.Cmds = opts.Cmds || cfg.Cmds
	opts.RawData = opts.RawData || cfg.Raw
	return opts, nil
}

func (cfg *SectionConfig) parseOpts() []screp.Option {
	if cfg.Legacy {
		return []screp.Option{screp.WithVariant(transform.Legacy)}
	}
	return nil
}

type NormConfig struct {
	*MainConfig
	Sections SectionConfig

	SkipTransform bool `cli:"name=skip-transform desc='do not canonicalize'"`
	SkipFilter    bool `cli:"name=skip-filter desc='do not null out sections'"`
	Roundtrip     bool `cli:"name=roundtrip desc='pass the result through a json encode and parse'"`

	Norm *cli.Command
}

func (cfg *NormConfig) parseOpts() []screp.Option {
	res := cfg.Sections.parseOpts()
	if cfg.SkipTransform {
		res = append(res, screp.SkipTransform())
	}
	if cfg.SkipFilter {
		res = append(res, screp.SkipFilter())
	}
	if cfg.Roundtrip {
		res = append(res, screp.Roundtrip())
	}
	return res
}

type GetConfig struct {
	*MainConfig
	Sections SectionConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Sections SectionConfig

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Sections SectionConfig

	Text bool `cli:"name=text desc='show a line diff of the encoded trees'"`

	Diff *cli.Command
}

type VersionConfig struct {
	*MainConfig

	JSON bool `cli:"name=json desc='show the version object'"`

	Version *cli.Command
}
