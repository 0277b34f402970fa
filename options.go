package screp

import (
	"fmt"

	"github.com/signadot/screp-format/filter"

	"github.com/goccy/go-yaml"
)

// Options select what ParseBuffer includes in its result.
type Options struct {
	Header    bool `json:"header" yaml:"header"`
	Computed  bool `json:"computed" yaml:"computed"`
	MapData   bool `json:"mapData" yaml:"mapData"`
	MapTiles  bool `json:"mapTiles" yaml:"mapTiles"`
	MapResLoc bool `json:"mapResLoc" yaml:"mapResLoc"`
	Cmds      bool `json:"cmds" yaml:"cmds"`

	// RawData keeps debug and duplicate fields in the output. It is not
	// part of the documented options.
	RawData bool `json:"rawData,omitempty" yaml:"rawData,omitempty"`
}

// DefaultOptions returns the options used when the caller specifies
// none: header and computed sections only.
func DefaultOptions() Options {
	return Options{
		Header:   true,
		Computed: true,
	}
}

// Flags returns the section selection of o.
func (o Options) Flags() filter.Flags {
	return filter.Flags{
		Header:    o.Header,
		Computed:  o.Computed,
		MapData:   o.MapData,
		MapTiles:  o.MapTiles,
		MapResLoc: o.MapResLoc,
		Cmds:      o.Cmds,
	}
}

// ResolveOptions overlays the recognised boolean keys of user on the
// defaults. Unknown keys and values which are not booleans are ignored.
// The undocumented raw data switch, spelled "rawData" or "_rawData", is
// only honoured if includeUndocumented is set.
func ResolveOptions(user map[string]any, includeUndocumented bool) Options {
	res := DefaultOptions()
	fields := map[string]*bool{
		"header":    &res.Header,
		"computed":  &res.Computed,
		"mapData":   &res.MapData,
		"mapTiles":  &res.MapTiles,
		"mapResLoc": &res.MapResLoc,
		"cmds":      &res.Cmds,
	}
	if includeUndocumented {
		fields["rawData"] = &res.RawData
		fields["_rawData"] = &res.RawData
	}
	for k, v := range user {
		dst, ok := fields[k]
		if !ok {
			continue
		}
		b, ok := v.(bool)
		if !ok {
			continue
		}
		*dst = b
	}
	return res
}

// LoadOptions reads options from a yaml or json document. Keys follow
// ResolveOptions, including the undocumented raw data switch.
func LoadOptions(d []byte) (Options, error) {
	m := map[string]any{}
	if err := yaml.Unmarshal(d, &m); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrOptions, err)
	}
	return ResolveOptions(m, true), nil
}
