package filter

import (
	"fmt"

	"github.com/signadot/screp-format/debug"
	"github.com/signadot/screp-format/ir"
)

// Flags select the sections kept in the output. A section left out is
// replaced by null.
type Flags struct {
	Header    bool
	Computed  bool
	MapData   bool
	MapTiles  bool
	MapResLoc bool
	Cmds      bool
}

// All returns flags including every section.
func All() Flags {
	return Flags{Header: true, Computed: true, MapData: true, MapTiles: true, MapResLoc: true, Cmds: true}
}

type filterOpts struct {
	skip                  bool
	computedGatesCommands bool
}

type Option func(*filterOpts)

// SkipFilter makes Sections return its input as is.
func SkipFilter() Option {
	return func(o *filterOpts) { o.skip = true }
}

// ComputedGatesCommands makes leaving out the computed section also leave
// out the commands section, as the legacy wrapper does.
func ComputedGatesCommands() Option {
	return func(o *filterOpts) { o.computedGatesCommands = true }
}

const (
	headerKey   = "Header"
	computedKey = "Computed"
	mapDataKey  = "MapData"
	commandsKey = "Commands"

	tilesKey         = "Tiles"
	mineralFieldsKey = "MineralFields"
	geysersKey       = "Geysers"
)

// Sections returns a copy of the canonical tree with the sections not
// selected by f set to null. Map tiles and resource locations are only
// considered when the map data section is kept.
func Sections(tree *ir.Node, f Flags, opts ...Option) *ir.Node {
	o := &filterOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.skip {
		return tree
	}
	if !ir.IsObject(tree) {
		panic(fmt.Sprintf("filter: expected object at %s, got %s", tree.Path(), tree.Type))
	}
	drop := map[string]bool{
		headerKey:   !f.Header,
		computedKey: !f.Computed,
		mapDataKey:  !f.MapData,
		commandsKey: !f.Cmds || (o.computedGatesCommands && !f.Computed),
	}
	if debug.Filter() {
		debug.Logf("filter: %+v gates=%t\n", f, o.computedGatesCommands)
	}
	res := ir.FromKeyVals(nil)
	for _, kv := range tree.KeyVals() {
		switch {
		case drop[kv.Key]:
			res.Set(kv.Key, ir.Null())
		case kv.Key == mapDataKey:
			res.Set(kv.Key, mapData(kv.Val, f))
		default:
			res.Set(kv.Key, kv.Val.Clone())
		}
	}
	for _, key := range []string{headerKey, commandsKey, mapDataKey, computedKey} {
		if drop[key] && ir.Get(res, key) == nil {
			res.Set(key, ir.Null())
		}
	}
	return res
}

func mapData(md *ir.Node, f Flags) *ir.Node {
	if ir.IsNull(md) {
		return ir.Null()
	}
	if !ir.IsObject(md) {
		panic(fmt.Sprintf("filter: expected object at %s, got %s", md.Path(), md.Type))
	}
	drop := map[string]bool{
		tilesKey:         !f.MapTiles,
		mineralFieldsKey: !f.MapResLoc,
		geysersKey:       !f.MapResLoc,
	}
	res := ir.FromKeyVals(nil)
	for _, kv := range md.KeyVals() {
		if drop[kv.Key] {
			res.Set(kv.Key, ir.Null())
			continue
		}
		res.Set(kv.Key, kv.Val.Clone())
	}
	for _, key := range []string{tilesKey, mineralFieldsKey, geysersKey} {
		if drop[key] && ir.Get(res, key) == nil {
			res.Set(key, ir.Null())
		}
	}
	return res
}
