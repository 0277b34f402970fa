package transform

import (
	"bytes"
	"fmt"

	"github.com/signadot/screp-format/debug"
	"github.com/signadot/screp-format/encode"
	"github.com/signadot/screp-format/ir"
	"github.com/signadot/screp-format/parse"
)

// ShapeVersion identifies the canonical output shape produced by
// Canonicalize.
const ShapeVersion = "1.0"

// Variant selects between the two known renditions of the canonical
// shape.
type Variant int

const (
	// Extended also destructures the points of mineral fields.
	Extended Variant = iota
	// Legacy only destructures the points of start locations.
	Legacy
)

func (v Variant) String() string {
	switch v {
	case Extended:
		return "extended"
	case Legacy:
		return "legacy"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

type Options struct {
	// RawData keeps the debug and duplicate fields which are dropped by
	// default.
	RawData bool
	// SkipTransform returns the input as is.
	SkipTransform bool
	// Roundtrip passes the result through a json encode and parse.
	Roundtrip bool
	Variant   Variant
}

// Fields removed from the canonical shape unless Options.RawData is set.
var (
	commandsDebugFields = []string{"Debug"}
	computedDebugFields = []string{"PIDPlayerDescs"}
	headerDebugFields   = []string{"Debug", "OrigPlayers", "PIDPlayers", "RawHost", "RawMap", "RawTitle", "Slots"}
	playerDebugFields   = []string{"RawName"}
	mapDataDebugFields  = []string{"Debug"}
)

type step struct {
	name string
	pass Recurse
	path []string
}

func steps(opts Options) []step {
	res := []step{
		{name: "destructure envelopes", pass: Destructure("Enum", "Base")},
		{name: "empty parse error commands", pass: NullIfEmpty("ParseErrCmds"), path: []string{"Commands"}},
		{name: "unit tags", pass: NumericObjectToArray("UnitTags"), path: []string{"Commands", "Cmds"}},
		{name: "command ineffective kind", pass: DropIfZero("IneffKind"), path: []string{"Commands", "Cmds"}},
		{name: "empty chat commands", pass: NullIfEmpty("ChatCmds"), path: []string{"Computed"}},
		{name: "leave game ineffective kind", pass: DropIfZero("IneffKind"), path: []string{"Computed", "LeaveGameCmds"}},
		{name: "map tiles", pass: NumericObjectToArray("Tiles"), path: []string{"MapData"}},
		{name: "start location points", pass: Destructure("Point"), path: []string{"MapData", "StartLocations"}},
	}
	if opts.Variant == Extended {
		res = append(res, step{name: "mineral field points", pass: Destructure("Point"), path: []string{"MapData", "MineralFields"}})
	}
	if opts.RawData {
		return res
	}
	return append(res,
		step{name: "drop commands debug", pass: Drop(commandsDebugFields...), path: []string{"Commands"}},
		step{name: "drop computed debug", pass: Drop(computedDebugFields...), path: []string{"Computed"}},
		step{name: "drop header debug", pass: Drop(headerDebugFields...), path: []string{"Header"}},
		step{name: "drop player raw names", pass: Drop(playerDebugFields...), path: []string{"Header", "Players"}},
		step{name: "drop map data debug", pass: Drop(mapDataDebugFields...), path: []string{"MapData"}},
	)
}

// Canonicalize rewrites a raw replay tree into the canonical shape. The
// input is not modified.
//
// Steps scoped to a section are skipped when the section is null, as the
// upstream parser leaves sections it was not asked for null. A section
// missing altogether is a malformed input and panics.
func Canonicalize(raw *ir.Node, opts Options) *ir.Node {
	if opts.SkipTransform {
		return raw
	}
	res := raw
	for i, s := range steps(opts) {
		if debug.Pipeline() {
			debug.Logf("pipeline step %d: %s\n", i, s.name)
		}
		if i == 0 && len(s.path) == 0 {
			res = s.pass(res)
			continue
		}
		if res == raw {
			res = raw.Clone()
		}
		res = apply(res, s.pass, s.path)
	}
	if opts.Roundtrip {
		res = roundtrip(res)
	}
	return res
}

// apply replaces the value at path in the tree owned by root with the
// result of pass.
func apply(root *ir.Node, pass Recurse, path []string) *ir.Node {
	if len(path) == 0 {
		return own(pass(root))
	}
	parent := root
	for i, key := range path {
		if !ir.IsObject(parent) {
			panic(fmt.Sprintf("canonicalize: expected object at %s, got %s", parent.Path(), parent.Type))
		}
		child := ir.Get(parent, key)
		if child == nil {
			panic(fmt.Sprintf("canonicalize: missing %q at %s", key, parent.Path()))
		}
		if ir.IsNull(child) {
			return root
		}
		if i < len(path)-1 {
			parent = child
			continue
		}
		res := pass(child)
		if res == child {
			return root
		}
		parent.Set(key, own(res))
	}
	return root
}

func roundtrip(node *ir.Node) *ir.Node {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		panic(fmt.Sprintf("canonicalize: roundtrip encode: %v", err))
	}
	res, err := parse.Parse(buf.Bytes())
	if err != nil {
		panic(fmt.Sprintf("canonicalize: roundtrip parse: %v", err))
	}
	return res
}
