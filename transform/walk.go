package transform

import (
	"github.com/signadot/screp-format/debug"
	"github.com/signadot/screp-format/ir"
)

// Pair is a single object entry produced by an Op.
type Pair struct {
	Key   string
	Value *ir.Node
}

// Recurse transforms a node and everything below it, returning a new
// tree. Scalars are returned as they are.
type Recurse func(*ir.Node) *ir.Node

// Op rewrites a targeted object entry into zero or more entries which take
// its place in the parent object. next continues the walk into values the
// op produces.
type Op func(key string, value *ir.Node, next Recurse) []Pair

// Walk returns a Recurse which applies op to every object entry whose key
// is one of keys, at whatever depth it occurs. Other entries are kept with
// their values walked in turn, and arrays are walked element by element.
//
// A targeted entry is handed to op as is; op decides whether to descend
// into it through next. When the pairs returned by op repeat a key already
// present in the object, the later value replaces the earlier one in its
// original position.
func Walk(op Op, keys ...string) Recurse {
	targets := make(map[string]bool, len(keys))
	for _, k := range keys {
		targets[k] = true
	}
	var next Recurse
	next = func(node *ir.Node) *ir.Node {
		switch {
		case ir.IsObject(node):
			return walkObject(node, op, targets, next)
		case ir.IsArray(node):
			vals := make([]*ir.Node, len(node.Values))
			for i, v := range node.Values {
				vals[i] = own(next(v))
			}
			return ir.FromSlice(vals)
		default:
			return node
		}
	}
	return next
}

func walkObject(node *ir.Node, op Op, targets map[string]bool, next Recurse) *ir.Node {
	kvs := make([]ir.KeyVal, 0, len(node.Fields))
	index := make(map[string]int, len(node.Fields))
	emit := func(key string, val *ir.Node) {
		val = own(val)
		if i, ok := index[key]; ok {
			kvs[i].Val = val
			return
		}
		index[key] = len(kvs)
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	for i, f := range node.Fields {
		key, val := f.String, node.Values[i]
		if !targets[key] {
			emit(key, next(val))
			continue
		}
		pairs := op(key, val, next)
		if debug.Walk() {
			debug.Logf("walk: %s -> %d pair(s)\n", val.Path(), len(pairs))
		}
		for _, p := range pairs {
			emit(p.Key, p.Value)
		}
	}
	return ir.FromKeyVals(kvs)
}

// own makes val safe to attach to a new parent. Nodes still attached to
// the input tree are copied so the input is never modified.
func own(val *ir.Node) *ir.Node {
	if val == nil {
		return ir.Null()
	}
	if val.Parent != nil {
		return val.Clone()
	}
	return val
}
