package transform

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/signadot/screp-format/ir"
)

// Destructure replaces each targeted entry by the entries of its object
// value, walked in turn. A null value contributes nothing; any other
// non-object value panics.
func Destructure(keys ...string) Recurse {
	return Walk(func(_ string, value *ir.Node, next Recurse) []Pair {
		if ir.IsNull(value) {
			return nil
		}
		if !ir.IsObject(value) {
			panic(fmt.Sprintf("destructure: expected object at %s, got %s", value.Path(), value.Type))
		}
		pairs := make([]Pair, len(value.Fields))
		for i, f := range value.Fields {
			pairs[i] = Pair{Key: f.String, Value: next(value.Values[i])}
		}
		return pairs
	}, keys...)
}

// DropIfZero removes targeted entries whose value is the number 0.
func DropIfZero(keys ...string) Recurse {
	return Walk(func(key string, value *ir.Node, _ Recurse) []Pair {
		if ir.IsZero(value) {
			return nil
		}
		return []Pair{{Key: key, Value: value}}
	}, keys...)
}

// Drop removes targeted entries.
func Drop(keys ...string) Recurse {
	return Walk(func(string, *ir.Node, Recurse) []Pair {
		return nil
	}, keys...)
}

// NullIfEmpty replaces targeted empty arrays by null.
func NullIfEmpty(keys ...string) Recurse {
	return Walk(func(key string, value *ir.Node, _ Recurse) []Pair {
		if ir.IsArray(value) && len(value.Values) == 0 {
			return []Pair{{Key: key, Value: ir.Null()}}
		}
		return []Pair{{Key: key, Value: value}}
	}, keys...)
}

// NumericObjectToArray turns targeted values into arrays. The value is
// either an array already or an object keyed by decimal indexes, as typed
// arrays come out of some encoders. Elements are walked in index order.
func NumericObjectToArray(keys ...string) Recurse {
	return Walk(func(key string, value *ir.Node, next Recurse) []Pair {
		var elts []*ir.Node
		switch {
		case ir.IsNull(value):
			return []Pair{{Key: key, Value: value}}
		case ir.IsArray(value):
			elts = value.Values
		case ir.IsObject(value):
			elts = indexedValues(value)
		default:
			panic(fmt.Sprintf("numeric object: expected array or object at %s, got %s", value.Path(), value.Type))
		}
		vals := make([]*ir.Node, len(elts))
		for i, e := range elts {
			vals[i] = own(next(e))
		}
		return []Pair{{Key: key, Value: ir.FromSlice(vals)}}
	}, keys...)
}

func indexedValues(obj *ir.Node) []*ir.Node {
	type entry struct {
		index int
		val   *ir.Node
	}
	entries := make([]entry, len(obj.Fields))
	for i, f := range obj.Fields {
		index, err := strconv.Atoi(f.String)
		if err != nil || index < 0 || strconv.Itoa(index) != f.String {
			panic(fmt.Sprintf("numeric object: non index key %q at %s", f.String, obj.Path()))
		}
		entries[i] = entry{index: index, val: obj.Values[i]}
	}
	slices.SortFunc(entries, func(a, b entry) int { return a.index - b.index })
	res := make([]*ir.Node, len(entries))
	for i := range entries {
		res[i] = entries[i].val
	}
	return res
}
