// Package ir provides the tree representation shared by every stage of
// replay normalization.
//
// # Overview
//
// A parsed replay, as handed over by the upstream parser, is a tree of
// nodes. The same representation is used for the raw tree, the canonical
// tree and the filtered tree, so each stage can be tested on its own.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean
//   - NumberType: numeric value (Int64, Float64 and/or the source text in Number)
//   - StringType: string value
//   - TimeType: timestamp produced upstream, kept opaque
//   - ObjectType: ordered record of string keys (Fields) and values (Values)
//   - ArrayType: ordered list of nodes (Values)
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i].
// Field order is kept, which makes encoded output stable.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "X", Val: ir.FromInt(3)},
//	    {Key: "Y", Val: ir.FromInt(4)},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// Constructors set the Parent links of their children, so a node may only
// belong to one tree. Use Clone to reuse a node elsewhere.
//
// # Paths
//
// Path returns the JSONPath-style location of a node, e.g. "$.Header.Players[0]".
// GetPath and ListPath navigate the tree with the same syntax.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Trees produced by different
// calls share nothing.
package ir
