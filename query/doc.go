// Package query evaluates expr language expressions over normalized
// replay trees.
//
// The top level sections of the tree (Header, Commands, MapData,
// Computed) are variables of the expression. Two functions are added:
// getpath(path) returns the value at a path such as "$.Header.Map", and
// listpath(path) returns the values matching a path with "[*]".
package query
