// Package libdiff compares normalized replay trees.
//
// Structural differences are expressed as json merge patches, and
// textual differences of encoded trees as line diffs.
package libdiff
