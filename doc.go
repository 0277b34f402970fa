// Package screp normalizes the tree produced by a replay parser into the
// canonical replay document, pruned to the sections a caller asks for.
//
// # Overview
//
// The upstream parser is any Parser. Its raw tree goes through
// transform.Canonicalize and then filter.Sections:
//
//	opts := screp.ResolveOptions(map[string]any{"cmds": true}, false)
//	node, err := screp.ParseBuffer(ctx, screp.JSONParser{}, data, opts)
//	if errors.Is(err, screp.ErrParse) {
//	    // the parser rejected data
//	}
//
// Options are explicit values, so concurrent calls with different options
// do not interfere.
//
// # Related Packages
//
//   - github.com/signadot/screp-format/transform - canonicalization
//   - github.com/signadot/screp-format/filter - section pruning
//   - github.com/signadot/screp-format/encode - output encoding
package screp
