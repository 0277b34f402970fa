// Package format names the document encodings understood by parse and
// encode.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    // format.ErrBadFormat
//	}
//
// # Related Packages
//
//   - github.com/signadot/screp-format/parse - Parse text to IR
//   - github.com/signadot/screp-format/encode - Encode IR to text
package format
