package parse

import "github.com/signadot/screp-format/format"

type parseOpts struct {
	format     format.Format
	timeFields map[string]bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseTimeFields makes string values held by any of the named fields
// parse as timestamps when they are RFC 3339 formatted.
func ParseTimeFields(fields ...string) ParseOption {
	return func(o *parseOpts) {
		if o.timeFields == nil {
			o.timeFields = map[string]bool{}
		}
		for _, f := range fields {
			o.timeFields[f] = true
		}
	}
}
