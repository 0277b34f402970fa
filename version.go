package screp

import (
	"runtime"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/signadot/screp-format/ir"
	"github.com/signadot/screp-format/transform"
)

// VersionEntry is a single labelled line of version information.
type VersionEntry struct {
	Label string
	Value string
}

type VersionReporter interface {
	Version() []VersionEntry
}

// StaticReporter reports a fixed list of entries.
type StaticReporter []VersionEntry

func (r StaticReporter) Version() []VersionEntry {
	return r
}

// Version holds the pertinent version information.
type Version struct {
	ScrepVersion  string
	ParserVersion string
	EAPMVersion   string
	GoVersion     string

	// keys of the fields reported, in report order
	keys []string
}

type versionField struct {
	key   string
	field func(*Version) *string
}

var versionFields = []versionField{
	{key: "screpVersion", field: func(v *Version) *string { return &v.ScrepVersion }},
	{key: "parserVersion", field: func(v *Version) *string { return &v.ParserVersion }},
	{key: "eapmVersion", field: func(v *Version) *string { return &v.EAPMVersion }},
	{key: "goVersion", field: func(v *Version) *string { return &v.GoVersion }},
}

var versionLabels = map[string]versionField{
	"screp version":          versionFields[0],
	"Parser version":         versionFields[1],
	"EAPM algorithm version": versionFields[2],
	"Built with":             versionFields[3],
}

// VersionObject keeps the pertinent entries of a version report, even
// those with an empty value. Labels such as "Platform", "Author" or
// "Home page", and unknown labels, are dropped. A repeated label keeps
// its last value.
func VersionObject(entries []VersionEntry) Version {
	res := Version{keys: []string{}}
	for _, e := range entries {
		f, ok := versionLabels[e.Label]
		if !ok {
			continue
		}
		*f.field(&res) = e.Value
		if !slices.Contains(res.keys, f.key) {
			res.keys = append(res.keys, f.key)
		}
	}
	return res
}

// ToIR returns v as an object keyed like the version object of the
// javascript wrapper. A Version from VersionObject has the fields reported
// in report order; otherwise the fields which are not empty are used.
func (v Version) ToIR() *ir.Node {
	byKey := make(map[string]versionField, len(versionFields))
	for _, f := range versionFields {
		byKey[f.key] = f
	}
	var kvs []ir.KeyVal
	if v.keys != nil {
		for _, k := range v.keys {
			kvs = append(kvs, ir.KeyVal{Key: k, Val: ir.FromString(*byKey[k].field(&v))})
		}
		return ir.FromKeyVals(kvs)
	}
	for _, f := range versionFields {
		if val := *f.field(&v); val != "" {
			kvs = append(kvs, ir.KeyVal{Key: f.key, Val: ir.FromString(val)})
		}
	}
	return ir.FromKeyVals(kvs)
}

// VersionString renders entries one "label: value" per line.
func VersionString(entries []VersionEntry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Label + ": " + e.Value
	}
	return strings.Join(lines, "\n")
}

const homePage = "https://github.com/signadot/screp-format"

// BuildInfo reports the version of the running binary.
func BuildInfo() StaticReporter {
	version := "(devel)"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	return StaticReporter{
		{Label: "screp version", Value: version},
		{Label: "Parser version", Value: transform.ShapeVersion},
		{Label: "Platform", Value: runtime.GOOS + "/" + runtime.GOARCH},
		{Label: "Built with", Value: runtime.Version()},
		{Label: "Home page", Value: homePage},
	}
}
