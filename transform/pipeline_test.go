package transform

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/screp-format/encode"
	"github.com/signadot/screp-format/ir"
	"github.com/signadot/screp-format/parse"

	"github.com/google/go-cmp/cmp"
)

func readRaw(t *testing.T) *ir.Node {
	t.Helper()
	d, err := os.ReadFile(filepath.Join("testdata", "raw.json"))
	if err != nil {
		t.Fatal(err)
	}
	node, err := parse.Parse(d, parse.ParseTimeFields("StartTime"))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func encodeString(t *testing.T, node *ir.Node) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestCanonicalizeGolden(t *testing.T) {
	tests := []struct {
		golden string
		opts   Options
	}{
		{golden: "canonical.json", opts: Options{}},
		{golden: "canonical_raw.json", opts: Options{RawData: true}},
		{golden: "canonical_legacy.json", opts: Options{Variant: Legacy}},
		{golden: "canonical.json", opts: Options{Roundtrip: true}},
	}
	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("testdata", tt.golden))
			if err != nil {
				t.Fatal(err)
			}
			raw := readRaw(t)
			before := encodeString(t, raw)
			got := encodeString(t, Canonicalize(raw, tt.opts))
			if diff := cmp.Diff(string(want), got); diff != "" {
				t.Errorf("canonical output mismatch (-want +got):\n%s", diff)
			}
			if after := encodeString(t, raw); after != before {
				t.Errorf("raw tree was modified")
			}
		})
	}
}

func TestCanonicalizeSkipTransform(t *testing.T) {
	raw := readRaw(t)
	if got := Canonicalize(raw, Options{SkipTransform: true, RawData: true}); got != raw {
		t.Errorf("skip transform did not return its input")
	}
}

func TestCanonicalizeProperties(t *testing.T) {
	canon := Canonicalize(readRaw(t), Options{})
	get := func(path string) *ir.Node {
		t.Helper()
		n, err := canon.GetPath(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		return n
	}
	if n := get("$.Commands.Cmds[0].IneffKind"); n != nil {
		t.Errorf("zero IneffKind kept")
	}
	if n := get("$.Commands.Cmds[1].IneffKind"); n == nil || *n.Int64 != 3 {
		t.Errorf("nonzero IneffKind lost")
	}
	if n := get("$.Computed.LeaveGameCmds[0].IneffKind"); n != nil {
		t.Errorf("zero leave game IneffKind kept")
	}
	if n := get("$.Computed.ChatCmds"); n == nil || n.Type != ir.NullType {
		t.Errorf("empty ChatCmds not null")
	}
	if n := get("$.Commands.ParseErrCmds"); n == nil || n.Type != ir.NullType {
		t.Errorf("empty ParseErrCmds not null")
	}
	if got := encode.MustString(get("$.MapData.Tiles")); got != "[5,7,9]" {
		t.Errorf("tiles: %s", got)
	}
	if got := encode.MustString(get("$.Commands.Cmds[0].UnitTags")); got != "[1152,1153,1154]" {
		t.Errorf("unit tags: %s", got)
	}
	if n := get("$.Header.StartTime"); n.Type != ir.TimeType {
		t.Errorf("start time is %s", n.Type)
	}
	if n := get("$.Header.Players[0].RawName"); n != nil {
		t.Errorf("raw name kept")
	}
	if n := get("$.MapData.Geysers[0].Point.X"); n == nil {
		t.Errorf("geyser points are not destructured")
	}
	if n := get("$.MapData.MineralFields[0].X"); n == nil {
		t.Errorf("mineral field point not destructured")
	}
}

func TestCanonicalizeNullSections(t *testing.T) {
	raw := mustParse(t, `{"Header": {"Players": [], "Debug": 1}, "Commands": null, "MapData": null, "Computed": {"LeaveGameCmds": null, "ChatCmds": []}}`)
	got := encode.MustString(Canonicalize(raw, Options{}))
	want := `{"Header":{"Players":[]},"Commands":null,"MapData":null,"Computed":{"LeaveGameCmds":null,"ChatCmds":null}}`
	if got != want {
		t.Errorf("got %s", got)
	}
}

func TestCanonicalizeMissingSectionPanics(t *testing.T) {
	raw := mustParse(t, `{"Header": {"Players": []}}`)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	Canonicalize(raw, Options{})
}
