package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	screp "github.com/signadot/screp-format"
	"github.com/signadot/screp-format/ir"
	"github.com/signadot/screp-format/parse"
)

func TestSectionOptions(t *testing.T) {
	tests := []struct {
		name string
		cfg  SectionConfig
		want screp.Options
	}{
		{name: "default", want: screp.DefaultOptions()},
		{name: "noheader", cfg: SectionConfig{NoHeader: true}, want: screp.Options{Computed: true}},
		{
			name: "mapdata",
			cfg:  SectionConfig{MapData: true, MapResLoc: true, Raw: true},
			want: screp.Options{Header: true, Computed: true, MapData: true, MapResLoc: true, RawData: true},
		},
		{
			name: "all",
			cfg:  SectionConfig{All: true, NoComputed: true},
			want: screp.Options{Header: true, MapData: true, MapTiles: true, MapResLoc: true, Cmds: true},
		},
	}
	for _, tt := range tests {
		got, err := tt.cfg.options()
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %+v want %+v", tt.name, got, tt.want)
		}
	}
}

func TestSectionOptionsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.yaml")
	if err := os.WriteFile(path, []byte("computed: false\ncmds: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := SectionConfig{Config: path, MapData: true}
	got, err := cfg.options()
	if err != nil {
		t.Fatal(err)
	}
	want := screp.Options{Header: true, MapData: true, Cmds: true}
	if got != want {
		t.Errorf("got %+v want %+v", got, want)
	}
	cfg.Config = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := cfg.options(); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestDiffInputs(t *testing.T) {
	mustParse := func(s string) *ir.Node {
		node, err := parse.Parse([]byte(s))
		if err != nil {
			t.Fatal(err)
		}
		return node
	}
	a := mustParse(`{"Header": {"Map": "a", "Frames": 1}}`)
	b := mustParse(`{"Header": {"Map": "b", "Frames": 1}}`)
	cfg := &DiffConfig{MainConfig: &MainConfig{ctx: context.Background()}}

	buf := bytes.NewBuffer(nil)
	differs, err := diffInputs(cfg, buf, a, a.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if differs || buf.Len() != 0 {
		t.Errorf("equal inputs: differs=%t output %q", differs, buf.String())
	}

	differs, err = diffInputs(cfg, buf, a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"Header\": {\n    \"Map\": \"b\"\n  }\n}\n"
	if !differs || buf.String() != want {
		t.Errorf("merge patch: differs=%t output %q", differs, buf.String())
	}

	buf.Reset()
	cfg.Text = true
	differs, err = diffInputs(cfg, buf, a, b)
	if err != nil {
		t.Fatal(err)
	}
	want = " {\n   \"Header\": {\n-    \"Map\": \"a\",\n+    \"Map\": \"b\",\n     \"Frames\": 1\n   }\n }\n"
	if !differs || buf.String() != want {
		t.Errorf("text: differs=%t output %q", differs, buf.String())
	}
}
