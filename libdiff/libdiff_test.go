package libdiff

import (
	"testing"

	"github.com/signadot/screp-format/encode"
	"github.com/signadot/screp-format/ir"
	"github.com/signadot/screp-format/parse"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestMergePatch(t *testing.T) {
	tests := []struct {
		from, to string
		want     string
		// the patch library drops nulls from arrays it applies
		noApply bool
	}{
		{from: `{"a": 1}`, to: `{"a": 1}`, want: ""},
		{from: `{"a": 1, "b": 2}`, to: `{"b": 2, "a": 1}`, want: ""},
		{from: `{"a": 1}`, to: `{"a": 2}`, want: `{"a":2}`},
		{from: `{"a": 1, "b": 2}`, to: `{"a": 1}`, want: `{"b":null}`},
		{from: `{"a": {"x": 1, "y": 2}}`, to: `{"a": {"x": 1, "y": 3}}`, want: `{"a":{"y":3}}`},
		{from: `{"a": [1, 2]}`, to: `{"a": [1]}`, want: `{"a":[1]}`},
		{from: `{"a": [null], "b": 1}`, to: `{"a": [null], "b": 1}`, want: ""},
		{from: `{"a": [null], "b": 1}`, to: `{"b": 2, "a": [null]}`, want: `{"b":2}`},
		{from: `{"a": [{"x": null}, null]}`, to: `{"a": [{"x": null}, null]}`, want: ""},
		{from: `{"a": [1, null]}`, to: `{"a": [null]}`, want: `{"a":[null]}`, noApply: true},
	}
	for _, tt := range tests {
		from, to := mustParse(t, tt.from), mustParse(t, tt.to)
		got, err := MergePatch(from, to)
		if err != nil {
			t.Errorf("%s -> %s: %v", tt.from, tt.to, err)
			continue
		}
		if diff := cmp.Diff(tt.want, string(got)); diff != "" {
			t.Errorf("%s -> %s (-want +got):\n%s", tt.from, tt.to, diff)
		}
		if got == nil || tt.noApply {
			continue
		}
		applied, err := Apply(from, got)
		if err != nil {
			t.Errorf("apply %s: %v", got, err)
			continue
		}
		eq, err := Equal(applied, to)
		if err != nil {
			t.Fatal(err)
		}
		if !eq {
			t.Errorf("apply %s to %s: got %s", got, tt.from, encode.MustString(applied))
		}
	}
}

func TestEqual(t *testing.T) {
	eq, err := Equal(mustParse(t, `{"a": 1, "b": [true, null]}`), mustParse(t, `{"b": [true, null], "a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("expected equal")
	}
	eq, err = Equal(mustParse(t, `{"a": [null, {"y": 1.0, "x": null}]}`), mustParse(t, `{"a": [null, {"x": null, "y": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("expected equal with nulls in arrays")
	}
	eq, err = Equal(mustParse(t, `{"a": [null]}`), mustParse(t, `{"a": [false]}`))
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Error("null and false should differ")
	}
	eq, err = Equal(mustParse(t, `{"a": [1, 2]}`), mustParse(t, `{"a": [2, 1]}`))
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Error("array order should matter")
	}
}

func TestText(t *testing.T) {
	if got := Text("a\nb\n", "a\nb\n"); got != "" {
		t.Errorf("equal texts: got %q", got)
	}
	got := Text("a\nb\nc\n", "a\nx\nc\n")
	want := " a\n-b\n+x\n c\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
