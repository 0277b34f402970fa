package ir

import (
	"testing"
	"time"
)

func sample() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromSlice([]*Node{
			FromString("x"),
			FromKeyVals([]KeyVal{{Key: "c", Val: FromBool(true)}}),
		})},
		{Key: "t", Val: FromTime(time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC))},
	})
}

func TestCloneIsDeep(t *testing.T) {
	orig := sample()
	c := orig.Clone()
	if Compare(orig, c) != 0 {
		t.Fatalf("clone differs")
	}
	c.Values[1].Values[0].String = "changed"
	if orig.Values[1].Values[0].String != "x" {
		t.Errorf("clone shares nodes with original")
	}
	if c.Parent != nil {
		t.Errorf("clone has parent")
	}
	if c.Values[1].Values[1].Parent != c.Values[1] {
		t.Errorf("clone parent links not rebuilt")
	}
}

func TestPath(t *testing.T) {
	s := sample()
	c := s.Values[1].Values[1].Values[0]
	if got := c.Path(); got != "$.b[1].c" {
		t.Errorf("got %q", got)
	}
	odd := FromKeyVals([]KeyVal{{Key: "a.b", Val: Null()}})
	if got := odd.Values[0].Path(); got != "$.'a.b'" {
		t.Errorf("got %q", got)
	}
}

func TestGetPath(t *testing.T) {
	s := sample()
	tests := []struct {
		path string
		want *Node
		err  bool
	}{
		{path: "$.a", want: FromInt(1)},
		{path: "$.b[0]", want: FromString("x")},
		{path: "$.b[1].c", want: FromBool(true)},
		{path: "$.missing", want: nil},
		{path: "$.b[7]", err: true},
		{path: "$.a.b", err: true},
		{path: "$.b[*]", err: true},
		{path: "a", err: true},
	}
	for _, tt := range tests {
		got, err := s.GetPath(tt.path)
		if tt.err {
			if err == nil {
				t.Errorf("%s: expected error", tt.path)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.path, err)
			continue
		}
		if (got == nil) != (tt.want == nil) || (got != nil && Compare(got, tt.want) != 0) {
			t.Errorf("%s: got %v want %v", tt.path, ToAny(got), ToAny(tt.want))
		}
	}
}

func TestListPath(t *testing.T) {
	arr := FromSlice([]*Node{
		FromKeyVals([]KeyVal{{Key: "X", Val: FromInt(1)}}),
		FromKeyVals([]KeyVal{{Key: "X", Val: FromInt(2)}}),
		FromKeyVals([]KeyVal{{Key: "Y", Val: FromInt(3)}}),
	})
	res, err := arr.ListPath(nil, "$[*].X")
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 || *res[0].Int64 != 1 || *res[1].Int64 != 2 {
		t.Errorf("got %v", res)
	}
}

func TestSet(t *testing.T) {
	s := sample()
	s.Set("a", Null())
	s.Set("z", FromInt(9))
	if Get(s, "a").Type != NullType {
		t.Errorf("a not replaced")
	}
	z := Get(s, "z")
	if z == nil || z.Path() != "$.z" || len(s.Fields) != 4 {
		t.Errorf("z not appended")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		n                      *Node
		obj, arr, scalar, zero bool
	}{
		{n: FromInt(0), scalar: true, zero: true},
		{n: FromFloat(0), scalar: true, zero: true},
		{n: FromNumber("0.0"), scalar: true, zero: true},
		{n: FromInt(3), scalar: true},
		{n: FromString("0"), scalar: true},
		{n: FromBool(false), scalar: true},
		{n: Null(), scalar: true},
		{n: FromSlice(nil), arr: true},
		{n: FromKeyVals(nil), obj: true},
		{n: nil},
	}
	for i, tt := range tests {
		if IsObject(tt.n) != tt.obj || IsArray(tt.n) != tt.arr || IsScalar(tt.n) != tt.scalar || IsZero(tt.n) != tt.zero {
			t.Errorf("%d: predicates wrong for %v", i, ToAny(tt.n))
		}
	}
}

func TestFromAnyRoundtrip(t *testing.T) {
	in := map[string]any{
		"b": []any{int64(1), 2.5, "s", nil, true},
		"a": map[string]any{"k": "v"},
	}
	n, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	if n.Fields[0].String != "a" {
		t.Errorf("keys not sorted")
	}
	back := ToAny(n).(map[string]any)
	if back["b"].([]any)[1] != 2.5 {
		t.Errorf("got %v", back)
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Errorf("expected conversion error")
	}
}
