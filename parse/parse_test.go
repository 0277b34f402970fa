package parse

import (
	"bytes"
	"compress/gzip"
	"errors"
	"testing"

	"github.com/signadot/screp-format/encode"
	"github.com/signadot/screp-format/ir"
)

type parseTest struct {
	in  string
	out string
	err bool
}

var parseTests = []parseTest{
	{in: `null`, out: `null`},
	{in: `{"b": 1, "a": [1.50, "x", true, null]}`, out: `{"b":1,"a":[1.50,"x",true,null]}`},
	{in: `{"a": 1, "a": 2}`, out: `{"a":2}`},
	{in: `{"0": {}, "1": []}`, out: `{"0":{},"1":[]}`},
	{in: `12345678901234567890`, out: `12345678901234567890`},
	{in: `{"a": 1`, err: true},
	{in: `{"a": 1} 2`, err: true},
	{in: ``, err: true},
}

func TestParseJSON(t *testing.T) {
	for _, tt := range parseTests {
		node, err := Parse([]byte(tt.in))
		if tt.err {
			if !errors.Is(err, ErrParse) {
				t.Errorf("%q: expected ErrParse, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got := encode.MustString(node); got != tt.out {
			t.Errorf("%q: got %s want %s", tt.in, got, tt.out)
		}
	}
}

func TestParseGzip(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	zw := gzip.NewWriter(buf)
	if _, err := zw.Write([]byte(`{"Header": {"Frames": 10}}`)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	node, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	frames, err := node.GetPath("$.Header.Frames")
	if err != nil {
		t.Fatal(err)
	}
	if frames == nil || *frames.Int64 != 10 {
		t.Errorf("got %v", ir.ToAny(frames))
	}
}

func TestParseTimeFields(t *testing.T) {
	in := `{"StartTime": "2020-05-06T07:08:09Z", "Other": "2020-05-06T07:08:09Z", "Bad": {"StartTime": "yesterday"}}`
	node, err := Parse([]byte(in), ParseTimeFields("StartTime"))
	if err != nil {
		t.Fatal(err)
	}
	if st := ir.Get(node, "StartTime"); st.Type != ir.TimeType || st.Time.Year() != 2020 {
		t.Errorf("StartTime not a time: %s", st.Type)
	}
	if o := ir.Get(node, "Other"); o.Type != ir.StringType {
		t.Errorf("Other converted")
	}
	if b := ir.Get(ir.Get(node, "Bad"), "StartTime"); b.Type != ir.StringType {
		t.Errorf("unparsable time converted")
	}
	if got := encode.MustString(node); got != `{"StartTime":"2020-05-06T07:08:09Z","Other":"2020-05-06T07:08:09Z","Bad":{"StartTime":"yesterday"}}` {
		t.Errorf("time did not encode back: %s", got)
	}
}

func TestParseYAML(t *testing.T) {
	in := "z: 1\na:\n  - x\n  - 2.5\nn: null\n"
	node, err := Parse([]byte(in), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node); got != `{"z":1,"a":["x",2.5],"n":null}` {
		t.Errorf("got %s", got)
	}
}
