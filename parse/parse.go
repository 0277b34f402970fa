package parse

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/signadot/screp-format/debug"
	"github.com/signadot/screp-format/format"
	"github.com/signadot/screp-format/ir"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Parse decodes a single document into a tree. Gzip compressed input is
// decompressed first.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	if bytes.HasPrefix(d, gzipMagic) {
		unz, err := gunzip(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		d = unz
	}
	if debug.Parse() {
		debug.Logf("parsing %d bytes as %s\n", len(d), pOpts.format)
	}
	var (
		node *ir.Node
		err  error
	)
	switch pOpts.format {
	case format.YAMLFormat:
		node, err = parseYAML(d)
	default:
		node, err = parseJSON(d)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(pOpts.timeFields) != 0 {
		parseTimes(node, pOpts.timeFields)
	}
	return node, nil
}

func gunzip(d []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(d))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := parseJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after document at offset %d", dec.InputOffset())
	}
	return node, nil
}

func parseJSONValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			return parseJSONObject(dec)
		case '[':
			return parseJSONArray(dec)
		}
		return nil, fmt.Errorf("unexpected %q at offset %d", x, dec.InputOffset())
	case json.Number:
		return ir.FromNumber(x.String()), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseJSONObject(dec *json.Decoder) (*ir.Node, error) {
	var kvs []ir.KeyVal
	seen := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key at offset %d", dec.InputOffset())
		}
		val, err := parseJSONValue(dec)
		if err != nil {
			return nil, err
		}
		if i, dup := seen[key]; dup {
			kvs[i].Val = val
			continue
		}
		seen[key] = len(kvs)
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ir.FromKeyVals(kvs), nil
}

func parseJSONArray(dec *json.Decoder) (*ir.Node, error) {
	vals := []*ir.Node{}
	for dec.More() {
		val, err := parseJSONValue(dec)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ir.FromSlice(vals), nil
}

func parseTimes(node *ir.Node, fields map[string]bool) {
	_ = node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.StringType || y.Parent == nil || y.Parent.Type != ir.ObjectType {
			return true, nil
		}
		if !fields[y.ParentField] {
			return true, nil
		}
		t, err := time.Parse(time.RFC3339Nano, y.String)
		if err != nil {
			return true, nil
		}
		y.Type = ir.TimeType
		y.Time = t
		y.String = ""
		return true, nil
	})
}
