package libdiff

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/screp-format/encode"
	"github.com/signadot/screp-format/ir"
	"github.com/signadot/screp-format/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the json merge patch (RFC 7386) which turns from into
// to. When from and to are equal the result is nil.
func MergePatch(from, to *ir.Node) ([]byte, error) {
	eq, err := Equal(from, to)
	if err != nil {
		return nil, err
	}
	if eq {
		return nil, nil
	}
	fromJSON, err := wire(from)
	if err != nil {
		return nil, err
	}
	toJSON, err := wire(to)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(fromJSON, toJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiff, err)
	}
	return res, nil
}

// Apply applies the json merge patch p to doc, returning a new node.
// Nulls inside arrays the patch adds are dropped by the patch library.
func Apply(doc *ir.Node, p []byte) (*ir.Node, error) {
	docJSON, err := wire(doc)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.MergePatch(docJSON, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiff, err)
	}
	return parse.Parse(res, parse.ParseJSON())
}

// Equal reports whether a and b encode to equivalent json documents.
// Field order is not significant.
func Equal(a, b *ir.Node) (bool, error) {
	aNode, err := normal(a)
	if err != nil {
		return false, err
	}
	bNode, err := normal(b)
	if err != nil {
		return false, err
	}
	return ir.Compare(aNode, bNode) == 0, nil
}

// normal returns node as it reads back from its json encoding, with
// object fields sorted by key.
func normal(node *ir.Node) (*ir.Node, error) {
	d, err := wire(node)
	if err != nil {
		return nil, err
	}
	res, err := parse.Parse(d, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiff, err)
	}
	sortFields(res)
	return res, nil
}

func sortFields(node *ir.Node) {
	for _, v := range node.Values {
		sortFields(v)
	}
	if node.Type != ir.ObjectType {
		return
	}
	perm := make([]int, len(node.Fields))
	for i := range perm {
		perm[i] = i
	}
	slices.SortFunc(perm, func(i, j int) int {
		return strings.Compare(node.Fields[i].String, node.Fields[j].String)
	})
	fields := make([]*ir.Node, len(perm))
	values := make([]*ir.Node, len(perm))
	for i, p := range perm {
		fields[i], values[i] = node.Fields[p], node.Values[p]
		fields[i].ParentIndex, values[i].ParentIndex = i, i
	}
	node.Fields, node.Values = fields, values
}

func wire(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiff, err)
	}
	return buf.Bytes(), nil
}
