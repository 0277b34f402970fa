package query

import (
	"fmt"

	"github.com/signadot/screp-format/debug"
	"github.com/signadot/screp-format/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Query is a compiled expression over a replay tree.
type Query struct {
	src     string
	program *vm.Program
	doc     *ir.Node
}

// Compile compiles expression against doc. The top level fields of doc
// are the variables of the expression.
func Compile(doc *ir.Node, expression string) (*Query, error) {
	if !ir.IsObject(doc) {
		return nil, fmt.Errorf("%w: expected object document, got %s", ErrQuery, doc.Type)
	}
	env := Env(doc)
	opts := append(exprOpts(doc), expr.Env(env))
	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrQuery, expression, err)
	}
	return &Query{src: expression, program: program, doc: doc}, nil
}

func (q *Query) String() string {
	return q.src
}

// Run evaluates q and converts the result to a node.
func (q *Query) Run() (*ir.Node, error) {
	out, err := expr.Run(q.program, Env(q.doc))
	if err != nil {
		return nil, fmt.Errorf("%w: running %q: %w", ErrQuery, q.src, err)
	}
	if debug.Parse() {
		debug.Logf("query %q: %v\n", q.src, out)
	}
	res, err := ir.FromAny(out)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrQuery, q.src, err)
	}
	return res, nil
}

// Eval compiles and runs expression on doc.
func Eval(doc *ir.Node, expression string) (*ir.Node, error) {
	q, err := Compile(doc, expression)
	if err != nil {
		return nil, err
	}
	return q.Run()
}

// Env returns the expression environment of doc, mapping each top level
// field to its plain value.
func Env(doc *ir.Node) map[string]any {
	res := make(map[string]any, len(doc.Fields))
	for _, kv := range doc.KeyVals() {
		res[kv.Key] = ir.ToAny(kv.Val)
	}
	return res
}
