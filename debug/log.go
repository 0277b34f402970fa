package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/screp-format/encode"
	"github.com/signadot/screp-format/ir"

	"github.com/davecgh/go-spew/spew"
)

var out io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	fmt.Fprintf(out, msg, render(args)...)
}

func render(args []any) []any {
	res := make([]any, len(args))
	for i, a := range args {
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				res[i] = fmt.Sprintf("%v", a)
				continue
			}
			res[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
				res[i] = "[raw *ir.Node] " + spew.Sdump(x)
				continue
			}
			res[i] = string(bytes.TrimSpace(buf.Bytes()))
		case bool, string, float64, int, int64, error, fmt.Stringer:
			res[i] = a
		default:
			res[i] = spew.Sdump(a)
		}
	}
	return res
}
