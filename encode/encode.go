package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/screp-format/format"
	"github.com/signadot/screp-format/ir"
)

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format == format.YAMLFormat {
		return encodeYAML(node, w)
	}
	if err := encodeJSON(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// MustString encodes node as wire json, panicking on error.
func MustString(node *ir.Node) string {
	buf := &strings.Builder{}
	if err := encodeJSON(node, buf, &EncState{wire: true}); err != nil {
		panic(err)
	}
	return buf.String()
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return writeColored(w, es, ir.NullType, ValueColor, "null")
	}
	switch node.Type {
	case ir.NullType:
		return writeColored(w, es, node.Type, ValueColor, "null")
	case ir.BoolType:
		return writeColored(w, es, node.Type, ValueColor, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		s, err := numberText(node)
		if err != nil {
			return err
		}
		return writeColored(w, es, node.Type, ValueColor, s)
	case ir.StringType:
		return writeColored(w, es, node.Type, ValueColor, quote(node.String))
	case ir.TimeType:
		return writeColored(w, es, node.Type, ValueColor, quote(node.Time.Format(time.RFC3339Nano)))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return fmt.Errorf("cannot encode %s at %s", node.Type, node.Path())
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeColored(w, es, ir.ArrayType, SepColor, "[]")
	}
	if err := writeColored(w, es, ir.ArrayType, SepColor, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeColored(w, es, ir.ArrayType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, ir.ArrayType, SepColor, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeColored(w, es, ir.ObjectType, SepColor, "{}")
	}
	if err := writeColored(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeColored(w, es, ir.ObjectType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeColored(w, es, ir.ObjectType, FieldColor, quote(f.String)); err != nil {
			return err
		}
		sep := ": "
		if es.wire {
			sep = ":"
		}
		if err := writeColored(w, es, ir.ObjectType, SepColor, sep); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, ir.ObjectType, SepColor, "}")
}

func numberText(node *ir.Node) (string, error) {
	switch {
	case node.Number != "":
		return node.Number, nil
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("unsupported number %v at %s", f, node.Path())
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("number without value at %s", node.Path())
}

func quote(s string) string {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeColored(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
