package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/openucl/go-ucl/debug"
	"github.com/openucl/go-ucl/format"
	"github.com/openucl/go-ucl/ir"
	"github.com/openucl/go-ucl/token"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 4,
		format: format.ConfigFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		node = &ir.Node{Type: ir.ObjectType}
	}
	if debug.Encode() {
		debug.Logf("encoding %s root as %s\n", node.Type, es.format)
	}
	switch es.format {
	case format.ConfigFormat:
		return encodeConfig(node, w, es)
	case format.JSONFormat:
		return writeJSONValue(node, w, es, es.depth, false)
	case format.JSONCompactFormat:
		return writeJSONValue(node, w, es, es.depth, true)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	}
	return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
}

// Configuration syntax. The top-level object has no braces, each
// key/value entry ends in ";\n", nested objects and arrays open their
// own bracket lines. An array root keeps its brackets so the document
// stays parseable. Array scalars all carry a trailing comma, object
// elements of arrays do not.

func encodeConfig(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type == ir.ObjectType {
		return encodeConfigEntries(node, w, es, es.depth)
	}
	if node.Type == ir.ArrayType {
		if err := writeString(w, "[\n"); err != nil {
			return err
		}
		if err := encodeConfigElems(node, w, es, es.depth+1); err != nil {
			return err
		}
		if err := writeIndent(w, es, es.depth); err != nil {
			return err
		}
		return writeString(w, "]\n")
	}
	if err := writeScalar(w, es, node); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encodeConfigEntries(obj *ir.Node, w io.Writer, es *EncState, depth int) error {
	for i, f := range obj.Fields {
		v := obj.Values[i]
		if err := writeIndent(w, es, depth); err != nil {
			return err
		}
		if err := writeKey(w, es, f.String); err != nil {
			return err
		}
		switch v.Type {
		case ir.ObjectType:
			if err := writeString(w, " {\n"); err != nil {
				return err
			}
			if err := encodeConfigEntries(v, w, es, depth+1); err != nil {
				return err
			}
			if err := writeIndent(w, es, depth); err != nil {
				return err
			}
			if err := writeString(w, "}\n"); err != nil {
				return err
			}
		case ir.ArrayType:
			if err := writeString(w, " [\n"); err != nil {
				return err
			}
			if err := encodeConfigElems(v, w, es, depth+1); err != nil {
				return err
			}
			if err := writeIndent(w, es, depth); err != nil {
				return err
			}
			if err := writeString(w, "]\n"); err != nil {
				return err
			}
		default:
			if err := writeString(w, " = "); err != nil {
				return err
			}
			if err := writeScalar(w, es, v); err != nil {
				return err
			}
			if err := writeString(w, ";\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeConfigElems(arr *ir.Node, w io.Writer, es *EncState, depth int) error {
	for _, e := range arr.Values {
		if err := writeIndent(w, es, depth); err != nil {
			return err
		}
		switch e.Type {
		case ir.ObjectType:
			if err := writeString(w, "{\n"); err != nil {
				return err
			}
			if err := encodeConfigEntries(e, w, es, depth+1); err != nil {
				return err
			}
			if err := writeIndent(w, es, depth); err != nil {
				return err
			}
			if err := writeString(w, "}\n"); err != nil {
				return err
			}
		case ir.ArrayType:
			if err := writeString(w, "[\n"); err != nil {
				return err
			}
			if err := encodeConfigElems(e, w, es, depth+1); err != nil {
				return err
			}
			if err := writeIndent(w, es, depth); err != nil {
				return err
			}
			if err := writeString(w, "]\n"); err != nil {
				return err
			}
		default:
			if err := writeScalar(w, es, e); err != nil {
				return err
			}
			if err := writeString(w, ",\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// JSON syntax, pretty or compact. Pretty output is 4-space indented
// with no trailing newline.

func writeJSONValue(node *ir.Node, w io.Writer, es *EncState, depth int, compact bool) error {
	switch node.Type {
	case ir.ObjectType:
		return writeJSONObject(node, w, es, depth, compact)
	case ir.ArrayType:
		return writeJSONArray(node, w, es, depth, compact)
	default:
		return writeScalar(w, es, node)
	}
}

func writeJSONObject(obj *ir.Node, w io.Writer, es *EncState, depth int, compact bool) error {
	if len(obj.Fields) == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	for i, f := range obj.Fields {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if !compact {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			if err := writeIndent(w, es, depth+1); err != nil {
				return err
			}
		}
		key := token.Quote(f.String)
		if es.Color != nil {
			key = es.Color(ir.ObjectType, FieldColor, key)
		}
		if err := writeString(w, key); err != nil {
			return err
		}
		sep := ":"
		if !compact {
			sep = ": "
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
		if err := writeJSONValue(obj.Values[i], w, es, depth+1, compact); err != nil {
			return err
		}
	}
	if !compact {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		if err := writeIndent(w, es, depth); err != nil {
			return err
		}
	}
	return writeString(w, "}")
}

func writeJSONArray(arr *ir.Node, w io.Writer, es *EncState, depth int, compact bool) error {
	if len(arr.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	for i, e := range arr.Values {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if !compact {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			if err := writeIndent(w, es, depth+1); err != nil {
				return err
			}
		}
		if err := writeJSONValue(e, w, es, depth+1, compact); err != nil {
			return err
		}
	}
	if !compact {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		if err := writeIndent(w, es, depth); err != nil {
			return err
		}
	}
	return writeString(w, "]")
}

// Scalars and shared helpers.

func writeScalar(w io.Writer, es *EncState, node *ir.Node) error {
	var s string
	switch node.Type {
	case ir.NullType:
		s = "null"
	case ir.BoolType:
		s = strconv.FormatBool(node.Bool)
	case ir.NumberType:
		if node.Int64 != nil {
			s = strconv.FormatInt(*node.Int64, 10)
		} else {
			s = formatDouble(*node.Float64)
		}
	case ir.StringType:
		s = token.Quote(node.String)
	default:
		return fmt.Errorf("%w: %s is not a scalar", ErrEncoding, node.Type)
	}
	if es.Color != nil {
		s = es.Color(node.Type, ValueColor, s)
	}
	return writeString(w, s)
}

// formatDouble renders a float the way the reference emitter does:
// integral values with one fractional digit, values within 1e-7 of
// their truncation in shortest %g form, everything else with six
// fractional digits.
func formatDouble(v float64) string {
	t := math.Trunc(v)
	if v == t {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	if math.Abs(v-t) < 1e-7 {
		return strconv.FormatFloat(v, 'g', 15, 64)
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func writeKey(w io.Writer, es *EncState, key string) error {
	s := key
	if token.NeedsQuote(key) {
		s = token.Quote(key)
	}
	if es.Color != nil {
		s = es.Color(ir.ObjectType, FieldColor, s)
	}
	return writeString(w, s)
}

func writeIndent(w io.Writer, es *EncState, depth int) error {
	if depth <= 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", es.indent*depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
