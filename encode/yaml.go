package encode

import (
	"fmt"
	"io"

	"github.com/openucl/go-ucl/ir"

	"github.com/goccy/go-yaml"
)

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(irToAny(node))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return writeString(w, string(d))
}

func irToAny(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		return *node.Float64
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, e := range node.Values {
			res[i] = irToAny(e)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = irToAny(node.Values[i])
		}
		return res
	}
	return nil
}
