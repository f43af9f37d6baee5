package gomap

import (
	"github.com/openucl/go-ucl/ir"
)

// FromIR converts a value tree to plain Go values: map[string]any for
// objects, []any for arrays, int64/float64/string/bool for scalars and
// nil for null.
func FromIR(node *ir.Node) any {
	if node == nil {
		return nil
	}
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
			res[i] = FromIR(e)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = FromIR(node.Values[i])
		}
		return res
	}
	return nil
}
