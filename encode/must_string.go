package encode

import (
	"bytes"
	"fmt"

	"github.com/openucl/go-ucl/ir"
)

// MustString renders node to a string and panics on encoding errors.
// For tests and tooling over trees known to be well formed.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	var buf bytes.Buffer
	if err := Encode(node, &buf, opts...); err != nil {
		panic(fmt.Sprintf("encode: %v", err))
	}
	return buf.String()
}
