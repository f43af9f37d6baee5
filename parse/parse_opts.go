package parse

import (
	"github.com/openucl/go-ucl/scalar"
)

const defaultMaxDepth = 128

type parseOpts struct {
	maxDepth int
	suffixes bool
}

func (o *parseOpts) scalarOpts() []scalar.Option {
	if o.suffixes {
		return []scalar.Option{scalar.WithSuffixes()}
	}
	return nil
}

type ParseOption func(*parseOpts)

// MaxDepth caps object/array nesting. Values below 1 keep the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n >= 1 {
			o.maxDepth = n
		}
	}
}

// NumberSuffixes enables size and time suffix multipliers on bare
// number literals (10k, 16mb, 30min).
func NumberSuffixes() ParseOption {
	return func(o *parseOpts) { o.suffixes = true }
}
