// Package parse builds value trees from configuration text.
//
// The grammar is forgiving: the top-level braces are implicit, ':' and
// '=' both separate keys from values, ',' and ';' both terminate
// entries and both are optional. A document that ends inside an open
// object or array still parses. The one fatal shape is a key with no
// value at end of input.
package parse

import (
	"fmt"

	"github.com/openucl/go-ucl/debug"
	"github.com/openucl/go-ucl/ir"
	"github.com/openucl/go-ucl/scalar"
	"github.com/openucl/go-ucl/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("%d: %s %q\n", i, toks[i].Pos, toks[i].Bytes)
		}
	}
	pi := 0
	var res *ir.Node
	if len(toks) > 0 && toks[0].Type == token.TLSquare {
		pi++
		res, err = parseArr(toks, &ir.Node{Type: ir.ArrayType}, &pi, pOpts, 1)
	} else {
		if len(toks) > 0 && toks[0].Type == token.TLCurl {
			pi++
		}
		res, err = parseObj(toks, &ir.Node{Type: ir.ObjectType}, &pi, pOpts, 1, true)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s root with %d entries from %d tokens\n", res.Type, len(res.Values), len(toks))
	}
	return res, nil
}

// parseObj consumes key/value pairs until a closing curl or end of
// input. At the top level closing brackets are stray punctuation and
// are skipped.
func parseObj(toks []token.Token, obj *ir.Node, pi *int, opts *parseOpts, depth int, top bool) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrDepth, opts.maxDepth)
	}
	for *pi < len(toks) {
		t := &toks[*pi]
		switch t.Type {
		case token.TRCurl:
			*pi++
			if top {
				continue
			}
			return obj, nil
		case token.TRSquare, token.TTerm:
			*pi++
			continue
		case token.TLiteral, token.TString:
			key := t.String()
			keyPos := t.Pos
			*pi++
			if *pi < len(toks) && toks[*pi].Type == token.TKVSep {
				*pi++
			}
			if *pi >= len(toks) {
				return nil, fmt.Errorf("%w %s: unfinished key", ErrSyntax, keyPos)
			}
			val, err := parseValue(toks, pi, opts, depth)
			if err != nil {
				return nil, err
			}
			ir.Set(obj, key, val)
		default:
			return nil, fmt.Errorf("%w %s: unexpected %q", ErrSyntax, t.Pos, t.Bytes)
		}
	}
	return obj, nil
}

// parseArr consumes values until a closing square or end of input.
func parseArr(toks []token.Token, arr *ir.Node, pi *int, opts *parseOpts, depth int) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrDepth, opts.maxDepth)
	}
	for *pi < len(toks) {
		t := &toks[*pi]
		switch t.Type {
		case token.TRSquare:
			*pi++
			return arr, nil
		case token.TTerm:
			*pi++
			continue
		default:
			val, err := parseValue(toks, pi, opts, depth)
			if err != nil {
				return nil, err
			}
			ir.Append(arr, val)
		}
	}
	return arr, nil
}

func parseValue(toks []token.Token, pi *int, opts *parseOpts, depth int) (*ir.Node, error) {
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		*pi++
		obj := &ir.Node{Type: ir.ObjectType}
		return parseObj(toks, obj, pi, opts, depth+1, false)
	case token.TLSquare:
		*pi++
		arr := &ir.Node{Type: ir.ArrayType}
		return parseArr(toks, arr, pi, opts, depth+1)
	case token.TString:
		*pi++
		return ir.FromString(t.String()), nil
	case token.TLiteral:
		*pi++
		if string(t.Bytes) == "null" {
			return ir.Null(), nil
		}
		return scalar.Classify(string(t.Bytes), opts.scalarOpts()...), nil
	default:
		return nil, fmt.Errorf("%w %s: unexpected %q", ErrSyntax, t.Pos, t.Bytes)
	}
}
