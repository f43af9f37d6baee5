// Package ucl parses and emits the relaxed configuration syntax and
// converts parsed documents to and from plain Go values.
package ucl

import (
	"bytes"
	"errors"

	"github.com/openucl/go-ucl/encode"
	"github.com/openucl/go-ucl/format"
	"github.com/openucl/go-ucl/gomap"
	"github.com/openucl/go-ucl/parse"
)

// ErrNotImplemented is returned by operations with no implementation.
var ErrNotImplemented = errors.New("not implemented")

// Emit modes accepted by Dump.
const (
	EmitConfig      = format.ConfigFormat
	EmitJSON        = format.JSONFormat
	EmitJSONCompact = format.JSONCompactFormat
	EmitYAML        = format.YAMLFormat
)

// Load parses configuration text into plain Go values: map[string]any
// for objects, []any for arrays, int64/float64/string/bool scalars.
// A nil input yields a nil result with no error.
func Load(d []byte, opts ...parse.ParseOption) (any, error) {
	if d == nil {
		return nil, nil
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return gomap.FromIR(node), nil
}

// LoadString is Load over a string.
func LoadString(s string, opts ...parse.ParseOption) (any, error) {
	return Load([]byte(s), opts...)
}

// Dump renders a Go value in the given emit mode. A nil value yields a
// nil result with no error.
func Dump(v any, f format.Format) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	node, err := gomap.ToIR(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, encode.EncodeFormat(f)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DumpString is Dump returning a string.
func DumpString(v any, f format.Format) (string, error) {
	d, err := Dump(v, f)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// Validate checks data against a schema. Schema support is not
// implemented and every call returns ErrNotImplemented.
func Validate(schema, data any) error {
	return ErrNotImplemented
}
