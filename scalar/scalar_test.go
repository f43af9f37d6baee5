package scalar

import (
	"testing"

	"github.com/openucl/go-ucl/ir"
)

type classifyTest struct {
	in   string
	typ  ir.Type
	i    int64
	f    float64
	s    string
	b    bool
	opts []Option
}

func TestClassify(t *testing.T) {
	cts := []classifyTest{
		{in: "true", typ: ir.BoolType, b: true},
		{in: "Yes", typ: ir.BoolType, b: true},
		{in: "ON", typ: ir.BoolType, b: true},
		{in: "false", typ: ir.BoolType},
		{in: "no", typ: ir.BoolType},
		{in: "off", typ: ir.BoolType},

		{in: "42", typ: ir.NumberType, i: 42},
		{in: "-7", typ: ir.NumberType, i: -7},
		{in: "0", typ: ir.NumberType, i: 0},
		{in: "0xdeadbeef", typ: ir.NumberType, i: 3735928559},
		{in: "-0xdeadbeef", typ: ir.NumberType, i: -3735928559},
		{in: "0XFF", typ: ir.NumberType, i: 255},

		{in: "1.5", typ: ir.NumberType, f: 1.5},
		{in: "-1e-10", typ: ir.NumberType, f: -1e-10},
		{in: "3e4", typ: ir.NumberType, f: 3e4},
		{in: "2.5E2", typ: ir.NumberType, f: 250},

		{in: "hello", typ: ir.StringType, s: "hello"},
		{in: "123abc", typ: ir.StringType, s: "123abc"},
		{in: "0xdeadbeef.1", typ: ir.StringType, s: "0xdeadbeef.1"},
		{in: "0xreadbeef", typ: ir.StringType, s: "0xreadbeef"},
		{in: "0x", typ: ir.StringType, s: "0x"},
		{in: "10.0.1", typ: ir.StringType, s: "10.0.1"},
		{in: "1.", typ: ir.StringType, s: "1."},
		{in: "-", typ: ir.StringType, s: "-"},
		{in: "e10", typ: ir.StringType, s: "e10"},
		{in: "99999999999999999999", typ: ir.StringType, s: "99999999999999999999"},

		{in: "10k", typ: ir.StringType, s: "10k"},
		{in: "10k", typ: ir.NumberType, i: 10000, opts: []Option{WithSuffixes()}},
		{in: "16mb", typ: ir.NumberType, i: 16777216, opts: []Option{WithSuffixes()}},
		{in: "2GB", typ: ir.NumberType, i: 2147483648, opts: []Option{WithSuffixes()}},
		{in: "1.5k", typ: ir.NumberType, f: 1500, opts: []Option{WithSuffixes()}},
		{in: "30min", typ: ir.NumberType, f: 1800, opts: []Option{WithSuffixes()}},
		{in: "500ms", typ: ir.NumberType, f: 0.5, opts: []Option{WithSuffixes()}},
		{in: "2d", typ: ir.NumberType, f: 172800, opts: []Option{WithSuffixes()}},
		{in: "10zz", typ: ir.StringType, s: "10zz", opts: []Option{WithSuffixes()}},
	}
	for _, ct := range cts {
		node := Classify(ct.in, ct.opts...)
		if node.Type != ct.typ {
			t.Errorf("%q: got %s, want %s", ct.in, node.Type, ct.typ)
			continue
		}
		switch ct.typ {
		case ir.BoolType:
			if node.Bool != ct.b {
				t.Errorf("%q: got %v, want %v", ct.in, node.Bool, ct.b)
			}
		case ir.NumberType:
			if node.Int64 != nil {
				if *node.Int64 != ct.i {
					t.Errorf("%q: got %d, want %d", ct.in, *node.Int64, ct.i)
				}
				if ct.f != 0 {
					t.Errorf("%q: got int, want float %v", ct.in, ct.f)
				}
				continue
			}
			if *node.Float64 != ct.f {
				t.Errorf("%q: got %v, want %v", ct.in, *node.Float64, ct.f)
			}
		case ir.StringType:
			if node.String != ct.s {
				t.Errorf("%q: got %q, want %q", ct.in, node.String, ct.s)
			}
		}
	}
}
