package gomap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openucl/go-ucl/ir"
)

type ListenConfig struct {
	Host string `ucl:"host"`
	Port int    `ucl:"port"`
	note string
}

type serverConfig struct {
	ListenConfig
	Name    string   `ucl:"name"`
	Debug   bool     `ucl:"debug"`
	Ignored string   `ucl:"-"`
	Tags    []string `ucl:"tags"`
}

func TestToIRStruct(t *testing.T) {
	cfg := serverConfig{
		ListenConfig: ListenConfig{Host: "::1", Port: 8080, note: "hidden"},
		Name:         "api",
		Debug:        true,
		Ignored:      "nope",
		Tags:         []string{"a", "b"},
	}
	node, err := ToIR(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"host":  "::1",
		"port":  int64(8080),
		"name":  "api",
		"debug": true,
		"tags":  []any{"a", "b"},
	}
	if diff := cmp.Diff(want, FromIR(node)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestToIRScalars(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want any
	}{
		{in: nil, want: nil},
		{in: "s", want: "s"},
		{in: 3, want: int64(3)},
		{in: uint8(7), want: int64(7)},
		{in: 1.25, want: 1.25},
		{in: true, want: true},
	} {
		node, err := ToIR(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tc.want, FromIR(node)); diff != "" {
			t.Errorf("%v: mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestToIRMapSortsKeys(t *testing.T) {
	node, err := ToIR(map[string]any{"b": 2, "a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if node.Fields[0].String != "a" || node.Fields[1].String != "b" {
		t.Errorf("keys not sorted: %q, %q", node.Fields[0].String, node.Fields[1].String)
	}
}

func TestToIRBadMapKey(t *testing.T) {
	_, err := ToIR(map[int]string{1: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "map keys must be strings") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestToIRCycle(t *testing.T) {
	type loop struct {
		Self *loop `ucl:"self"`
	}
	l := &loop{}
	l.Self = l
	_, err := ToIR(l)
	if err == nil {
		t.Fatal("expected cycle error")
	}
	if !strings.Contains(err.Error(), "circular reference") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	in := map[string]any{
		"a": int64(1),
		"b": []any{true, "x", 2.5},
		"c": map[string]any{"d": nil},
	}
	node, err := ToIR(in)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, FromIR(node)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIRNil(t *testing.T) {
	if FromIR(nil) != nil {
		t.Error("nil node should map to nil")
	}
	if FromIR(ir.Null()) != nil {
		t.Error("null node should map to nil")
	}
}
