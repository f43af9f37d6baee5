package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openucl/go-ucl/gomap"
)

type parseTest struct {
	in   string
	want any
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:   `a = 1`,
			want: map[string]any{"a": int64(1)},
		},
		{
			in:   `a: 1; b = two,`,
			want: map[string]any{"a": int64(1), "b": "two"},
		},
		{
			in:   `{ a = 1 }`,
			want: map[string]any{"a": int64(1)},
		},
		{
			in: `section { x = on }`,
			want: map[string]any{
				"section": map[string]any{"x": true},
			},
		},
		{
			in: `section = { x = off }`,
			want: map[string]any{
				"section": map[string]any{"x": false},
			},
		},
		{
			in:   `a = 1 a = 2`,
			want: map[string]any{"a": int64(2)},
		},
		{
			in:   `key [ 1, 2.5, three ]`,
			want: map[string]any{"key": []any{int64(1), 2.5, "three"}},
		},
		{
			in:   `[1, 2, 3]`,
			want: []any{int64(1), int64(2), int64(3)},
		},
		{
			in:   `[ { a = 1 }, [2] ]`,
			want: []any{map[string]any{"a": int64(1)}, []any{int64(2)}},
		},
		{
			in:   "# comment\na = 1",
			want: map[string]any{"a": int64(1)},
		},
		{
			in:   "a = /* x /* y */ z */ 1 b = 2",
			want: map[string]any{"a": int64(1), "b": int64(2)},
		},
		{
			in:   `"a key" = "a value"`,
			want: map[string]any{"a key": "a value"},
		},
		{
			in:   `a = "yes"`,
			want: map[string]any{"a": "yes"},
		},
		{
			in:   `a = null`,
			want: map[string]any{"a": nil},
		},
		{
			in:   `a = "null"`,
			want: map[string]any{"a": "null"},
		},
		{
			in:   `a = 0xdeadbeef b = 0xreadbeef`,
			want: map[string]any{"a": int64(3735928559), "b": "0xreadbeef"},
		},
		{
			in: `a { b = 1 } c [ on, off ]`,
			want: map[string]any{
				"a": map[string]any{"b": int64(1)},
				"c": []any{true, false},
			},
		},
		// lenient recovery
		{
			in:   ``,
			want: map[string]any{},
		},
		{
			in:   `{`,
			want: map[string]any{},
		},
		{
			in:   `}`,
			want: map[string]any{},
		},
		{
			in:   `[`,
			want: []any{},
		},
		{
			in:   `a { b = 1`,
			want: map[string]any{"a": map[string]any{"b": int64(1)}},
		},
		{
			in:   `key [ 1, 2`,
			want: map[string]any{"key": []any{int64(1), int64(2)}},
		},
	}
	for _, pt := range pts {
		node, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.want, gomap.FromIR(node)); diff != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", pt.in, diff)
		}
	}
}

func TestParseUnfinishedKey(t *testing.T) {
	for _, in := range []string{
		`{ "var"`,
		`a =`,
		`a`,
		`a { b = 1 } c :`,
	} {
		_, err := Parse([]byte(in))
		if err == nil {
			t.Errorf("%q: no error", in)
			continue
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got %v, want %v", in, err, ErrSyntax)
		}
		if !strings.HasSuffix(err.Error(), "unfinished key") {
			t.Errorf("%q: message %q does not end with \"unfinished key\"", in, err.Error())
		}
	}
}

func TestParseSuffixes(t *testing.T) {
	node, err := Parse([]byte(`cache = 64mb interval = 30min`), NumberSuffixes())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"cache":    int64(67108864),
		"interval": float64(1800),
	}
	if diff := cmp.Diff(want, gomap.FromIR(node)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMaxDepth(t *testing.T) {
	_, err := Parse([]byte(`a { b { c { d = 1 } } }`), MaxDepth(2))
	if !errors.Is(err, ErrDepth) {
		t.Errorf("got %v, want %v", err, ErrDepth)
	}
	if _, err := Parse([]byte(`a { b { c { d = 1 } } }`), MaxDepth(8)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
