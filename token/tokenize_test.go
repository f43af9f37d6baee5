package token

import (
	"errors"
	"testing"
)

type tokTest struct {
	in   string
	want []TokenType
}

func TestTokenizeOK(t *testing.T) {
	tts := []tokTest{
		{
			in:   `a = 1;`,
			want: []TokenType{TLiteral, TKVSep, TLiteral, TTerm},
		},
		{
			in:   `a: 1,`,
			want: []TokenType{TLiteral, TKVSep, TLiteral, TTerm},
		},
		{
			in:   `key { x = on }`,
			want: []TokenType{TLiteral, TLCurl, TLiteral, TKVSep, TLiteral, TRCurl},
		},
		{
			in:   `[1, 2]`,
			want: []TokenType{TLSquare, TLiteral, TTerm, TLiteral, TRSquare},
		},
		{
			in:   `"a b" = "c\n"`,
			want: []TokenType{TString, TKVSep, TString},
		},
		{
			in:   "# comment\na = 1",
			want: []TokenType{TLiteral, TKVSep, TLiteral},
		},
		{
			in:   "a = /* x /* nested */ y */ 1",
			want: []TokenType{TLiteral, TKVSep, TLiteral},
		},
		{
			in:   "",
			want: []TokenType{},
		},
		{
			in:   "   \t\n  ",
			want: []TokenType{},
		},
		{
			in:   `path = /etc/hosts`,
			want: []TokenType{TLiteral, TKVSep, TLiteral},
		},
	}
	for _, tt := range tts {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.want) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.want))
			continue
		}
		for i := range toks {
			if toks[i].Type != tt.want[i] {
				t.Errorf("%q: token %d is %d, want %d", tt.in, i, toks[i].Type, tt.want[i])
			}
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	tts := []struct {
		in string
		e  error
	}{
		{in: `"abc`, e: ErrUnterminated},
		{in: "\"a\nb\"", e: ErrUnicodeControl},
		{in: `"a\x"`, e: ErrBadEscape},
		{in: `"a\uzzzz"`, e: ErrBadUnicode},
		{in: "a = /* open", e: ErrComment},
	}
	for _, tt := range tts {
		_, err := Tokenize(nil, []byte(tt.in))
		if err == nil {
			t.Errorf("%q: no error", tt.in)
			continue
		}
		if !errors.Is(err, tt.e) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.e)
		}
	}
}

func TestTokenizeLines(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a = 1\nbb = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 6 {
		t.Fatalf("got %d tokens", len(toks))
	}
	line, col := toks[3].Pos.LineCol()
	if line != 1 || col != 0 {
		t.Errorf("got line %d col %d, want 1 0", line, col)
	}
}

func TestTokenString(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`"a\tb"`))
	if err != nil {
		t.Fatal(err)
	}
	if got := toks[0].String(); got != "a\tb" {
		t.Errorf("got %q", got)
	}
}
