package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
	}{
		{"c", ConfigFormat},
		{"config", ConfigFormat},
		{"ucl", ConfigFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"jc", JSONCompactFormat},
		{"compact", JSONCompactFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
	} {
		got, err := ParseFormat(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want %v", err, ErrBadFormat)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s, want %s", g, f)
		}
	}
}
