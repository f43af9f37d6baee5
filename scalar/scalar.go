package scalar

import (
	"strconv"
	"strings"

	"github.com/openucl/go-ucl/ir"
)

type options struct {
	suffixes bool
}

type Option func(*options)

// WithSuffixes enables the numeric suffix multipliers (k/m/g, kb/mb/gb,
// and the time suffixes ms/s/min/h/d/w/y). Off by default.
func WithSuffixes() Option {
	return func(o *options) { o.suffixes = true }
}

type classifier struct {
	matches func(v string) bool
	convert func(v string) *ir.Node
}

var chain = []classifier{
	{matchesBool, convertBool},
	{matchesInt, convertInt},
	{matchesFloat, convertFloat},
}

// Classify converts a bare literal to a typed node. It never fails: a
// literal that matches no classifier is a string.
func Classify(v string, opts ...Option) *ir.Node {
	o := &options{}
	for _, f := range opts {
		f(o)
	}
	for _, c := range chain {
		if !c.matches(v) {
			continue
		}
		if node := c.convert(v); node != nil {
			return node
		}
	}
	if o.suffixes {
		if node := convertSuffixed(v); node != nil {
			return node
		}
	}
	return ir.FromString(v)
}

// Boolean aliases, case-insensitive.

func matchesBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "yes", "on", "false", "no", "off":
		return true
	default:
		return false
	}
}

func convertBool(v string) *ir.Node {
	switch strings.ToLower(v) {
	case "true", "yes", "on":
		return ir.FromBool(true)
	default:
		return ir.FromBool(false)
	}
}

// Integers: optional '-', then a pure decimal run or a 0x-prefixed pure
// hex run. Any charset mismatch (trailing garbage, empty hex digits)
// rejects the whole literal.

func matchesInt(v string) bool {
	s := strings.TrimPrefix(v, "-")
	if hexDigits, ok := strings.CutPrefix(s, "0x"); ok {
		return allHexDigits(hexDigits)
	}
	if hexDigits, ok := strings.CutPrefix(s, "0X"); ok {
		return allHexDigits(hexDigits)
	}
	return allDecDigits(s)
}

func convertInt(v string) *ir.Node {
	neg := false
	s := v
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		neg = true
		s = rest
	}
	base := 10
	if rest, ok := cutHexPrefix(s); ok {
		base = 16
		s = rest
	}
	u, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return nil
	}
	if neg {
		u = -u
	}
	return ir.FromInt(u)
}

func cutHexPrefix(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return rest, true
	}
	return strings.CutPrefix(s, "0X")
}

func allDecDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Floats: a decimal run with a fractional part and/or an exponent.

func matchesFloat(v string) bool {
	return floatLen(v) == len(v)
}

// floatLen returns the length of the float prefix of v, or 0 when v has
// no digits or carries neither a dot nor an exponent.
func floatLen(v string) int {
	i := 0
	n := len(v)
	if i < n && v[i] == '-' {
		i++
	}
	start := i
	for i < n && v[i] >= '0' && v[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	fractional := false
	if i < n && v[i] == '.' {
		j := i + 1
		for j < n && v[j] >= '0' && v[j] <= '9' {
			j++
		}
		if j == i+1 {
			return 0
		}
		fractional = true
		i = j
	}
	exp := false
	if i < n && (v[i] == 'e' || v[i] == 'E') {
		j := i + 1
		if j < n && (v[j] == '+' || v[j] == '-') {
			j++
		}
		digStart := j
		for j < n && v[j] >= '0' && v[j] <= '9' {
			j++
		}
		if j == digStart {
			return 0
		}
		exp = true
		i = j
	}
	if !fractional && !exp {
		return 0
	}
	return i
}

func convertFloat(v string) *ir.Node {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return ir.FromFloat(f)
}
