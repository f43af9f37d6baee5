package scalar

import (
	"strconv"
	"strings"

	"github.com/openucl/go-ucl/ir"
)

// Suffix multipliers. Size suffixes scale the number in place: the SI
// forms (k, m, g) by powers of 1000, the byte forms (kb, mb, gb) by
// powers of 1024. Time suffixes normalize to seconds and always yield a
// float.

var sizeMults = map[string]int64{
	"k":  1000,
	"m":  1000 * 1000,
	"g":  1000 * 1000 * 1000,
	"kb": 1024,
	"mb": 1024 * 1024,
	"gb": 1024 * 1024 * 1024,
}

var timeMults = map[string]float64{
	"ms":  0.001,
	"s":   1,
	"min": 60,
	"h":   60 * 60,
	"d":   60 * 60 * 24,
	"w":   60 * 60 * 24 * 7,
	"y":   60 * 60 * 24 * 365,
}

func convertSuffixed(v string) *ir.Node {
	p, isFloat := numberPrefix(v)
	if p == 0 || p == len(v) {
		return nil
	}
	num, suffix := v[:p], strings.ToLower(v[p:])

	if sec, ok := timeMults[suffix]; ok {
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return nil
		}
		return ir.FromFloat(f * sec)
	}
	mult, ok := sizeMults[suffix]
	if !ok {
		return nil
	}
	if isFloat {
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return nil
		}
		return ir.FromFloat(f * float64(mult))
	}
	i, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return nil
	}
	return ir.FromInt(i * mult)
}

// numberPrefix returns the length of the leading decimal number in v
// and whether it has a fractional part or exponent. Hex literals take
// no suffixes.
func numberPrefix(v string) (int, bool) {
	if p := floatLen(v); p > 0 {
		return p, true
	}
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
		return 0, false
	}
	return i, false
}
