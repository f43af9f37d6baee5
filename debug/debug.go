// Package debug holds process-wide debug toggles read from the
// environment at startup.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("UCL_DEBUG_TOKENS")
	d.Parse = boolEnv("UCL_DEBUG_PARSE")
	d.Encode = boolEnv("UCL_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
