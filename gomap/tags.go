package gomap

import "strings"

// fieldName resolves the emitted key for a struct field from its `ucl`
// tag. The second return is false when the field is skipped.
func fieldName(name, tag string) (string, bool) {
	if tag == "" {
		return name, true
	}
	base, _, _ := strings.Cut(tag, ",")
	switch base {
	case "":
		return name, true
	case "-":
		return "", false
	default:
		return base, true
	}
}
