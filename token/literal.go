package token

import (
	"unicode/utf8"
)

// getSingleLiteral scans a bare literal from the start of d. The literal
// runs until whitespace, structural punctuation, a quote, or the start of
// a comment.
func getSingleLiteral(d []byte) ([]byte, error) {
	i := 0
	n := len(d)
	for i < n {
		c := d[i]
		if literalEnd(c) {
			break
		}
		if c == '/' && i+1 < n && d[i+1] == '*' {
			break
		}
		if c < utf8.RuneSelf {
			i++
			continue
		}
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError {
			return nil, ErrBadUTF8
		}
		i += sz
	}
	if i == 0 {
		return nil, ErrUnterminated
	}
	return d[:i], nil
}

func literalEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	case '{', '}', '[', ']', ':', '=', ',', ';', '"', '#':
		return true
	default:
		return false
	}
}
