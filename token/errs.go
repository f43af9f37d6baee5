package token

import "errors"

var (
	ErrUnterminated   = errors.New("unterminated")
	ErrBadUTF8        = errors.New("bad utf8")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode escape")
	ErrUnicodeControl = errors.New("control character in string")
	ErrComment        = errors.New("comment nesting is invalid")
)
