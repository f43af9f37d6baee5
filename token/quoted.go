package token

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether v can stand as a bare key in config output.
// Bare keys are runs of alphanumerics plus '_', '-', '/' and '.'.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '/' || r == '.':
		default:
			return true
		}
	}
	return false
}

// Quote renders v as a double-quoted string with JSON-style escapes.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

func Unquote(v string) (string, error) {
	b := []byte(v)
	n, err := bsEscQuoted(b)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return QuotedToString(b), nil
}

// bsEscQuoted scans a quoted string starting at d[0] (the opening quote)
// and returns the number of bytes up to and including the closing quote.
func bsEscQuoted(d []byte) (int, error) {
	if len(d) == 0 {
		return -1, ErrUnterminated
	}
	quoteChar := rune(d[0])
	escaped := false
	start := 1
	n := len(d)
	for start < n {
		r, sz := utf8.DecodeRune(d[start:])
		start += sz
		switch r {
		case utf8.RuneError:
			return 0, ErrBadUTF8
		case quoteChar:
			if !escaped {
				return start, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if start+4 > n {
					return start, ErrUnterminated
				}
				if !allHex(d[start : start+4]) {
					return start, ErrBadUnicode
				}
			}
			escaped = false
		case '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		case '\\':
			escaped = !escaped
		case '\n':
			return start, ErrUnicodeControl
		default:
			if escaped {
				return start, ErrBadEscape
			}
			escaped = false
		}
	}
	return 0, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString unescapes the contents of a quoted token, including the
// surrounding quotes.
func QuotedToString(d []byte) string {
	qc := rune(d[0])
	b := &strings.Builder{}
	i := 1
	esc := false
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case '\\':
			if esc {
				b.WriteByte('\\')
			}
			esc = !esc
		case qc:
			if !esc {
				if i != len(d) {
					panic(fmt.Sprintf("internal string: trailing %q", string(d[i:])))
				}
				return b.String()
			}
			b.WriteRune(qc)
			esc = false
		default:
			if !esc {
				b.WriteRune(r)
				continue
			}
			esc = false
			switch r {
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case '/':
				b.WriteByte('/')
			case 'u':
				if i+4 <= len(d) && allHex(d[i:i+4]) {
					var cp rune
					for _, c := range d[i : i+4] {
						cp <<= 4
						switch {
						case c >= '0' && c <= '9':
							cp |= rune(c - '0')
						case c >= 'a' && c <= 'f':
							cp |= rune(c-'a') + 10
						case c >= 'A' && c <= 'F':
							cp |= rune(c-'A') + 10
						}
					}
					b.WriteRune(cp)
					i += 4
				}
			default:
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
