package token

// Tokenizer holds scanning state for one document.
type Tokenizer struct {
	posDoc *PosDoc
	doc    []byte
}

// NewTokenizer creates a Tokenizer over doc.
func NewTokenizer(doc []byte) *Tokenizer {
	posDoc := &PosDoc{d: doc}
	return &Tokenizer{
		doc:    doc,
		posDoc: posDoc,
	}
}

// PosDoc exposes the position index built up during scanning, for error
// reporting by consumers.
func (t *Tokenizer) PosDoc() *PosDoc {
	return t.posDoc
}

// TokenizeOne scans a single token (or a stretch of whitespace/comment)
// starting at pos. It returns the token, the number of bytes consumed,
// and any error. A nil token with nonzero consumed means the bytes were
// transparent (whitespace or comment).
func (t *Tokenizer) TokenizeOne(pos int) (*Token, int, error) {
	d := t.doc
	n := len(d)
	c := d[pos]

	if c == '\n' {
		t.posDoc.nl(pos)
		return nil, 1, nil
	}

	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return nil, 1, nil

	case '{':
		return t.tok(TLCurl, pos, 1), 1, nil
	case '}':
		return t.tok(TRCurl, pos, 1), 1, nil
	case '[':
		return t.tok(TLSquare, pos, 1), 1, nil
	case ']':
		return t.tok(TRSquare, pos, 1), 1, nil

	case ':', '=':
		return t.tok(TKVSep, pos, 1), 1, nil
	case ',', ';':
		return t.tok(TTerm, pos, 1), 1, nil

	case '"':
		j, err := bsEscQuoted(d[pos:])
		if err != nil {
			return nil, 0, NewTokenizeErr(err, t.posDoc.Pos(pos))
		}
		return t.tok(TString, pos, j), j, nil

	case '#':
		end := pos
		for end < n && d[end] != '\n' {
			end++
		}
		return nil, end - pos, nil

	case '/':
		if pos+1 < n && d[pos+1] == '*' {
			consumed, err := t.skipBlockComment(pos)
			if err != nil {
				return nil, 0, err
			}
			return nil, consumed, nil
		}
		fallthrough

	default:
		lit, err := getSingleLiteral(d[pos:])
		if err != nil {
			return nil, 0, NewTokenizeErr(err, t.posDoc.Pos(pos))
		}
		return t.tok(TLiteral, pos, len(lit)), len(lit), nil
	}
}

func (t *Tokenizer) tok(tt TokenType, pos, sz int) *Token {
	return &Token{
		Type:  tt,
		Pos:   t.posDoc.Pos(pos),
		Bytes: t.doc[pos : pos+sz],
	}
}

// skipBlockComment consumes a '/* ... */' comment starting at pos.
// Comments nest, matching the reference grammar.
func (t *Tokenizer) skipBlockComment(pos int) (int, error) {
	d := t.doc
	n := len(d)
	i := pos + 2
	depth := 1
	for i < n {
		switch {
		case d[i] == '\n':
			t.posDoc.nl(i)
			i++
		case d[i] == '*' && i+1 < n && d[i+1] == '/':
			depth--
			i += 2
			if depth == 0 {
				return i - pos, nil
			}
		case d[i] == '/' && i+1 < n && d[i+1] == '*':
			depth++
			i += 2
		default:
			i++
		}
	}
	return 0, NewTokenizeErr(ErrComment, t.posDoc.Pos(pos))
}
