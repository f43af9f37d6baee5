package token

// Tokenize scans src into tokens, appending to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	tokenizer := NewTokenizer(src)
	n := len(src)
	i := 0
	for i < n {
		tok, consumed, err := tokenizer.TokenizeOne(i)
		if err != nil {
			return nil, err
		}
		if tok != nil {
			dst = append(dst, *tok)
		}
		i += consumed
	}
	return dst, nil
}
