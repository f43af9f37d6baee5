// Package token provides lexical scanning of UCL configuration text.
//
// Tokenize turns a byte buffer into a flat sequence of tokens: structural
// punctuation ({ } [ ]), key-value separators (: and =, interchangeable),
// entry terminators (, and ;, interchangeable), quoted strings and bare
// literals. Whitespace, '#' line comments and '/* */' block comments
// (which nest) are consumed and never surface as tokens.
//
// The scanner itself is deliberately forgiving: it reports errors only
// for sequences that cannot be represented as tokens at all (an
// unterminated quoted string, invalid UTF-8). Everything else is left
// for the parser to judge with grammar context in hand.
package token
