package facts

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind distinguishes the two kinds of syntax: symbols and quotes.
type TokenKind uint8

// Token kinds.
const (
	SymbolToken TokenKind = iota
	QuoteToken
)

func (k TokenKind) String() string {
	switch k {
	case SymbolToken:
		return "symbol"
	case QuoteToken:
		return "quote"
	}
	return "invalid"
}

// Token is a single unit of syntax scanned from source text.
//
// A quote token's Text spans from its opening '[' through the matching ']'
// inclusive, so that calling it pushes its body rather than evaluating it.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int // byte offset of Text within the source
}

// Body returns a quote token's text with exactly one layer of brackets
// stripped and surrounding whitespace trimmed; symbol text is returned as-is.
func (tok Token) Body() string {
	if tok.Kind == QuoteToken {
		if body, ok := quoteBody(tok.Text); ok {
			return body
		}
	}
	return tok.Text
}

func (tok Token) String() string { return tok.Kind.String() + " " + tok.Text }

// Tokenizer scans source text into tokens, left to right without
// backtracking. Its only state is the source and a cursor, so each Tokenizer
// is good for a single pass.
type Tokenizer struct {
	src string
	pos int
}

// NewTokenizer creates a tokenizer over src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

// Next returns the next token, io.EOF when the source is exhausted, or a
// ParseError if a quote is left unterminated.
func (tz *Tokenizer) Next() (Token, error) {
	// skip leading space
	for tz.pos < len(tz.src) {
		r, n := utf8.DecodeRuneInString(tz.src[tz.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		tz.pos += n
	}
	if tz.pos >= len(tz.src) {
		return Token{}, io.EOF
	}

	start := tz.pos
	if tz.src[start] == '[' {
		depth := 0
		for tz.pos < len(tz.src) {
			c := tz.src[tz.pos]
			tz.pos++
			switch c {
			case '[':
				depth++
			case ']':
				if depth--; depth == 0 {
					return Token{QuoteToken, tz.src[start:tz.pos], start}, nil
				}
			}
		}
		return Token{}, ParseError{Pos: start}
	}

	for tz.pos < len(tz.src) {
		r, n := utf8.DecodeRuneInString(tz.src[tz.pos:])
		if unicode.IsSpace(r) {
			break
		}
		tz.pos += n
	}
	return Token{SymbolToken, tz.src[start:tz.pos], start}, nil
}

// Tokenize scans all of src, returning every token up to the first error.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	tz := NewTokenizer(src)
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			return toks, nil
		} else if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

// quoteBody strips one layer of brackets from a full quote literal, trimming
// any whitespace inside them.
func quoteBody(text string) (string, bool) {
	if len(text) < 2 || text[0] != '[' || text[len(text)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(text[1 : len(text)-1]), true
}
