package facts

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Tokenizer(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		toks []Token
		err  error
	}{
		{name: "empty", src: ""},
		{name: "blank", src: " \t\n  "},
		{
			name: "symbols",
			src:  "  1 2\tadd\n'x ",
			toks: []Token{
				{SymbolToken, "1", 2},
				{SymbolToken, "2", 4},
				{SymbolToken, "add", 6},
				{SymbolToken, "'x", 10},
			},
		},
		{
			name: "balanced quote",
			src:  "[ a [ b ] c ]",
			toks: []Token{{QuoteToken, "[ a [ b ] c ]", 0}},
		},
		{
			name: "quote then symbol",
			src:  "6 [6] 6",
			toks: []Token{
				{SymbolToken, "6", 0},
				{QuoteToken, "[6]", 2},
				{SymbolToken, "6", 6},
			},
		},
		{
			name: "quote ends at matching bracket",
			src:  "[a]b [[]]]",
			toks: []Token{
				{QuoteToken, "[a]", 0},
				{SymbolToken, "b", 3},
				{QuoteToken, "[[]]", 5},
				{SymbolToken, "]", 9},
			},
		},
		{
			name: "brackets inside symbols",
			src:  "a[b c]",
			toks: []Token{
				{SymbolToken, "a[b", 0},
				{SymbolToken, "c]", 4},
			},
		},
		{
			name: "quote spans lines",
			src:  "[ 1\n  2 ]\n3",
			toks: []Token{
				{QuoteToken, "[ 1\n  2 ]", 0},
				{SymbolToken, "3", 10},
			},
		},
		{
			name: "unicode",
			src:  "ø 'héllo",
			toks: []Token{
				{SymbolToken, "ø", 0},
				{SymbolToken, "'héllo", 3},
			},
		},
		{
			name: "unterminated quote",
			src:  "[ a [ b ]",
			err:  ParseError{Pos: 0},
		},
		{
			name: "unterminated after tokens",
			src:  "x y [[ ] ",
			toks: []Token{
				{SymbolToken, "x", 0},
				{SymbolToken, "y", 2},
			},
			err: ParseError{Pos: 4},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.src)
			assert.Equal(t, tc.toks, toks, "expected tokens")
			assert.Equal(t, tc.err, err, "expected error")
		})
	}
}

func Test_Tokenizer_exhausted(t *testing.T) {
	tz := NewTokenizer("a [")
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Text)

	_, err = tz.Next()
	assert.Equal(t, ParseError{Pos: 2}, err)
	assert.True(t, err.(ParseError).Incomplete(), "expected an incomplete parse")

	for i := 0; i < 2; i++ {
		_, err = tz.Next()
		assert.Equal(t, io.EOF, err, "expected a spent tokenizer to stay at EOF")
	}
}

func Test_Token_Body(t *testing.T) {
	toks, err := Tokenize("[ a [ b ] c ] sym []")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "a [ b ] c", toks[0].Body())
	assert.Equal(t, "sym", toks[1].Body())
	assert.Equal(t, "", toks[2].Body())
	assert.Equal(t, "quote [ a [ b ] c ]", toks[0].String())
}
