/*
File    : lox-go/scanner/scanner_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lox-go/token"
)

func typesOf(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	toks, errs := New(`(){},.-+;*`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, []token.Type{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.EOF,
	}, typesOf(toks))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	toks, errs := New(`! != = == < <= > >=`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, []token.Type{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
		token.EOF,
	}, typesOf(toks))
}

func TestScanTokens_CommentIsIgnored(t *testing.T) {
	toks, errs := New("1 + 2 // this is a comment\n3").ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, []token.Type{token.Number, token.Plus, token.Number, token.Number, token.EOF}, typesOf(toks))
}

func TestScanTokens_StringLiteral(t *testing.T) {
	toks, errs := New(`"hello world"`).ScanTokens()
	assert.Empty(t, errs)
	assert.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Lexeme)
}

func TestScanTokens_MultilineStringTracksLine(t *testing.T) {
	toks, errs := New("\"a\nb\" 1").ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line) // the trailing "1" is on line 2
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, errs := New(`"unterminated`).ScanTokens()
	assert.Len(t, errs, 1)
}

func TestScanTokens_Numbers(t *testing.T) {
	toks, errs := New(`123 3.14 4.`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, "123", toks[0].Lexeme)
	assert.Equal(t, "3.14", toks[1].Lexeme)
	// trailing '.' with no fractional digit is NOT consumed as part of the number.
	assert.Equal(t, "4", toks[2].Lexeme)
	assert.Equal(t, token.Dot, toks[3].Type)
}

func TestScanTokens_IdentifiersAndKeywords(t *testing.T) {
	toks, errs := New(`var x = fun nil true false and or`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, []token.Type{
		token.Var, token.Identifier, token.Equal, token.Fun, token.Nil,
		token.True, token.False, token.And, token.Or, token.EOF,
	}, typesOf(toks))
}

func TestScanTokens_EOFLineCountsNewlines(t *testing.T) {
	toks, _ := New("1\n2\n3").ScanTokens()
	last := toks[len(toks)-1]
	assert.Equal(t, token.EOF, last.Type)
	assert.Equal(t, 3, last.Line)
}

func TestScanTokens_UnrecognizedCharacter(t *testing.T) {
	_, errs := New("$").ScanTokens()
	assert.Len(t, errs, 1)
}
