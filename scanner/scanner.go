/*
File    : lox-go/scanner/scanner.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scanner turns source text into a token sequence. It is a
// single-pass state machine over a byte buffer with two cursors (start,
// current), matching spec.md §4.1's algorithm description.
package scanner

import (
	"fmt"

	"github.com/akashmaji946/lox-go/loxerr"
	"github.com/akashmaji946/lox-go/token"
)

// Scanner walks source text one lexeme at a time. Each call into
// scanToken sets start = current and consumes exactly one lexeme (or
// none, for whitespace/comments).
//
// Fields:
//   - src: the full source text
//   - start: index of the first byte of the lexeme currently being scanned
//   - current: index of the next unconsumed byte
//   - line: current line number (1-indexed)
type Scanner struct {
	src     string
	start   int
	current int
	line    int

	tokens []token.Token
	errs   []error
}

// New creates a Scanner over the given source text.
func New(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// ScanTokens tokenizes the entire source, returning the token sequence
// (always ending in exactly one EOF token) and any scan errors
// encountered along the way. A non-nil error slice does not mean token
// production stopped early — the scanner keeps going past a bad lexeme
// the same way the parser keeps going past a bad declaration.
func (s *Scanner) ScanTokens() ([]token.Token, []error) {
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", s.line))
	return s.tokens, s.errs
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.src)
}

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

// match consumes the current character and reports true if it equals
// want; otherwise it leaves the cursor untouched and reports false. Used
// for the one-or-two-character operators.
func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.current] != want {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) addToken(typ token.Type) {
	lexeme := s.src[s.start:s.current]
	s.tokens = append(s.tokens, token.New(typ, lexeme, s.line))
}

func (s *Scanner) addTokenLexeme(typ token.Type, lexeme string) {
	s.tokens = append(s.tokens, token.New(typ, lexeme, s.line))
}

func (s *Scanner) errorf(format string, args ...any) {
	s.errs = append(s.errs, &loxerr.ScanError{Line: s.line, Message: fmt.Sprintf(format, args...)})
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)
	case '!':
		if s.match('=') {
			s.addToken(token.BangEqual)
		} else {
			s.addToken(token.Bang)
		}
	case '=':
		if s.match('=') {
			s.addToken(token.EqualEqual)
		} else {
			s.addToken(token.Equal)
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LessEqual)
		} else {
			s.addToken(token.Less)
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GreaterEqual)
		} else {
			s.addToken(token.Greater)
		}
	case '/':
		if s.match('/') {
			// Line comment: consume to end of line, no token emitted.
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.Slash)
		}
	case ' ', '\r', '\t':
		// whitespace, ignored
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.errorf("unexpected character '%c'", c)
		}
	}
}

func (s *Scanner) scanString() {
	startLine := s.line
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		s.errorf("unterminated string")
		return
	}
	// Consume the closing quote.
	s.advance()
	// Strip the surrounding quotes from the lexeme payload. The token
	// carries the line the string started on, not the line it ended on.
	value := s.src[s.start+1 : s.current-1]
	s.tokens = append(s.tokens, token.New(token.String, value, startLine))
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	// A '.' only starts a fractional part when followed by a digit; a
	// trailing '.' with nothing after it is left unconsumed (spec.md §4.1).
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	s.addToken(token.Number)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.src[s.start:s.current]
	if kw, ok := token.Keywords[text]; ok {
		s.addToken(kw)
	} else {
		s.addToken(token.Identifier)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
