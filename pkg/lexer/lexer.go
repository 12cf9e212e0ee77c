// Package lexer tokenizes mython source text (spec §4.1), grounded
// directly in original_source/lexer.cpp's pull-based Lexer class: one
// token is materialized at a time from an underlying stream, rather than a
// batch scan or a goroutine/channel state machine.
package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/OlgaLukovenkova/mython/pkg/token"
)

// LexerError reports a malformed source text: an odd leading-space count,
// an unterminated string, or an unrecognized operator starter (spec §7
// lex-time errors).
type LexerError struct {
	Message string
}

func (e *LexerError) Error() string { return e.Message }

func newLexerError(format string, args ...any) *LexerError {
	return &LexerError{Message: fmt.Sprintf(format, args...)}
}

// Lexer pulls tokens one at a time from an io.Reader. It tracks the
// indentation level itself rather than handing that off to the parser,
// matching the original's str_indent_/spaces_in_str_begin bookkeeping.
type Lexer struct {
	r       *bufio.Reader
	current token.Token

	indentLevel int
	lineIndent  int
}

// New builds a Lexer over r and reads its first token, mirroring the
// original Lexer constructor (ReadSpaces then NextToken).
func New(r io.Reader) (*Lexer, error) {
	l := &Lexer{r: bufio.NewReader(r), current: token.Of(token.Newline)}
	if err := l.readSpaces(); err != nil {
		return nil, err
	}
	if _, err := l.NextToken(); err != nil {
		return nil, err
	}
	return l, nil
}

// Current returns the most recently produced token without advancing.
func (l *Lexer) Current() token.Token { return l.current }

// Expect reports a LexerError unless the current token has kind.
func (l *Lexer) Expect(kind token.Kind) error {
	if l.current.Kind != kind {
		return newLexerError("expected %s, got %s", kind, l.current.Kind)
	}
	return nil
}

// ExpectValue reports a LexerError unless the current token equals want
// exactly (kind and payload), replacing the original's Expect<T>(value)
// template — Go's Token is one flat struct, not a tagged union of types,
// so there is no type parameter to instantiate, only a value to compare.
func (l *Lexer) ExpectValue(want token.Token) error {
	if !l.current.Equal(want) {
		return newLexerError("expected %s, got %s", want, l.current)
	}
	return nil
}

// ExpectNext advances and then applies Expect.
func (l *Lexer) ExpectNext(kind token.Kind) (token.Token, error) {
	if _, err := l.NextToken(); err != nil {
		return token.Token{}, err
	}
	if err := l.Expect(kind); err != nil {
		return token.Token{}, err
	}
	return l.current, nil
}

// ExpectNextValue advances and then applies ExpectValue.
func (l *Lexer) ExpectNextValue(want token.Token) (token.Token, error) {
	if _, err := l.NextToken(); err != nil {
		return token.Token{}, err
	}
	if err := l.ExpectValue(want); err != nil {
		return token.Token{}, err
	}
	return l.current, nil
}

// NextToken advances the lexer and returns the new current token (spec
// §4.1). Its structure follows original_source/lexer.cpp's NextToken
// almost line for line, with one deliberate fix: Indent/Dedent is driven
// purely by the line's leading-space delta, never gated on the previous
// token's kind (spec §9's Open Question on the three-kind check that
// always evaluated true).
func (l *Lexer) NextToken() (token.Token, error) {
	if b, ok := l.peek(); ok && b == '#' {
		if err := l.skipComment(); err != nil {
			return token.Token{}, err
		}
	}

	if b, ok := l.peek(); ok && b == '\n' {
		l.readByte()
		if err := l.readSpaces(); err != nil {
			return token.Token{}, err
		}
		if l.current.Kind != token.Newline {
			l.current = token.Of(token.Newline)
			return l.current, nil
		}
		return l.NextToken()
	}

	if l.lineIndent > l.indentLevel {
		l.indentLevel += 2
		l.current = token.Of(token.Indent)
		return l.current, nil
	}
	if l.lineIndent < l.indentLevel {
		l.indentLevel -= 2
		l.current = token.Of(token.Dedent)
		return l.current, nil
	}

	if _, ok := l.peek(); !ok {
		if l.current.Kind != token.Newline && l.current.Kind != token.Eof && l.current.Kind != token.Dedent {
			l.current = token.Of(token.Newline)
			return l.current, nil
		}
		l.current = token.Of(token.Eof)
		return l.current, nil
	}

	b, _ := l.peek()
	switch {
	case isDigit(b):
		tok, err := l.readNumber()
		if err != nil {
			return token.Token{}, err
		}
		l.current = tok
		return l.current, nil
	case b == '\'' || b == '"':
		l.readByte()
		tok, err := l.readString(b)
		if err != nil {
			return token.Token{}, err
		}
		l.current = tok
		return l.current, nil
	case b == '_' || isAlpha(b):
		l.current = l.readIdentifier()
		return l.current, nil
	case strings.IndexByte("!=<>", b) >= 0:
		tok, err := l.readComparison()
		if err != nil {
			return token.Token{}, err
		}
		l.current = tok
		return l.current, nil
	case strings.IndexByte("+-*/:().,", b) >= 0:
		l.readByte()
		l.current = token.NewChar(b)
		return l.current, nil
	case b == ' ':
		for {
			next, ok := l.peek()
			if !ok || next != ' ' {
				break
			}
			l.readByte()
		}
		return l.NextToken()
	}

	return token.Token{}, newLexerError("unexpected character %q", b)
}

func (l *Lexer) skipComment() error {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return nil
		}
		l.readByte()
	}
}

func (l *Lexer) readNumber() (token.Token, error) {
	var value int64
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.readByte()
		value = value*10 + int64(b-'0')
	}
	return token.NewNumber(value), nil
}

func (l *Lexer) readString(quote byte) (token.Token, error) {
	var buf strings.Builder
	for {
		b, ok := l.peek()
		if !ok || b == '\n' || b == '\r' {
			return token.Token{}, newLexerError("string parsing error")
		}
		if b == '\\' {
			l.readByte()
			esc, ok := l.peek()
			if !ok {
				return token.Token{}, newLexerError("string parsing error")
			}
			l.readByte()
			switch esc {
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			case '\'':
				buf.WriteByte('\'')
			case '"':
				buf.WriteByte('"')
			}
			continue
		}
		if b == quote {
			l.readByte()
			return token.NewString(buf.String()), nil
		}
		l.readByte()
		buf.WriteByte(b)
	}
}

func (l *Lexer) readIdentifier() token.Token {
	var buf strings.Builder
	for {
		b, ok := l.peek()
		if !ok || !(isAlnum(b) || b == '_') {
			break
		}
		l.readByte()
		buf.WriteByte(b)
	}
	word := buf.String()
	if kind, ok := token.Keyword(word); ok {
		return token.Of(kind)
	}
	return token.NewId(word)
}

func (l *Lexer) readComparison() (token.Token, error) {
	first, _ := l.peek()
	l.readByte()
	op := string(first)
	if next, ok := l.peek(); ok && next == '=' {
		l.readByte()
		op += "="
	}
	switch op {
	case "==":
		return token.Of(token.Eq), nil
	case "!=":
		return token.Of(token.NotEq), nil
	case "<=":
		return token.Of(token.LessOrEq), nil
	case ">=":
		return token.Of(token.GreaterOrEq), nil
	case "=", "<", ">":
		return token.NewChar(op[0]), nil
	}
	return token.Token{}, newLexerError("operator parsing error")
}

// readSpaces counts the leading spaces of the line about to be lexed (spec
// §4.1 rule on Indent/Dedent step = 2); an odd count is a LexerError.
func (l *Lexer) readSpaces() error {
	count := 0
	for {
		b, ok := l.peek()
		if !ok || b != ' ' {
			break
		}
		l.readByte()
		count++
	}
	if count%2 != 0 {
		return newLexerError("indent parsing error")
	}
	l.lineIndent = count
	return nil
}

func (l *Lexer) peek() (byte, bool) {
	b, err := l.r.Peek(1)
	if err != nil {
		return 0, false
	}
	return b[0], true
}

func (l *Lexer) readByte() {
	l.r.ReadByte()
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }
