/*
 * Decimal Arithmetic - transparent arithmetic over native and decimal numbers
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package parser

import (
	"fmt"
)

type TokenType uint8

const (
	TokenEOF TokenType = iota
	// TokenNumber is a native integer or floating-point literal
	TokenNumber
	// TokenDecimal is a number literal with the `d` suffix, e.g. `1.50d`
	TokenDecimal
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenEqualEqual
	TokenNotEqual
	TokenLess
	TokenLessEqual
	TokenGreater
	TokenGreaterEqual
	TokenParenOpen
	TokenParenClose
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenNumber:
		return "number"
	case TokenDecimal:
		return "decimal literal"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenStar:
		return "'*'"
	case TokenSlash:
		return "'/'"
	case TokenEqualEqual:
		return "'=='"
	case TokenNotEqual:
		return "'!='"
	case TokenLess:
		return "'<'"
	case TokenLessEqual:
		return "'<='"
	case TokenGreater:
		return "'>'"
	case TokenGreaterEqual:
		return "'>='"
	case TokenParenOpen:
		return "'('"
	case TokenParenClose:
		return "')'"
	}
	return "unknown token"
}

type Token struct {
	Type TokenType
	Pos  int
	// Value is the literal text for number and decimal tokens,
	// without the `d` suffix
	Value string
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (Token, error) {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}

	start := l.pos

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: start}, nil
	}

	c := l.input[l.pos]
	l.pos++

	switch c {
	case '+':
		return Token{Type: TokenPlus, Pos: start}, nil
	case '-':
		return Token{Type: TokenMinus, Pos: start}, nil
	case '*':
		return Token{Type: TokenStar, Pos: start}, nil
	case '/':
		return Token{Type: TokenSlash, Pos: start}, nil
	case '(':
		return Token{Type: TokenParenOpen, Pos: start}, nil
	case ')':
		return Token{Type: TokenParenClose, Pos: start}, nil
	case '=':
		if l.accept('=') {
			return Token{Type: TokenEqualEqual, Pos: start}, nil
		}
		return Token{}, SyntaxError{
			Pos:     start,
			Message: "expected `==`",
		}
	case '!':
		if l.accept('=') {
			return Token{Type: TokenNotEqual, Pos: start}, nil
		}
		return Token{}, SyntaxError{
			Pos:     start,
			Message: "expected `!=`",
		}
	case '<':
		if l.accept('=') {
			return Token{Type: TokenLessEqual, Pos: start}, nil
		}
		return Token{Type: TokenLess, Pos: start}, nil
	case '>':
		if l.accept('=') {
			return Token{Type: TokenGreaterEqual, Pos: start}, nil
		}
		return Token{Type: TokenGreater, Pos: start}, nil
	}

	if isDigit(c) {
		return l.scanNumber(start)
	}

	return Token{}, SyntaxError{
		Pos:     start,
		Message: fmt.Sprintf("unexpected character %q", c),
	}
}

// scanNumber scans the remainder of a number literal whose first digit is
// already consumed: digits, an optional fraction, an optional exponent,
// and an optional `d` suffix marking a decimal literal.
func (l *lexer) scanNumber(start int) (Token, error) {
	l.acceptDigits()

	if l.pos < len(l.input) &&
		l.input[l.pos] == '.' &&
		l.pos+1 < len(l.input) &&
		isDigit(l.input[l.pos+1]) {

		l.pos++
		l.acceptDigits()
	}

	if l.accept('e') || l.accept('E') {
		if !l.accept('+') {
			l.accept('-')
		}
		if !l.acceptDigits() {
			return Token{}, SyntaxError{
				Pos:     l.pos,
				Message: "missing digits in exponent",
			}
		}
	}

	end := l.pos

	tokenType := TokenNumber
	if l.accept('d') {
		tokenType = TokenDecimal
	}

	return Token{
		Type:  tokenType,
		Pos:   start,
		Value: l.input[start:end],
	}, nil
}

func (l *lexer) accept(c byte) bool {
	if l.pos < len(l.input) && l.input[l.pos] == c {
		l.pos++
		return true
	}
	return false
}

func (l *lexer) acceptDigits() bool {
	accepted := false
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
		accepted = true
	}
	return accepted
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
