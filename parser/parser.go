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

// Package parser parses infix arithmetic expressions over native number
// literals and decimal literals (marked with a `d` suffix) into expressions
// that evaluate through the arithmetic package.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	arithmetic "github.com/DerTim1/decimal-arithmetic"
)

// SyntaxError

type SyntaxError struct {
	Pos     int
	Message string
}

var _ error = SyntaxError{}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Message)
}

const lowestBindingPower = 0

const (
	bindingPowerComparison     = 60
	bindingPowerAddition       = 110
	bindingPowerMultiplication = 120
	bindingPowerUnary          = 130
)

type binaryOperator struct {
	operation        Operation
	leftBindingPower int
	// comparisons do not associate: `a < b < c` is rejected
	nonAssociative bool
}

var binaryOperators = map[TokenType]binaryOperator{
	TokenPlus: {
		operation:        OperationPlus,
		leftBindingPower: bindingPowerAddition,
	},
	TokenMinus: {
		operation:        OperationMinus,
		leftBindingPower: bindingPowerAddition,
	},
	TokenStar: {
		operation:        OperationMul,
		leftBindingPower: bindingPowerMultiplication,
	},
	TokenSlash: {
		operation:        OperationDiv,
		leftBindingPower: bindingPowerMultiplication,
	},
	TokenEqualEqual: {
		operation:        OperationEqual,
		leftBindingPower: bindingPowerComparison,
		nonAssociative:   true,
	},
	TokenNotEqual: {
		operation:        OperationNotEqual,
		leftBindingPower: bindingPowerComparison,
		nonAssociative:   true,
	},
	TokenLess: {
		operation:        OperationLess,
		leftBindingPower: bindingPowerComparison,
		nonAssociative:   true,
	},
	TokenLessEqual: {
		operation:        OperationLessEqual,
		leftBindingPower: bindingPowerComparison,
		nonAssociative:   true,
	},
	TokenGreater: {
		operation:        OperationGreater,
		leftBindingPower: bindingPowerComparison,
		nonAssociative:   true,
	},
	TokenGreaterEqual: {
		operation:        OperationGreaterEqual,
		leftBindingPower: bindingPowerComparison,
		nonAssociative:   true,
	},
}

type parser struct {
	lexer   *lexer
	current Token
}

// Parse parses a single expression and requires it to span the whole input.
func Parse(input string) (Expression, error) {
	p := &parser{
		lexer: &lexer{input: input},
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	expression, err := p.parseExpression(lowestBindingPower)
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenEOF {
		return nil, SyntaxError{
			Pos:     p.current.Pos,
			Message: fmt.Sprintf("unexpected %s", p.current.Type),
		}
	}

	return expression, nil
}

func (p *parser) advance() error {
	token, err := p.lexer.next()
	if err != nil {
		return err
	}
	p.current = token
	return nil
}

func (p *parser) parseExpression(rightBindingPower int) (Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		operator, ok := binaryOperators[p.current.Type]
		if !ok || operator.leftBindingPower <= rightBindingPower {
			break
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseExpression(operator.leftBindingPower)
		if err != nil {
			return nil, err
		}

		left = &BinaryExpression{
			Operation: operator.operation,
			Left:      left,
			Right:     right,
		}

		if operator.nonAssociative {
			break
		}
	}

	return left, nil
}

func (p *parser) parseUnary() (Expression, error) {
	if p.current.Type == TokenMinus {
		if err := p.advance(); err != nil {
			return nil, err
		}

		expression, err := p.parseExpression(bindingPowerUnary)
		if err != nil {
			return nil, err
		}

		return &UnaryExpression{
			Operation:  OperationMinus,
			Expression: expression,
		}, nil
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expression, error) {
	token := p.current

	switch token.Type {
	case TokenNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := parseNativeNumber(token)
		if err != nil {
			return nil, err
		}
		return &NumberExpression{Value: value}, nil

	case TokenDecimal:
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := arithmetic.NewDecimalFromString(token.Value)
		if err != nil {
			// lexically valid literals the engine cannot parse
			// surface the engine's failure unchanged
			return nil, err
		}
		return &NumberExpression{Value: value}, nil

	case TokenParenOpen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expression, err := p.parseExpression(lowestBindingPower)
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenParenClose {
			return nil, SyntaxError{
				Pos:     p.current.Pos,
				Message: fmt.Sprintf("expected ')', got %s", p.current.Type),
			}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return expression, nil
	}

	return nil, SyntaxError{
		Pos:     token.Pos,
		Message: fmt.Sprintf("unexpected %s", token.Type),
	}
}

// parseNativeNumber converts a number literal to a native operand:
// an Int unless the literal has a fraction or an exponent.
func parseNativeNumber(token Token) (arithmetic.Number, error) {
	if !strings.ContainsAny(token.Value, ".eE") {
		value, err := strconv.ParseInt(token.Value, 10, 64)
		if err != nil {
			return nil, SyntaxError{
				Pos:     token.Pos,
				Message: fmt.Sprintf("invalid integer literal `%s`", token.Value),
			}
		}
		return arithmetic.Int(value), nil
	}

	value, err := strconv.ParseFloat(token.Value, 64)
	if err != nil {
		return nil, SyntaxError{
			Pos:     token.Pos,
			Message: fmt.Sprintf("invalid number literal `%s`", token.Value),
		}
	}
	return arithmetic.Float(value), nil
}
