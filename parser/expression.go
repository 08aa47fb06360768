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

	arithmetic "github.com/DerTim1/decimal-arithmetic"
)

type Operation uint8

const (
	OperationPlus Operation = iota
	OperationMinus
	OperationMul
	OperationDiv
	OperationEqual
	OperationNotEqual
	OperationLess
	OperationLessEqual
	OperationGreater
	OperationGreaterEqual
)

func (op Operation) Symbol() string {
	switch op {
	case OperationPlus:
		return "+"
	case OperationMinus:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationEqual:
		return "=="
	case OperationNotEqual:
		return "!="
	case OperationLess:
		return "<"
	case OperationLessEqual:
		return "<="
	case OperationGreater:
		return ">"
	case OperationGreaterEqual:
		return ">="
	}
	return "?"
}

// Expression is a parsed arithmetic expression.
//
// Evaluate dispatches through the arithmetic package, so evaluation failures
// surface the same way they do there: as panics with typed error values,
// e.g. arithmetic.DivisionByZeroError.
type Expression interface {
	Evaluate() arithmetic.Value
	isExpression()
}

// NumberExpression is a number literal.
type NumberExpression struct {
	Value arithmetic.Number
}

var _ Expression = &NumberExpression{}

func (*NumberExpression) isExpression() {}

func (e *NumberExpression) Evaluate() arithmetic.Value {
	return e.Value
}

// UnaryExpression is the application of a prefix operator.
type UnaryExpression struct {
	Operation  Operation
	Expression Expression
}

var _ Expression = &UnaryExpression{}

func (*UnaryExpression) isExpression() {}

func (e *UnaryExpression) Evaluate() arithmetic.Value {
	operand := numberOperand(e.Expression.Evaluate(), e.Operation)
	return arithmetic.Negate(operand)
}

// BinaryExpression is the application of an infix operator.
type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
}

var _ Expression = &BinaryExpression{}

func (*BinaryExpression) isExpression() {}

func (e *BinaryExpression) Evaluate() arithmetic.Value {
	left := numberOperand(e.Left.Evaluate(), e.Operation)
	right := numberOperand(e.Right.Evaluate(), e.Operation)

	switch e.Operation {
	case OperationPlus:
		return arithmetic.Add(left, right)
	case OperationMinus:
		return arithmetic.Subtract(left, right)
	case OperationMul:
		return arithmetic.Multiply(left, right)
	case OperationDiv:
		return arithmetic.Divide(left, right)
	case OperationEqual:
		return arithmetic.Bool(arithmetic.Equal(left, right))
	case OperationNotEqual:
		return arithmetic.Bool(arithmetic.NotEqual(left, right))
	case OperationLess:
		return arithmetic.Bool(arithmetic.Less(left, right))
	case OperationLessEqual:
		return arithmetic.Bool(arithmetic.LessEqual(left, right))
	case OperationGreater:
		return arithmetic.Bool(arithmetic.Greater(left, right))
	case OperationGreaterEqual:
		return arithmetic.Bool(arithmetic.GreaterEqual(left, right))
	}

	panic(fmt.Errorf("unknown operation: %d", e.Operation))
}

func numberOperand(value arithmetic.Value, operation Operation) arithmetic.Number {
	number, ok := value.(arithmetic.Number)
	if !ok {
		panic(InvalidOperandsError{Operation: operation})
	}
	return number
}

// InvalidOperandsError

// InvalidOperandsError is raised by panic when an operand of an operator is
// not a number, e.g. the boolean result of a comparison.
type InvalidOperandsError struct {
	Operation Operation
}

var _ error = InvalidOperandsError{}

func (e InvalidOperandsError) Error() string {
	return fmt.Sprintf("invalid operands for operator `%s`", e.Operation.Symbol())
}
