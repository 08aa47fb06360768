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

package arithmetic

// Every binary operation follows the same three-case dispatch:
// two native operands use ordinary Go arithmetic, two decimal operands use
// the decimal engine directly, and a mixed pair promotes the native operand
// before using the decimal engine. A mixed pair never reaches a primitive.
//
// Native pairs mixing Int and Float evaluate in floating point, the way a
// host language evaluates a mixed integer/float expression.

// bothInt returns the operands when both are native integers.
func bothInt(a, b Number) (Int, Int, bool) {
	x, ok := a.(Int)
	if !ok {
		return 0, 0, false
	}
	y, ok := b.(Int)
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}

// bothFloat returns the operands as floats when both are native
// and at least one of them is a Float.
func bothFloat(a, b Number) (Float, Float, bool) {
	switch x := a.(type) {
	case Int:
		if y, ok := b.(Float); ok {
			return Float(x), y, true
		}
	case Float:
		switch y := b.(type) {
		case Int:
			return x, Float(y), true
		case Float:
			return x, y, true
		}
	}
	return 0, 0, false
}

// Promote returns the operand in the decimal representation:
// a Decimal unchanged, an Int converted exactly, and a Float converted
// through its shortest round-tripping decimal string.
func Promote(n Number) Decimal {
	return n.ToDecimal()
}

// Negate returns the operand with its sign flipped,
// in the operand's own representation.
func Negate(n Number) Number {
	switch x := n.(type) {
	case Int:
		return -x
	case Float:
		return -x
	}
	return Promote(n).Neg()
}

// Add returns the sum of the two operands.
// The result is native when both operands are native,
// and a Decimal as soon as either operand is a Decimal.
func Add(a, b Number) Number {
	if x, y, ok := bothInt(a, b); ok {
		return x + y
	}
	if x, y, ok := bothFloat(a, b); ok {
		return x + y
	}
	return Promote(a).Add(Promote(b))
}

// Subtract returns the difference of the two operands.
func Subtract(a, b Number) Number {
	if x, y, ok := bothInt(a, b); ok {
		return x - y
	}
	if x, y, ok := bothFloat(a, b); ok {
		return x - y
	}
	return Promote(a).Sub(Promote(b))
}

// Multiply returns the product of the two operands.
func Multiply(a, b Number) Number {
	if x, y, ok := bothInt(a, b); ok {
		return x * y
	}
	if x, y, ok := bothFloat(a, b); ok {
		return x * y
	}
	return Promote(a).Mul(Promote(b))
}

// Divide returns the quotient of the two operands.
// A zero-valued decimal divisor panics with DivisionByZeroError;
// native pairs keep host division semantics.
func Divide(a, b Number) Number {
	if x, y, ok := bothInt(a, b); ok {
		return x / y
	}
	if x, y, ok := bothFloat(a, b); ok {
		return x / y
	}
	return Promote(a).Div(Promote(b))
}

// Equal reports whether the two operands are numerically equal.
// On the decimal side this is value-equality: representation scale is
// ignored, so 1.50 equals 1.5.
func Equal(a, b Number) bool {
	if x, y, ok := bothInt(a, b); ok {
		return x == y
	}
	if x, y, ok := bothFloat(a, b); ok {
		return x == y
	}
	return Promote(a).Equal(Promote(b))
}

// NotEqual is the negation of Equal.
func NotEqual(a, b Number) bool {
	return !Equal(a, b)
}

// Greater reports whether a is greater than b,
// derived from the three-way comparison on the decimal side.
func Greater(a, b Number) bool {
	if x, y, ok := bothInt(a, b); ok {
		return x > y
	}
	if x, y, ok := bothFloat(a, b); ok {
		return x > y
	}
	return Promote(a).Cmp(Promote(b)) > 0
}

// GreaterEqual is the composition of Equal and Greater.
func GreaterEqual(a, b Number) bool {
	return Equal(a, b) || Greater(a, b)
}

// Less reports whether a is less than b,
// derived from the three-way comparison on the decimal side.
func Less(a, b Number) bool {
	if x, y, ok := bothInt(a, b); ok {
		return x < y
	}
	if x, y, ok := bothFloat(a, b); ok {
		return x < y
	}
	return Promote(a).Cmp(Promote(b)) < 0
}

// LessEqual is the composition of Equal and Less.
func LessEqual(a, b Number) bool {
	return Equal(a, b) || Less(a, b)
}
