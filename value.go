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

// Package arithmetic provides arithmetic and comparison operations over a mix
// of native Go numbers and arbitrary-precision decimal numbers, without the
// caller tracking which operand is which representation.
//
// Operands are native when both sides of an operation are Int or Float values,
// in which case the operation is ordinary Go arithmetic. As soon as one side
// is a Decimal, the native side is promoted and the operation is carried out
// exactly by the decimal engine.
package arithmetic

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Value is anything an arithmetic expression can produce:
// a number or, for comparisons, a boolean.
type Value interface {
	fmt.Stringer
	isValue()
}

// Number is implemented by the operand kinds Int, Float, and Decimal.
type Number interface {
	Value
	isNumber()

	// ToDecimal returns the operand in the decimal representation.
	// It is the single promotion primitive every mixed-representation
	// operation builds on: a Decimal returns itself unchanged.
	ToDecimal() Decimal
}

// Int is a native machine integer operand.
type Int int64

var _ Value = Int(0)
var _ Number = Int(0)

func NewInt(v int64) Int {
	return Int(v)
}

func (Int) isValue()  {}
func (Int) isNumber() {}

// ToDecimal converts the integer exactly.
func (v Int) ToDecimal() Decimal {
	return Decimal{dec: decimal.NewFromInt(int64(v))}
}

func (v Int) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Float is a native floating-point operand.
type Float float64

var _ Value = Float(0)
var _ Number = Float(0)

func NewFloat(v float64) Float {
	return Float(v)
}

func (Float) isValue()  {}
func (Float) isNumber() {}

// ToDecimal converts the float through its shortest decimal string
// representation that round-trips, so no binary-fraction artifacts
// leak into the decimal value: Float(0.1) becomes exactly 0.1.
// The operand must be finite.
func (v Float) ToDecimal() Decimal {
	return Decimal{dec: decimal.NewFromFloat(float64(v))}
}

func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// Bool is the result of a comparison at the Value level.
type Bool bool

var _ Value = Bool(false)

func (Bool) isValue() {}

func (v Bool) String() string {
	return strconv.FormatBool(bool(v))
}
