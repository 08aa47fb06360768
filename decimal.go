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

import (
	"github.com/shopspring/decimal"
)

// Decimal is an immutable arbitrary-precision decimal operand.
//
// The arbitrary-precision arithmetic itself is provided by
// github.com/shopspring/decimal; this type only carries the value through the
// dispatch layer. In particular the engine's division precision
// (decimal.DivisionPrecision) applies to Div unaltered.
type Decimal struct {
	dec decimal.Decimal
}

var _ Value = Decimal{}
var _ Number = Decimal{}

// NewDecimalFromString parses a decimal number from its textual
// representation, e.g. "1.5" or "-0.25".
// An unparsable literal results in a MalformedLiteralError.
func NewDecimalFromString(literal string) (Decimal, error) {
	dec, err := decimal.NewFromString(literal)
	if err != nil {
		return Decimal{}, MalformedLiteralError{
			Literal: literal,
			Err:     err,
		}
	}
	return Decimal{dec: dec}, nil
}

// MustNewDecimalFromString is like NewDecimalFromString,
// but panics if the literal is malformed.
func MustNewDecimalFromString(literal string) Decimal {
	res, err := NewDecimalFromString(literal)
	if err != nil {
		panic(err)
	}
	return res
}

func (Decimal) isValue()  {}
func (Decimal) isNumber() {}

// ToDecimal returns the value unchanged.
func (v Decimal) ToDecimal() Decimal {
	return v
}

// Add returns v + other.
func (v Decimal) Add(other Decimal) Decimal {
	return Decimal{dec: v.dec.Add(other.dec)}
}

// Sub returns v - other.
func (v Decimal) Sub(other Decimal) Decimal {
	return Decimal{dec: v.dec.Sub(other.dec)}
}

// Mul returns v * other.
func (v Decimal) Mul(other Decimal) Decimal {
	return Decimal{dec: v.dec.Mul(other.dec)}
}

// Div returns v / other, with the engine's configured division precision.
// A zero-valued divisor panics with DivisionByZeroError.
func (v Decimal) Div(other Decimal) Decimal {
	if other.dec.IsZero() {
		panic(DivisionByZeroError{})
	}
	return Decimal{dec: v.dec.Div(other.dec)}
}

// Neg returns -v.
func (v Decimal) Neg() Decimal {
	return Decimal{dec: v.dec.Neg()}
}

// Cmp is the three-way comparison all ordering operators derive from:
// it returns -1 if v is less than other, 0 if the values are equal,
// and +1 if v is greater than other.
func (v Decimal) Cmp(other Decimal) int {
	return v.dec.Cmp(other.dec)
}

// Equal reports whether the two values are numerically equal.
// Representation scale is ignored: 1.50 equals 1.5.
func (v Decimal) Equal(other Decimal) bool {
	return v.dec.Equal(other.dec)
}

// IsZero reports whether the value is zero, at any scale.
func (v Decimal) IsZero() bool {
	return v.dec.IsZero()
}

// Round rounds the value to the given number of fractional digits,
// half away from zero.
func (v Decimal) Round(places int32) Decimal {
	return Decimal{dec: v.dec.Round(places)}
}

func (v Decimal) String() string {
	return v.dec.String()
}
