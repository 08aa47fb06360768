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
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {

	t.Parallel()

	t.Run("native", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Int(5), Add(Int(2), Int(3)))
		assert.Equal(t, Float(5.5), Add(Int(2), Float(3.5)))
		assert.Equal(t, Float(5.5), Add(Float(3.5), Int(2)))
		assert.Equal(t, Float(6.0), Add(Float(2.5), Float(3.5)))
	})

	t.Run("decimal", func(t *testing.T) {
		t.Parallel()

		res := Add(
			MustNewDecimalFromString("1.1"),
			MustNewDecimalFromString("2.2"),
		)
		require.IsType(t, Decimal{}, res)
		assert.True(t, res.(Decimal).Equal(MustNewDecimalFromString("3.3")))
	})

	t.Run("mixed", func(t *testing.T) {
		t.Parallel()

		// promote(3) + 2.33 = 5.33
		expected := MustNewDecimalFromString("5.33")

		res := Add(Int(3), MustNewDecimalFromString("2.33"))
		require.IsType(t, Decimal{}, res)
		assert.True(t, res.(Decimal).Equal(expected))

		res = Add(MustNewDecimalFromString("2.33"), Int(3))
		require.IsType(t, Decimal{}, res)
		assert.True(t, res.(Decimal).Equal(expected))
	})
}

func TestSubtract(t *testing.T) {

	t.Parallel()

	t.Run("native", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Int(-1), Subtract(Int(2), Int(3)))
		assert.Equal(t, Float(-1.5), Subtract(Int(2), Float(3.5)))
		assert.Equal(t, Float(1.5), Subtract(Float(3.5), Int(2)))
	})

	t.Run("mixed", func(t *testing.T) {
		t.Parallel()

		res := Subtract(MustNewDecimalFromString("2.33"), Int(3))
		require.IsType(t, Decimal{}, res)
		assert.True(t, res.(Decimal).Equal(MustNewDecimalFromString("-0.67")))
	})
}

func TestMultiply(t *testing.T) {

	t.Parallel()

	t.Run("native", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Int(6), Multiply(Int(2), Int(3)))
		assert.Equal(t, Float(7.0), Multiply(Int(2), Float(3.5)))
	})

	t.Run("decimal is exact", func(t *testing.T) {
		t.Parallel()

		res := Multiply(
			MustNewDecimalFromString("98.01"),
			MustNewDecimalFromString("10.01"),
		)
		require.IsType(t, Decimal{}, res)
		assert.True(t, res.(Decimal).Equal(MustNewDecimalFromString("981.0801")))
	})

	t.Run("mixed, rounded", func(t *testing.T) {
		t.Parallel()

		// 34.78 * 1.23, rounded to two fractional digits
		res := Multiply(MustNewDecimalFromString("34.78"), Float(1.23))
		require.IsType(t, Decimal{}, res)
		assert.True(t,
			res.(Decimal).Round(2).Equal(MustNewDecimalFromString("42.78")),
		)
	})
}

func TestDivide(t *testing.T) {

	t.Parallel()

	t.Run("native", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Int(2), Divide(Int(7), Int(3)))
		assert.Equal(t, Float(3.5), Divide(Int(7), Float(2)))
	})

	t.Run("native float by zero keeps IEEE semantics", func(t *testing.T) {
		t.Parallel()

		res := Divide(Float(1), Float(0))
		require.IsType(t, Float(0), res)
		assert.True(t, math.IsInf(float64(res.(Float)), 1))
	})

	t.Run("native integer by zero keeps host semantics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			Divide(Int(1), Int(0))
		})
	})

	t.Run("decimal", func(t *testing.T) {
		t.Parallel()

		res := Divide(
			MustNewDecimalFromString("1.5"),
			MustNewDecimalFromString("0.5"),
		)
		require.IsType(t, Decimal{}, res)
		assert.True(t, res.(Decimal).Equal(MustNewDecimalFromString("3")))
	})

	t.Run("decimal by zero", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t,
			DivisionByZeroError{},
			func() {
				Divide(Int(1), MustNewDecimalFromString("0.00"))
			},
		)

		assert.PanicsWithValue(t,
			DivisionByZeroError{},
			func() {
				Divide(
					MustNewDecimalFromString("1.5"),
					MustNewDecimalFromString("0"),
				)
			},
		)
	})
}

func TestEqual(t *testing.T) {

	t.Parallel()

	t.Run("native", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Equal(Int(2), Int(2)))
		assert.False(t, Equal(Int(2), Int(3)))
		assert.True(t, Equal(Int(2), Float(2)))
		assert.True(t, Equal(Float(2.5), Float(2.5)))
	})

	t.Run("decimal ignores scale", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Equal(
			MustNewDecimalFromString("1.50"),
			MustNewDecimalFromString("1.5"),
		))
	})

	t.Run("mixed", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Equal(Int(2), MustNewDecimalFromString("2.0")))
		assert.True(t, Equal(Float(2.33), MustNewDecimalFromString("2.33")))
		assert.False(t, Equal(Int(2), MustNewDecimalFromString("2.1")))
	})
}

func TestOrdering(t *testing.T) {

	t.Parallel()

	type testCase struct {
		a, b         Number
		greater      bool
		greaterEqual bool
		less         bool
		lessEqual    bool
	}

	testCases := map[string]testCase{
		"native less": {
			a:    Int(1),
			b:    Int(2),
			less: true, lessEqual: true,
		},
		"native equal": {
			a:            Float(2.5),
			b:            Float(2.5),
			greaterEqual: true, lessEqual: true,
		},
		"native mixed greater": {
			a:       Float(2.5),
			b:       Int(2),
			greater: true, greaterEqual: true,
		},
		"decimal greater": {
			a:       MustNewDecimalFromString("2.33"),
			b:       MustNewDecimalFromString("2.3"),
			greater: true, greaterEqual: true,
		},
		"decimal equal at different scale": {
			a:            MustNewDecimalFromString("1.50"),
			b:            MustNewDecimalFromString("1.5"),
			greaterEqual: true, lessEqual: true,
		},
		"mixed less": {
			a:    Int(2),
			b:    MustNewDecimalFromString("2.1"),
			less: true, lessEqual: true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.greater, Greater(testCase.a, testCase.b))
			assert.Equal(t, testCase.greaterEqual, GreaterEqual(testCase.a, testCase.b))
			assert.Equal(t, testCase.less, Less(testCase.a, testCase.b))
			assert.Equal(t, testCase.lessEqual, LessEqual(testCase.a, testCase.b))
		})
	}
}

func TestNegate(t *testing.T) {

	t.Parallel()

	assert.Equal(t, Int(-2), Negate(Int(2)))
	assert.Equal(t, Float(2.5), Negate(Float(-2.5)))

	res := Negate(MustNewDecimalFromString("2.33"))
	require.IsType(t, Decimal{}, res)
	assert.True(t, res.(Decimal).Equal(MustNewDecimalFromString("-2.33")))
}

func TestNativeArithmeticMatchesHost(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("integer operations are host operations", prop.ForAll(
		func(x int64, y int64) bool {
			return Add(Int(x), Int(y)) == Int(x+y) &&
				Subtract(Int(x), Int(y)) == Int(x-y) &&
				Multiply(Int(x), Int(y)) == Int(x*y) &&
				Equal(Int(x), Int(y)) == (x == y) &&
				Greater(Int(x), Int(y)) == (x > y) &&
				Less(Int(x), Int(y)) == (x < y)
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("float operations are host operations", prop.ForAll(
		func(x float64, y float64) bool {
			return Add(Float(x), Float(y)) == Float(x+y) &&
				Subtract(Float(x), Float(y)) == Float(x-y) &&
				Multiply(Float(x), Float(y)) == Float(x*y) &&
				Equal(Float(x), Float(y)) == (x == y)
		},
		gen.Float64(),
		gen.Float64(),
	))

	properties.TestingRun(t)
}

func TestPromotionIsCommutative(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("mixed addition promotes either side", prop.ForAll(
		func(n int64, m int64) bool {
			d := Int(m).ToDecimal()

			left := Add(Int(n), d).(Decimal)
			right := Add(d, Int(n)).(Decimal)
			promoted := Promote(Int(n)).Add(d)

			return left.Equal(right) && left.Equal(promoted)
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("mixed multiplication promotes either side", prop.ForAll(
		func(f float64, m int64) bool {
			d := Int(m).ToDecimal()

			left := Multiply(Float(f), d).(Decimal)
			right := Multiply(d, Float(f)).(Decimal)
			promoted := Promote(Float(f)).Mul(d)

			return left.Equal(right) && left.Equal(promoted)
		},
		gen.Float64Range(-1e9, 1e9),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestComparisonsAreComposed(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	operandGen := gen.OneGenOf(
		gen.Int64().Map(func(v int64) Number {
			return Int(v)
		}),
		gen.Float64Range(-1e9, 1e9).Map(func(v float64) Number {
			return Float(v)
		}),
		gen.Int64().Map(func(v int64) Number {
			return Int(v).ToDecimal()
		}),
	)

	properties.Property("equal and not-equal are complementary", prop.ForAll(
		func(a Number, b Number) bool {
			return Equal(a, b) != NotEqual(a, b)
		},
		operandGen,
		operandGen,
	))

	properties.Property("ordering agrees with the three-way comparison", prop.ForAll(
		func(a Number, b Number) bool {
			cmp := Promote(a).Cmp(Promote(b))
			return Greater(a, b) == (cmp > 0) &&
				Less(a, b) == (cmp < 0) &&
				GreaterEqual(a, b) == (cmp >= 0) &&
				LessEqual(a, b) == (cmp <= 0)
		},
		operandGen,
		operandGen,
	))

	properties.TestingRun(t)
}
