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
	"fmt"
)

// MalformedLiteralError

// MalformedLiteralError is the failure of constructing a Decimal from an
// unparsable textual literal. It wraps the decimal engine's parse error
// unchanged.
type MalformedLiteralError struct {
	Literal string
	Err     error
}

var _ error = MalformedLiteralError{}

func (e MalformedLiteralError) Error() string {
	return fmt.Sprintf("malformed decimal literal: `%s`", e.Literal)
}

func (e MalformedLiteralError) Unwrap() error {
	return e.Err
}

// DivisionByZeroError

// DivisionByZeroError is raised by panic when the divisor of a decimal
// division is zero-valued. Native-only divisions keep host semantics instead:
// integer division by zero is the Go runtime panic, and floating-point
// division by zero follows IEEE 754.
type DivisionByZeroError struct{}

var _ error = DivisionByZeroError{}

func (e DivisionByZeroError) Error() string {
	return "division by zero"
}
