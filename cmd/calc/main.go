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

// calc evaluates infix expressions over native and decimal numbers.
// With no arguments it starts an interactive session;
// otherwise each argument is evaluated as one expression.
package main

import (
	"fmt"
	"os"

	"github.com/DerTim1/decimal-arithmetic/calc"
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		calc.RunREPL()
		return
	}

	for _, arg := range args {
		value, err := calc.Evaluate(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(value)
	}
}
