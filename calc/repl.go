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

// Package calc is an interactive calculator over the arithmetic package:
// each input line is one infix expression over native number literals and
// decimal literals (`d` suffix).
package calc

import (
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	arithmetic "github.com/DerTim1/decimal-arithmetic"
	"github.com/DerTim1/decimal-arithmetic/parser"
)

// Evaluate parses and evaluates a single expression.
// Evaluation panics, e.g. a division by zero, are recovered into errors,
// so callers get every failure through the error return.
func Evaluate(input string) (value arithmetic.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			err, ok = r.(error)
			if !ok {
				panic(r)
			}
			value = nil
		}
	}()

	expression, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}

	return expression.Evaluate(), nil
}

func RunREPL() {
	printWelcome()

	executor := func(line string) {
		line = strings.TrimSpace(line)

		if line == "" {
			return
		}

		if strings.HasPrefix(line, ".") {
			handleCommand(line)
			return
		}

		value, err := Evaluate(line)
		if err != nil {
			fmt.Println(colorizeError(err.Error()))
			return
		}

		fmt.Println(formatValue(value))
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if word == "" {
			return nil
		}

		return prompt.FilterHasPrefix(commandSuggestions, word, true)
	}

	prompt.New(
		executor,
		suggest,
		prompt.OptionPrefix("> "),
	).Run()
}

var commandSuggestions = []prompt.Suggest{
	{Text: ".help", Description: "Print the help message"},
	{Text: ".exit", Description: "Exit the calculator"},
}

const replHelpMessage = `
Enter an expression to evaluate it, e.g. 1 + 2 * 3

Number literals with a 'd' suffix are arbitrary-precision decimals:

  0.1 + 0.2      evaluates in native floating point
  0.1d + 0.2d    evaluates exactly, to 0.3d

Commands are prefixed with a dot. Valid commands are:

.exit     Exit the calculator
.help     Print this help message

Press ^C to abort the current expression, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

func handleCommand(command string) {
	switch command {
	case ".exit":
		os.Exit(0)
	case ".help":
		fmt.Println(replHelpMessage)
	default:
		fmt.Println(colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
}

func printWelcome() {
	fmt.Printf("Welcome to the decimal arithmetic calculator!\n%s\n\n", replAssistanceMessage)
}
