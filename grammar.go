// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package callscan

import (
	"strconv"

	"github.com/runreveal/callscan/parser"
)

// DefaultMaxDigits is the maximum number of digits in an operand
// unless configured otherwise.
const DefaultMaxDigits = 3

// numeral is an operand's digit string and its conversion result.
type numeral struct {
	value int
	err   error
}

// Number returns a parser that matches a decimal integer
// of one to maxDigits digits.
// Digit strings that do not convert to an int,
// such as non-ASCII digits or values that overflow,
// fail like any other mismatch.
func Number(maxDigits int) parser.Parser[int] {
	digits := parser.Map(parser.Repeat(parser.Digit(), 1, max(maxDigits, 1)), func(r []rune) numeral {
		n, err := strconv.Atoi(string(r))
		return numeral{value: n, err: err}
	})
	valid := parser.Pred(digits, func(n numeral) bool { return n.err == nil })
	return parser.Map(valid, func(n numeral) int { return n.value })
}

// Delimiter returns a parser for the separator between operands:
// optional white space, an optional comma, and optional white space.
// It never fails.
func Delimiter() parser.Parser[struct{}] {
	spaces := parser.ZeroOrMore(parser.Whitespace())
	comma := parser.Optional(parser.Literal(","))
	return parser.Map(parser.Left(parser.Left(spaces, comma), spaces), func([]rune) struct{} {
		return struct{}{}
	})
}

// Operands returns a parser for a possibly empty list of delimited numbers.
func Operands(maxDigits int) parser.Parser[[]int] {
	return parser.ZeroOrMore(parser.Left(Number(maxDigits), Delimiter()))
}

// Function returns a parser for a call to name with up to three-digit operands,
// like "mul(2,3)".
// The result is computed by the name's entry in [DefaultReducers].
func Function(name string) parser.Parser[Operation] {
	return FunctionWith(name, Operands(DefaultMaxDigits), DefaultReducers[name])
}

// FunctionWith returns a parser for name, an opening parenthesis,
// the operands, and a closing parenthesis.
// The result is computed by reduce, or is zero if reduce is nil.
func FunctionWith(name string, operands parser.Parser[[]int], reduce Reducer) parser.Parser[Operation] {
	open := parser.Pair(parser.Literal(name), parser.Literal("("))
	args := parser.Left(parser.Right(open, operands), parser.Literal(")"))
	return parser.Map(args, func(values []int) Operation {
		op := Operation{
			Name:     name,
			Operands: values,
		}
		if reduce != nil {
			op.Result = reduce(values)
		}
		return op
	})
}
