// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

// Package callscan finds function-call-like tokens such as "mul(2,3)"
// embedded in unstructured text and evaluates them.
//
// The grammar is built from the combinators in the parser package.
// A scan tries the grammar at every position of the text,
// skipping one character wherever it does not match,
// so calls are found anywhere in the input
// rather than requiring the whole input to be well-formed.
package callscan

import (
	"strconv"
	"strings"

	"github.com/runreveal/callscan/parser"
)

// Operation is a function call found in scanned text.
type Operation struct {
	// Name is the function name, like "mul".
	Name string
	// Operands are the integer arguments in order of appearance.
	Operands []int
	// Result is the value of the call as computed by the name's [Reducer].
	Result int
	// Span is the location of the call in the scanned text.
	Span parser.Span
}

// String formats the operation in canonical call syntax, like "mul(2,3)".
func (op Operation) String() string {
	sb := new(strings.Builder)
	sb.WriteString(op.Name)
	sb.WriteString("(")
	for i, n := range op.Operands {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteString(")")
	return sb.String()
}

// A Reducer computes the result of a call from its operands.
type Reducer func(operands []int) int

// Product multiplies the operands together.
// The product of no operands is zero.
func Product(operands []int) int {
	if len(operands) == 0 {
		return 0
	}
	result := operands[0]
	for _, n := range operands[1:] {
		result *= n
	}
	return result
}

// Sum adds the operands together.
func Sum(operands []int) int {
	result := 0
	for _, n := range operands {
		result += n
	}
	return result
}

// None ignores the operands and returns zero.
func None(operands []int) int {
	return 0
}

// DefaultReducers maps the function names known without configuration
// to their reducers.
// Names not present in the map evaluate to zero.
var DefaultReducers = map[string]Reducer{
	"mul": Product,
}
