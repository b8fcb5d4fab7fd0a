// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strings"
	"unicode"
)

// Literal returns a parser that matches the bytes of expected exactly.
// An empty expected string always matches without consuming input.
func Literal(expected string) Parser[struct{}] {
	return func(in Input) (Input, struct{}, bool) {
		if !strings.HasPrefix(in.Rest(), expected) {
			return in, struct{}{}, false
		}
		return in.Advance(len(expected)), struct{}{}, true
	}
}

// AnyChar returns a parser that matches a single character (not a single byte).
// It fails only at the end of the input.
func AnyChar() Parser[rune] {
	return func(in Input) (Input, rune, bool) {
		c, rest, ok := in.Next()
		if !ok {
			return in, 0, false
		}
		return rest, c, true
	}
}

// Satisfy returns a parser that matches a single character
// for which test reports true.
func Satisfy(test func(rune) bool) Parser[rune] {
	return Pred(AnyChar(), test)
}

// Digit returns a parser that matches a single decimal digit character.
func Digit() Parser[rune] {
	return Satisfy(unicode.IsDigit)
}

// Whitespace returns a parser that matches a single white space character.
func Whitespace() Parser[rune] {
	return Satisfy(unicode.IsSpace)
}
