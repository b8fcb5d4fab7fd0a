// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package parser

// A Match is a value produced by a parser at some position of a source text.
type Match[T any] struct {
	// Span is the location of the consumed bytes.
	Span Span
	// Value is the parser's result.
	Value T
}

// FindAll applies p at every position of in where it matches,
// returning the matches in source order.
// After a match, scanning resumes immediately after the consumed bytes.
// Where p does not match, scanning resumes one character later.
// A match that consumes nothing is reported once
// and scanning then moves one character forward.
func FindAll[T any](p Parser[T], in Input) []Match[T] {
	var matches []Match[T]
	for {
		rest, value, ok := p(in)
		if ok {
			matches = append(matches, Match[T]{
				Span:  in.SpanTo(rest),
				Value: value,
			})
			if rest.Pos() > in.Pos() {
				in = rest
				continue
			}
		}
		_, next, more := in.Next()
		if !more {
			return matches
		}
		in = next
	}
}
