// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package parser

// ZeroOrMore returns a parser that applies p until it fails
// and collects its values in order.
// It never fails: if p does not match at all,
// it succeeds with an empty slice without consuming input.
// Repetition stops if p succeeds without consuming input,
// so that it terminates on any finite input.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) (Input, []T, bool) {
		var values []T
		for {
			rest, value, ok := p(in)
			if !ok {
				return in, values, true
			}
			values = append(values, value)
			if rest.Pos() == in.Pos() {
				return rest, values, true
			}
			in = rest
		}
	}
}

// Repeat returns a parser that greedily applies p up to atMost times.
// It fails if p matches fewer than atLeast times.
// An atMost less than 1 means no upper bound.
func Repeat[T any](p Parser[T], atLeast, atMost int) Parser[[]T] {
	return func(in Input) (Input, []T, bool) {
		var values []T
		pos := in
		for atMost < 1 || len(values) < atMost {
			rest, value, ok := p(pos)
			if !ok {
				break
			}
			values = append(values, value)
			if rest.Pos() == pos.Pos() {
				break
			}
			pos = rest
		}
		if len(values) < atLeast {
			return in, nil, false
		}
		return pos, values, true
	}
}

// OneToThree returns a parser that matches p at least once
// and at most three times.
func OneToThree[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, 1, 3)
}
