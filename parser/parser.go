// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

// Package parser provides a small parser combinator algebra over text.
//
// A [Parser] attempts to consume a prefix of an [Input].
// On success it returns the remaining input and a value;
// on failure it returns the input it was given, unchanged,
// so that callers may retry from the same position.
// Parsers are built once from primitives such as [Literal] and [AnyChar]
// with combinators such as [Map], [Pair] and [Either],
// and may then be reused at any number of positions
// and from any number of goroutines.
//
// Alternation is ordered and backtracking is unbounded and unmemoized,
// so pathological grammars can take exponential time.
package parser

// Parser is a function that attempts to consume a prefix of its input.
// If ok is false, rest must be the input passed in.
type Parser[T any] func(in Input) (rest Input, value T, ok bool)

// Parse runs p on in.
// It is equivalent to calling p directly.
func (p Parser[T]) Parse(in Input) (rest Input, value T, ok bool) {
	return p(in)
}

// Tuple holds the values of the two parsers combined by [Pair].
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Map returns a parser that runs p and transforms its value with f.
// Failure is passed through unchanged.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) (Input, B, bool) {
		rest, a, ok := p(in)
		if !ok {
			var zero B
			return in, zero, false
		}
		return rest, f(a), true
	}
}

// Pred returns a parser that runs p and succeeds only if test
// reports true for its value.
// A rejected value fails without consuming any input.
func Pred[T any](p Parser[T], test func(T) bool) Parser[T] {
	return func(in Input) (Input, T, bool) {
		rest, value, ok := p(in)
		if !ok || !test(value) {
			var zero T
			return in, zero, false
		}
		return rest, value, true
	}
}

// AndThen returns a parser that runs p, passes its value to f,
// and runs the resulting parser on the remaining input.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(in Input) (Input, B, bool) {
		rest, a, ok := p(in)
		if !ok {
			var zero B
			return in, zero, false
		}
		rest, b, ok := f(a)(rest)
		if !ok {
			return in, b, false
		}
		return rest, b, true
	}
}

// Pair returns a parser that runs p1 and then p2 on the remaining input.
// If either fails, the pair fails at the original input.
func Pair[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Tuple[A, B]] {
	return func(in Input) (Input, Tuple[A, B], bool) {
		var t Tuple[A, B]
		rest, a, ok := p1(in)
		if !ok {
			return in, t, false
		}
		rest, b, ok := p2(rest)
		if !ok {
			return in, t, false
		}
		t.First, t.Second = a, b
		return rest, t, true
	}
}

// Left is like [Pair] but keeps only the value of p1.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) A { return t.First })
}

// Right is like [Pair] but keeps only the value of p2.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) B { return t.Second })
}

// Either returns a parser that tries p1 and, only if p1 fails,
// tries p2 at the same input.
// If both would succeed, p1's result is used.
func Either[T any](p1, p2 Parser[T]) Parser[T] {
	return func(in Input) (Input, T, bool) {
		if rest, value, ok := p1(in); ok {
			return rest, value, true
		}
		return p2(in)
	}
}

// OneOf folds its arguments with [Either]:
// the first parser to succeed wins.
// OneOf with no arguments always fails.
func OneOf[T any](parsers ...Parser[T]) Parser[T] {
	if len(parsers) == 0 {
		return func(in Input) (Input, T, bool) {
			var zero T
			return in, zero, false
		}
	}
	p := parsers[len(parsers)-1]
	for i := len(parsers) - 2; i >= 0; i-- {
		p = Either(parsers[i], p)
	}
	return p
}

// Optional returns a parser that runs p and never fails.
// The boolean value reports whether p matched.
func Optional[T any](p Parser[T]) Parser[Tuple[T, bool]] {
	return func(in Input) (Input, Tuple[T, bool], bool) {
		rest, value, ok := p(in)
		return rest, Tuple[T, bool]{First: value, Second: ok}, true
	}
}
