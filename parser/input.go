// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package parser

import "unicode/utf8"

// Input is a read-only view of a source text positioned at a cursor.
// The parsers only ever see the suffix of the source that starts at the cursor.
// Input values are small and are passed by value;
// advancing an Input returns a new view over the same backing text.
type Input struct {
	source string
	pos    int
}

// NewInput returns a view of source positioned at its first byte.
func NewInput(source string) Input {
	return Input{source: source}
}

// Source returns the full text the view was created from.
func (in Input) Source() string {
	return in.source
}

// Pos returns the byte offset of the cursor in the source.
func (in Input) Pos() int {
	return in.pos
}

// Rest returns the unconsumed suffix of the source.
func (in Input) Rest() string {
	return in.source[in.pos:]
}

// AtEOF reports whether the view has no remaining bytes.
func (in Input) AtEOF() bool {
	return in.pos >= len(in.source)
}

// Advance returns the view n bytes further along.
// n is clamped to the remaining length.
func (in Input) Advance(n int) Input {
	in.pos = min(in.pos+max(n, 0), len(in.source))
	return in
}

// Next decodes the character at the cursor.
// It returns the character and the view positioned after it.
// ok is false at the end of the input.
// A byte that does not start a valid UTF-8 sequence
// is returned as [utf8.RuneError] and consumes exactly one byte.
func (in Input) Next() (c rune, rest Input, ok bool) {
	if in.AtEOF() {
		return 0, in, false
	}
	c, n := utf8.DecodeRuneInString(in.source[in.pos:])
	return c, in.Advance(n), true
}

// SpanTo returns the span of source bytes between in and end.
// end must be a view derived from in.
func (in Input) SpanTo(end Input) Span {
	return newSpan(in.pos, end.pos)
}
