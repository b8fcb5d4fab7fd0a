// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package parser

import "fmt"

// A Span is a reference to a contiguous sequence of bytes in a source text.
type Span struct {
	// Start is the index of the first byte of the span,
	// relative to the beginning of the source.
	Start int
	// End is the end index of the span (exclusive),
	// relative to the beginning of the source.
	End int
}

func newSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// IsValid reports whether the span has a non-negative length
// and non-negative indices.
func (span Span) IsValid() bool {
	return span.Start >= 0 && span.End >= 0 && span.Start <= span.End
}

// Len returns the length of the span
// or zero if the span is invalid.
func (span Span) Len() int {
	if !span.IsValid() {
		return 0
	}
	return span.End - span.Start
}

// String formats the span indices as a mathematical range like "[12,34)".
func (span Span) String() string {
	return fmt.Sprintf("[%d,%d)", span.Start, span.End)
}

// Text returns the bytes of source covered by the span,
// or the empty string if the span is invalid or out of range.
func (span Span) Text(source string) string {
	if !span.IsValid() || span.End > len(source) {
		return ""
	}
	return source[span.Start:span.End]
}

// LineCol returns the 1-based line and column of the byte offset pos in source.
// Tabs advance the column to the next multiple of 8.
func LineCol(source string, pos int) (line, col int) {
	pos = min(max(pos, 0), len(source))
	line, col = 1, 1
	for _, c := range source[:pos] {
		switch c {
		case '\n':
			line++
			col = 1
		case '\t':
			const tabWidth = 8
			tabLoc := (col - 1) % tabWidth
			col += tabWidth - tabLoc
		default:
			col++
		}
	}
	return
}
