// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package callscan

import (
	"fmt"
	"io"

	"github.com/runreveal/callscan/parser"
)

// SumBinary returns the sum of the results of the operations
// that have exactly two operands.
// Other operations parse successfully but do not contribute.
func SumBinary(ops []Operation) int {
	total := 0
	for _, op := range ops {
		if len(op.Operands) == 2 {
			total += op.Result
		}
	}
	return total
}

// WriteReport writes one line per operation, positioned in source,
// followed by the [SumBinary] total.
// Operations excluded from the total are marked as such.
func WriteReport(w io.Writer, source string, ops []Operation) error {
	for _, op := range ops {
		line, col := parser.LineCol(source, op.Span.Start)
		note := ""
		if len(op.Operands) != 2 {
			note = " (excluded)"
		}
		if _, err := fmt.Fprintf(w, "%d:%d: %v = %d%s\n", line, col, op, op.Result, note); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "sum: %d\n", SumBinary(ops))
	return err
}
