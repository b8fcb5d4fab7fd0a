// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package callscan

import "github.com/runreveal/callscan/parser"

// Scan finds every match of call in text and returns the operations in order.
func Scan(call parser.Parser[Operation], text string) []Operation {
	var ops []Operation
	for _, m := range parser.FindAll(call, parser.NewInput(text)) {
		op := m.Value
		op.Span = m.Span
		ops = append(ops, op)
	}
	return ops
}

// ScanConditional is like [Scan], but feeds every match through toggle
// and only returns the operations toggle accepts.
// call should match the toggle's enable and disable calls
// in addition to the calls to collect.
func ScanConditional(call parser.Parser[Operation], text string, toggle Toggle) []Operation {
	var ops []Operation
	for _, m := range parser.FindAll(call, parser.NewInput(text)) {
		op := m.Value
		op.Span = m.Span
		var accept bool
		toggle, accept = toggle.Next(op)
		if accept {
			ops = append(ops, op)
		}
	}
	return ops
}

// Toggle is the state of a conditional scan.
// Calls named Enable and Disable switch collection on and off;
// the zero Disabled value means collection starts enabled.
type Toggle struct {
	Enable   string
	Disable  string
	Disabled bool
}

// DefaultToggle returns the initial state of a scan
// toggled by "do()" and "don't()".
func DefaultToggle() Toggle {
	return Toggle{Enable: "do", Disable: "don't"}
}

// Next returns the state after op and whether op should be collected.
// Toggle calls are never collected.
func (t Toggle) Next(op Operation) (next Toggle, accept bool) {
	switch op.Name {
	case t.Enable:
		t.Disabled = false
		return t, false
	case t.Disable:
		t.Disabled = true
		return t, false
	default:
		return t, !t.Disabled
	}
}
