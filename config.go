// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package callscan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/runreveal/callscan/parser"
	"github.com/tailscale/hujson"
	"golang.org/x/exp/maps"
)

// maxConfigDigits is the widest operand that can fit in a 64-bit int.
const maxConfigDigits = 19

// Config describes the calls a [Grammar] recognizes.
// It is usually read from a JSON file that may contain comments
// and trailing commas (see [ParseConfig]).
type Config struct {
	// Calls are the function names to collect,
	// tried in order at each position.
	Calls []string `json:"calls"`
	// Conditional enables the Enable and Disable toggle calls.
	Conditional bool `json:"conditional"`
	// Enable is the name of the call that turns collection on.
	Enable string `json:"enable"`
	// Disable is the name of the call that turns collection off.
	Disable string `json:"disable"`
	// MaxDigits is the maximum number of digits in an operand.
	MaxDigits int `json:"maxDigits"`
	// Reducers maps function names to reducer kinds:
	// "product", "sum", or "none".
	// Names without an entry evaluate to zero.
	Reducers map[string]string `json:"reducers"`
}

var reducerKinds = map[string]Reducer{
	"product": Product,
	"sum":     Sum,
	"none":    None,
}

// DefaultConfig returns the configuration that collects "mul" calls
// with up to three-digit operands.
func DefaultConfig() *Config {
	return &Config{
		Calls:     []string{"mul"},
		Enable:    "do",
		Disable:   "don't",
		MaxDigits: DefaultMaxDigits,
		Reducers:  map[string]string{"mul": "product"},
	}
}

// ParseConfig parses a configuration in HuJSON format.
// Fields that are not present keep their [DefaultConfig] values,
// and entries in "reducers" are added to the default reducers.
func ParseConfig(data []byte) (*Config, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg := DefaultConfig()
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports any problems with the configuration.
func (cfg *Config) Validate() error {
	var errs []error
	if len(cfg.Calls) == 0 {
		errs = append(errs, errors.New("no calls"))
	}
	for i, name := range cfg.Calls {
		if name == "" {
			errs = append(errs, fmt.Errorf("calls[%d]: empty name", i))
		}
	}
	if cfg.MaxDigits < 1 || cfg.MaxDigits > maxConfigDigits {
		errs = append(errs, fmt.Errorf("maxDigits = %d; must be between 1 and %d", cfg.MaxDigits, maxConfigDigits))
	}
	if cfg.Conditional {
		switch {
		case cfg.Enable == "" || cfg.Disable == "":
			errs = append(errs, errors.New("conditional requires enable and disable names"))
		case cfg.Enable == cfg.Disable:
			errs = append(errs, fmt.Errorf("enable and disable are both %q", cfg.Enable))
		}
	}
	names := maps.Keys(cfg.Reducers)
	slices.Sort(names)
	for _, name := range names {
		kind := cfg.Reducers[name]
		if _, ok := reducerKinds[kind]; !ok {
			kinds := maps.Keys(reducerKinds)
			slices.Sort(kinds)
			errs = append(errs, fmt.Errorf("reducers[%q]: unknown kind %q (want one of %s)",
				name, kind, strings.Join(kinds, ", ")))
		}
	}
	return errors.Join(errs...)
}

// Grammar is a compiled [Config].
// A Grammar is immutable and safe to use from multiple goroutines.
type Grammar struct {
	call        parser.Parser[Operation]
	conditional bool
	toggle      Toggle
}

// Grammar validates the configuration and builds its parser.
func (cfg *Config) Grammar() (*Grammar, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("build grammar: %w", err)
	}
	operands := Operands(cfg.MaxDigits)
	var calls []parser.Parser[Operation]
	for _, name := range cfg.Calls {
		calls = append(calls, FunctionWith(name, operands, reducerKinds[cfg.Reducers[name]]))
	}
	g := &Grammar{conditional: cfg.Conditional}
	if cfg.Conditional {
		g.toggle = Toggle{Enable: cfg.Enable, Disable: cfg.Disable}
		calls = append(calls,
			FunctionWith(cfg.Enable, operands, nil),
			FunctionWith(cfg.Disable, operands, nil),
		)
	}
	g.call = parser.OneOf(calls...)
	return g, nil
}

// Parser returns the parser that matches a single call.
func (g *Grammar) Parser() parser.Parser[Operation] {
	return g.call
}

// Scan finds the calls in text that the grammar collects.
func (g *Grammar) Scan(text string) []Operation {
	if g.conditional {
		return ScanConditional(g.call, text, g.toggle)
	}
	return Scan(g.call, text)
}
