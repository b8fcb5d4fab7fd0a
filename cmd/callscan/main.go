// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/runreveal/callscan"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"zombiezen.com/go/bass/sigterm"
)

func main() {
	rootCommand := &cobra.Command{
		Use:   "callscan [options] [FILE [...]]",
		Short: "Find calls like mul(2,3) in text and sum their results",

		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	outputPath := rootCommand.Flags().StringP("output", "o", "", "file to write the sum to (defaults to stdout)")
	configPath := rootCommand.Flags().String("config", "", "grammar configuration `file` (JSON with comments)")
	conditional := rootCommand.Flags().BoolP("conditional", "c", false, "honor the enable and disable calls (do() and don't() by default)")
	verbose := rootCommand.Flags().BoolP("verbose", "v", false, "list every collected call on stderr")
	rootCommand.RunE = func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("conditional") {
			cfg.Conditional = *conditional
		}
		grammar, err := cfg.Grammar()
		if err != nil {
			return err
		}

		input, err := makeInput(args)
		if err != nil {
			return err
		}
		output, err := makeOutput(*outputPath)
		if err != nil {
			input.Close()
			return err
		}

		var report io.Writer
		if *verbose {
			report = os.Stderr
		}
		err = run(cmd.Context(), output, input, grammar, report)
		if err2 := output.Close(); err == nil {
			err = err2
		}
		input.Close()
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), sigterm.Signals()...)
	err := rootCommand.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "callscan: %v\n", err)
		os.Exit(1)
	}
}

// run scans all of input with grammar
// and writes the sum of the two-operand results to output.
// If report is not nil, each collected call is listed there.
func run(ctx context.Context, output io.Writer, input io.Reader, grammar *callscan.Grammar, report io.Writer) error {
	if isTerminal(input) {
		// Nudge for usage if running interactively.
		fmt.Fprintln(os.Stderr, "Reading from terminal (press Ctrl-D to finish)...")
	}

	text, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	source := string(text)
	ops := grammar.Scan(source)
	if report != nil {
		if err := callscan.WriteReport(report, source, ops); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if _, err := fmt.Fprintln(output, callscan.SumBinary(ops)); err != nil {
		return err
	}
	return nil
}

// loadConfig reads the grammar configuration at path,
// or returns the default configuration if path is empty.
func loadConfig(path string) (*callscan.Config, error) {
	if path == "" {
		return callscan.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := callscan.ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func makeInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || len(args) == 1 && args[0] == "-" {
		return nopReadCloser{os.Stdin}, nil
	}
	if len(args) == 1 {
		return os.Open(args[0])
	}

	readers := make([]io.ReadCloser, 0, len(args))
	for _, path := range args {
		if path == "-" {
			readers = append(readers, nopReadCloser{os.Stdin})
			continue
		}

		f, err := os.Open(path)
		if err != nil {
			for _, c := range readers {
				c.Close()
			}
			return nil, err
		}
		readers = append(readers, f)
	}
	return &multiReadCloser{readers}, nil
}

func makeOutput(arg string) (io.WriteCloser, error) {
	if arg == "" || arg == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(arg)
}

func isTerminal(r io.Reader) bool {
	for {
		switch rt := r.(type) {
		case *os.File:
			return term.IsTerminal(int(rt.Fd()))
		case nopReadCloser:
			r = rt.Reader
		default:
			return false
		}
	}
}

// A multiReadCloser is a logical concatenation of its input readers,
// much like [io.MultiReader].
// However, it also implements [io.Closer]
// and closes its inputs as they are finished reading.
type multiReadCloser struct {
	readers []io.ReadCloser
}

func (mrc *multiReadCloser) Read(p []byte) (n int, err error) {
	for len(mrc.readers) > 0 {
		n, err = mrc.readers[0].Read(p)
		if err == io.EOF {
			mrc.readers[0].Close()
			mrc.readers[0] = nil
			mrc.readers = mrc.readers[1:]
		}
		if n > 0 || err != io.EOF {
			if err == io.EOF && len(mrc.readers) > 0 {
				err = nil
			}
			return
		}
	}
	return 0, io.EOF
}

func (mrc *multiReadCloser) Close() error {
	var firstError error
	for _, rc := range mrc.readers {
		if err := rc.Close(); firstError == nil {
			firstError = err
		}
	}
	mrc.readers = nil
	return firstError
}

type nopReadCloser struct {
	io.Reader
}

func (nopReadCloser) Close() error { return nil }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
