// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mipsasm assembles a MIPS source file into raw DATA and TEXT
// segment images.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arf20/mipsasm/asm"
)

var (
	outputBase string
	verbose    bool
	symbols    bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mipsasm [flags] file",
		Short: "Assemble a MIPS source file into DATA and TEXT segment images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.Flags().StringVarP(&outputBase, "output", "o", "a", "place the output into <output>.data/.text/.sym")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVarP(&symbols, "symbols", "s", false, "generate a <output>.sym symbol dump")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(srcPath string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("error reading file: %v", err)
	}

	trace := io.Writer(io.Discard)
	if verbose {
		trace = os.Stdout
	}

	result, err := asm.Assemble(string(src), trace, os.Stderr, asm.Options{})
	if err != nil {
		return fmt.Errorf("error assembling: %v", err)
	}

	if verbose {
		printSymbols(os.Stdout, result)
		dumpSegments(os.Stdout, result)
	}

	if err := os.WriteFile(outputBase+".data", result.Data.Bytes, 0o644); err != nil {
		return fmt.Errorf("error writing data segment: %v", err)
	}
	if err := os.WriteFile(outputBase+".text", result.Text.Bytes, 0o644); err != nil {
		return fmt.Errorf("error writing text segment: %v", err)
	}

	if symbols {
		if err := writeSymbols(outputBase+".sym", result); err != nil {
			return fmt.Errorf("error writing symbol table: %v", err)
		}
	}

	return nil
}

// writeSymbols writes one line per symbol, DATA symbols first then TEXT,
// each group in definition order: "<label>:0x<8-hex-digit-address>".
func writeSymbols(path string, result *asm.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, s := range result.Data.Symbols.Symbols() {
		fmt.Fprintf(f, "%s:0x%08x\n", s.Label, s.Address)
	}
	for _, s := range result.Text.Symbols.Symbols() {
		fmt.Fprintf(f, "%s:0x%08x\n", s.Label, s.Address)
	}
	return nil
}

func printSymbols(w io.Writer, result *asm.Result) {
	fmt.Fprintf(w, "=== SYMBOL TABLE ===\n")
	for _, seg := range []*asm.Segment{result.Data, result.Text} {
		fmt.Fprintf(w, "%s [%d]\n", seg.ID, seg.Size())
		for _, s := range seg.Symbols.Symbols() {
			fmt.Fprintf(w, "  %-16s0x%08x\n", s.Label+":", s.Address)
		}
	}
	fmt.Fprintln(w)
}
