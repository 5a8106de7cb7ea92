// Copyright 2026, The asm8 Authors

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/nybbles/asm8/cpu"
)

var (
	verbose     bool
	disassemble bool
)

var rootCmd = &cobra.Command{
	Use:   "asm8 <input> <output>",
	Short: "Assembler for the homebrew 8-bit CPU",
	Long: `Asm8 assembles mnemonic source for the homebrew 8-bit CPU into a
256-byte memory image, written as a "v2.0 raw" hex dump and mirrored to
the console. With -d the input is instead read as a hex image and
disassembled into a listing.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if disassemble {
			return runDisassemble(args[0], args[1])
		}
		return runAssemble(args[0], args[1])
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbosely log assembler actions")
	rootCmd.Flags().BoolVarP(&disassemble, "disassemble", "d", false, "read a hex image and write a listing")
}

func runAssemble(input, output string) error {
	inf, err := os.Open(input)
	if err != nil {
		return err
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Assemble(inf)
	if err != nil {
		return err
	}

	if verbose {
		pp.Fprintln(os.Stderr, asm.Label)
		pp.Fprintln(os.Stderr, asm.Fixup)
	}

	// The output is created only once the assembly has succeeded.
	ouf, err := os.Create(output)
	if err != nil {
		return err
	}
	defer ouf.Close()

	if _, err = prog.WriteTo(io.MultiWriter(ouf, os.Stdout)); err != nil {
		return err
	}

	fmt.Printf("\nAssembled %d bytes to '%s'.\n", len(prog.Image), output)
	return nil
}

func runDisassemble(input, output string) error {
	inf, err := os.Open(input)
	if err != nil {
		return err
	}
	defer inf.Close()

	prog, err := cpu.ReadProgram(inf)
	if err != nil {
		return err
	}

	ouf, err := os.Create(output)
	if err != nil {
		return err
	}
	defer ouf.Close()

	return cpu.Disassemble(ouf, prog)
}

func main() {
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
