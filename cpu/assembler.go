// Copyright 2026, The asm8 Authors

package cpu

import (
	"io"
	"log"
	"slices"
	"strings"
)

// Architecture bounds. The program image is one page of target memory;
// the label and fixup tables match the capacity of the original
// hardware toolchain.
const (
	PROGRAM_MEMORY_SIZE = 256
	MAX_LABEL_COUNT     = 32
	MAX_LABEL_LENGTH    = 32
	MAX_FIXUP_COUNT     = 64
)

// Fixup records a label reference whose address is patched by the
// second pass.
type Fixup struct {
	Addr  int    // Image offset of the operand byte to patch.
	Label string // Referenced label name.
}

// Assembler is a two-pass assembler session for the 8-bit CPU. A zero
// Assembler is ready to use; Assemble resets all session state, so one
// Assembler may be reused across sources.
type Assembler struct {
	Verbose bool           // If set, verbosely logs the assembler actions.
	Label   map[string]int // Map of label names to image addresses.
	Fixup   []Fixup        // Label references pending resolution.

	image   []byte
	pending *Opcode // Two-byte mnemonic awaiting its operand token.
	lineno  int
}

// Assemble tokenizes and assembles one source stream into a Program.
// The first pass drives the pending-operand state machine and records
// label declarations and references; the second pass patches every
// recorded reference with its resolved address. The first error aborts
// the assembly.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	if asm.Label == nil {
		asm.Label = make(map[string]int, MAX_LABEL_COUNT)
	}
	clear(asm.Label)
	asm.Fixup = asm.Fixup[:0]
	asm.image = asm.image[:0]
	asm.pending = nil
	asm.lineno = 0

	sc := NewScanner(input)
	for lineno, token := range sc.Tokens() {
		asm.lineno = lineno

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, token)
		}

		if err = asm.step(token); err != nil {
			err = &ErrSyntax{LineNo: lineno, Token: token, Err: err}
			return
		}
	}
	if err = sc.Err(); err != nil {
		return
	}

	if asm.pending != nil {
		err = &ErrSyntax{LineNo: asm.lineno, Token: asm.pending.Mnemonic, Err: ErrOperandMissing}
		return
	}

	// Final patching of label references. Both forward and backward
	// references resolve here.
	for _, fixup := range asm.Fixup {
		addr, ok := asm.Label[fixup.Label]
		if !ok {
			err = ErrLabelMissing(fixup.Label)
			return
		}
		asm.image[fixup.Addr] = byte(addr)
	}

	prog = &Program{Image: slices.Clone(asm.image)}
	return
}

// step feeds one token to the pending-operand state machine.
func (asm *Assembler) step(token string) (err error) {
	if asm.pending != nil {
		op := asm.pending
		asm.pending = nil
		return asm.operand(op, token)
	}

	op, ok := LookupOpcode(token)
	if ok {
		if op.Implicit() {
			return asm.emit(op.Code(MODE_IMPLICIT), 0x00)
		}
		asm.pending = op
		return
	}

	if name, ok := strings.CutSuffix(token, ":"); ok {
		return asm.declare(name)
	}

	return ErrUnknownMnemonic(token)
}

// operand consumes the operand token of a two-byte instruction. A
// token in no supported addressing mode is a label reference when the
// mnemonic is branch/jump-class, and an error otherwise.
func (asm *Assembler) operand(op *Opcode, token string) (err error) {
	mode := Classify(token)
	if op.Supports(mode) {
		code, value, err := EncodeOperand(op, mode, token)
		if err != nil {
			return err
		}
		if asm.Verbose {
			log.Printf("%02x: %v %v %02x %02x\n", len(asm.image), op.Mnemonic, mode, code, value)
		}
		return asm.emit(code, value)
	}

	if !op.Supports(MODE_LABEL) {
		return ErrOperandInvalid(token)
	}

	if len(token) > MAX_LABEL_LENGTH {
		return ErrLabelTooLong(token)
	}
	if len(asm.Fixup) >= MAX_FIXUP_COUNT {
		return ErrFixupTableFull
	}

	// Placeholder operand byte, patched once the label address is known.
	asm.Fixup = append(asm.Fixup, Fixup{Addr: len(asm.image) + 1, Label: token})
	return asm.emit(op.Code(MODE_LABEL), 0x00)
}

// declare records a label declaration denoting the current cursor, the
// address of the next emitted instruction.
func (asm *Assembler) declare(name string) (err error) {
	if len(name) > MAX_LABEL_LENGTH {
		return ErrLabelTooLong(name)
	}
	if _, ok := asm.Label[name]; ok {
		return ErrLabelDuplicate(name)
	}
	if len(asm.Label) >= MAX_LABEL_COUNT {
		return ErrLabelTableFull
	}

	asm.Label[name] = len(asm.image)
	return
}

// emit appends one two-byte instruction at the cursor. Instructions
// without a real operand carry 0x00 in the operand byte.
func (asm *Assembler) emit(code, operand byte) (err error) {
	if len(asm.image)+2 > PROGRAM_MEMORY_SIZE {
		return ErrProgramTooLarge
	}

	asm.image = append(asm.image, code, operand)
	return
}
