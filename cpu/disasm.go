package cpu

import (
	"fmt"
	"io"
)

// lookupCode finds the first catalog entry emitting the given microcode
// byte, searching mnemonics in table order and modes in declaration
// order. Branch instructions share one byte between their immediate and
// label entries, so the immediate form wins for them.
func lookupCode(code byte) (op *Opcode, mode AddrMode, ok bool) {
	if code == 0x00 {
		// 0x00 is the unsupported-mode sentinel, never an instruction.
		return nil, MODE_NONE, false
	}

	for n := range opcodeTable {
		for mode := MODE_IMPLICIT; mode < MODE_COUNT; mode++ {
			if opcodeTable[n].Codes[mode] == code {
				return &opcodeTable[n], mode, true
			}
		}
	}

	return nil, MODE_NONE, false
}

// formatOperand redecorates an operand value in the mode's source
// syntax.
func formatOperand(mode AddrMode, value byte) string {
	switch mode {
	case MODE_ABSOLUTE:
		return fmt.Sprintf("$%02x", value)
	case MODE_IMMEDIATE:
		return fmt.Sprintf("#$%02x", value)
	case MODE_INDEXED:
		return fmt.Sprintf("$%02x,a", value)
	case MODE_INDEXED_INDIRECT:
		return fmt.Sprintf("($%02x,a)", value)
	case MODE_INDIRECT:
		return fmt.Sprintf("($%02x)", value)
	case MODE_INDIRECT_INDEXED:
		return fmt.Sprintf("($%02x),a", value)
	case MODE_LABEL:
		// A resolved label is indistinguishable from an absolute address.
		return fmt.Sprintf("$%02x", value)
	}
	return ""
}

// Disassemble writes a listing of the image, one two-byte instruction
// per line with its address and raw bytes. Byte pairs matching no
// catalog entry are listed as data.
func Disassemble(w io.Writer, prog *Program) (err error) {
	for addr := 0; addr < len(prog.Image); addr += 2 {
		code := prog.Image[addr]
		var value byte
		if addr+1 < len(prog.Image) {
			value = prog.Image[addr+1]
		}

		op, mode, ok := lookupCode(code)
		var text string
		switch {
		case !ok:
			text = fmt.Sprintf(".byte $%02x $%02x", code, value)
		case mode == MODE_IMPLICIT:
			text = op.Mnemonic
		default:
			text = op.Mnemonic + " " + formatOperand(mode, value)
		}

		if _, err = fmt.Fprintf(w, "%02x: %02x %02x  %s\n", addr, code, value, text); err != nil {
			return
		}
	}

	return
}
