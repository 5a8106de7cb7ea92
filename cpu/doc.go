// Package cpu implements the two-pass assembler for the homebrew 8-bit
// CPU.
//
// The instruction set is a fixed catalog of 33 three-character
// mnemonics. Every instruction occupies two bytes of the 256-byte
// program image: the microcode entry address selected by the operand's
// addressing mode, and the operand value (0x00 when unused). Operands
// are single hexadecimal literals decorated by one of six addressing
// modes ($nn, #$nn, $nn,a, ($nn), ($nn,a), ($nn),a); branch and jump
// instructions also accept bare label names, resolved by the second
// pass.
//
// Assembled images serialize to the "v2.0 raw" hex-dump format the
// memory loader consumes; the same format can be read back and
// disassembled into a listing.
package cpu
