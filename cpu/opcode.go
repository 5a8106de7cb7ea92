package cpu

// AddrMode is an operand addressing-mode category.
type AddrMode int

//go:generate go tool stringer -linecomment -type=AddrMode
const (
	MODE_NONE             = AddrMode(0) // none
	MODE_IMPLICIT         = AddrMode(1) // implicit
	MODE_ABSOLUTE         = AddrMode(2) // absolute
	MODE_IMMEDIATE        = AddrMode(3) // immediate
	MODE_INDEXED          = AddrMode(4) // indexed
	MODE_INDEXED_INDIRECT = AddrMode(5) // indexed indirect
	MODE_INDIRECT         = AddrMode(6) // indirect
	MODE_INDIRECT_INDEXED = AddrMode(7) // indirect indexed
	MODE_LABEL            = AddrMode(8) // label
)

// MODE_COUNT sizes per-mode code tables.
const MODE_COUNT = MODE_LABEL + 1

// Opcode describes one mnemonic and its control-unit microcode entry
// address per addressing mode. A zero entry means the mode is not
// supported by the mnemonic.
type Opcode struct {
	Mnemonic string
	Codes    [MODE_COUNT]byte
}

// Supports returns true if the mnemonic accepts the addressing mode.
func (op *Opcode) Supports(mode AddrMode) bool {
	return mode > MODE_NONE && mode < MODE_COUNT && op.Codes[mode] != 0
}

// Code returns the microcode entry address for the addressing mode.
func (op *Opcode) Code(mode AddrMode) byte {
	return op.Codes[mode]
}

// Implicit returns true if the mnemonic is a single-byte instruction
// taking no operand.
func (op *Opcode) Implicit() bool {
	return op.Codes[MODE_IMPLICIT] != 0
}

// opcodeTable lists every opcode of the architecture with the
// microcode entry addresses of its control unit. A mnemonic either has
// an implicit entry or one-or-more operand-mode entries, never both.
var opcodeTable = []Opcode{
	{"adc", [MODE_COUNT]byte{MODE_ABSOLUTE: 0x5a, MODE_IMMEDIATE: 0x57}},
	{"and", [MODE_COUNT]byte{MODE_ABSOLUTE: 0x70, MODE_IMMEDIATE: 0x6d}},
	{"asl", [MODE_COUNT]byte{MODE_IMPLICIT: 0x8b}},
	{"bcc", [MODE_COUNT]byte{MODE_IMMEDIATE: 0x98, MODE_LABEL: 0x98}},
	{"bcs", [MODE_COUNT]byte{MODE_IMMEDIATE: 0x9a, MODE_LABEL: 0x9a}},
	{"beq", [MODE_COUNT]byte{MODE_IMMEDIATE: 0x9e, MODE_LABEL: 0x9e}},
	{"bmi", [MODE_COUNT]byte{MODE_IMMEDIATE: 0x96, MODE_LABEL: 0x96}},
	{"bne", [MODE_COUNT]byte{MODE_IMMEDIATE: 0x9c, MODE_LABEL: 0x9c}},
	{"bpl", [MODE_COUNT]byte{MODE_IMMEDIATE: 0x94, MODE_LABEL: 0x94}},
	{"cib", [MODE_COUNT]byte{MODE_IMPLICIT: 0xd7}},
	{"clc", [MODE_COUNT]byte{MODE_IMPLICIT: 0xa2}},
	{"cmp", [MODE_COUNT]byte{MODE_ABSOLUTE: 0xa6, MODE_IMMEDIATE: 0xa4}},
	{"dec", [MODE_COUNT]byte{MODE_IMPLICIT: 0x6a}},
	{"eor", [MODE_COUNT]byte{MODE_ABSOLUTE: 0x80, MODE_IMMEDIATE: 0x7d}},
	{"inc", [MODE_COUNT]byte{MODE_IMPLICIT: 0x67}},
	{"jmp", [MODE_COUNT]byte{MODE_ABSOLUTE: 0xba, MODE_IMMEDIATE: 0xb8, MODE_LABEL: 0xb8}},
	{"jsr", [MODE_COUNT]byte{MODE_ABSOLUTE: 0xc8, MODE_IMMEDIATE: 0xbe, MODE_LABEL: 0xbe}},
	{"lda", [MODE_COUNT]byte{MODE_ABSOLUTE: 0x08, MODE_IMMEDIATE: 0x06, MODE_INDIRECT: 0x0c}},
	{"ldb", [MODE_COUNT]byte{MODE_ABSOLUTE: 0x14, MODE_IMMEDIATE: 0x12, MODE_INDEXED: 0xd9,
		MODE_INDEXED_INDIRECT: 0x25, MODE_INDIRECT: 0x18, MODE_INDIRECT_INDEXED: 0x1e}},
	{"lsl", [MODE_COUNT]byte{MODE_IMPLICIT: 0x85}},
	{"lsr", [MODE_COUNT]byte{MODE_IMPLICIT: 0x88}},
	{"ora", [MODE_COUNT]byte{MODE_ABSOLUTE: 0x78, MODE_IMMEDIATE: 0x75}},
	{"pha", [MODE_COUNT]byte{MODE_IMPLICIT: 0xaa}},
	{"pop", [MODE_COUNT]byte{MODE_IMPLICIT: 0xb2}},
	{"rol", [MODE_COUNT]byte{MODE_IMPLICIT: 0x8e}},
	{"ror", [MODE_COUNT]byte{MODE_IMPLICIT: 0x91}},
	{"rts", [MODE_COUNT]byte{MODE_IMPLICIT: 0xd1}},
	{"sbc", [MODE_COUNT]byte{MODE_ABSOLUTE: 0x62, MODE_IMMEDIATE: 0x5f}},
	{"sec", [MODE_COUNT]byte{MODE_IMPLICIT: 0xa0}},
	{"sta", [MODE_COUNT]byte{MODE_ABSOLUTE: 0x2c, MODE_INDIRECT: 0x30}},
	{"stb", [MODE_COUNT]byte{MODE_ABSOLUTE: 0x3b, MODE_INDEXED: 0x36,
		MODE_INDEXED_INDIRECT: 0x4c, MODE_INDIRECT: 0x3f, MODE_INDIRECT_INDEXED: 0x45}},
	{"tab", [MODE_COUNT]byte{MODE_IMPLICIT: 0x53}},
	{"tba", [MODE_COUNT]byte{MODE_IMPLICIT: 0x55}},
}

// opcodeMap indexes the catalog by mnemonic.
var opcodeMap = make(map[string]*Opcode, len(opcodeTable))

func init() {
	for n := range opcodeTable {
		opcodeMap[opcodeTable[n].Mnemonic] = &opcodeTable[n]
	}
}

// LookupOpcode finds the descriptor for a mnemonic. The match is exact;
// mnemonics are lowercase three-character names.
func LookupOpcode(mnemonic string) (op *Opcode, ok bool) {
	op, ok = opcodeMap[mnemonic]
	return
}
