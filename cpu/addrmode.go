package cpu

import (
	"strconv"
	"strings"
)

// modePattern is the surface decoration of one addressing mode. The
// bare hex literal sits between prefix and suffix.
type modePattern struct {
	mode   AddrMode
	prefix string
	suffix string
}

// modePatterns is tried in order; the first whole-token match wins.
// Indexed-indirect must precede indirect (",a)" also ends in ")"), and
// indexed must precede absolute, so the six categories partition the
// decorated forms without overlap.
var modePatterns = []modePattern{
	{MODE_IMMEDIATE, "#$", ""},
	{MODE_INDEXED_INDIRECT, "($", ",a)"},
	{MODE_INDIRECT_INDEXED, "($", "),a"},
	{MODE_INDIRECT, "($", ")"},
	{MODE_INDEXED, "$", ",a"},
	{MODE_ABSOLUTE, "$", ""},
}

// Classify determines the addressing-mode category of an operand token
// from its decoration alone. Tokens matching no category (label
// references among them) classify as MODE_NONE.
func Classify(token string) AddrMode {
	for _, pat := range modePatterns {
		if len(token) >= len(pat.prefix)+len(pat.suffix) &&
			strings.HasPrefix(token, pat.prefix) &&
			strings.HasSuffix(token, pat.suffix) {
			return pat.mode
		}
	}
	return MODE_NONE
}

// bareLiteral strips the mode decoration from a classified token.
func bareLiteral(token string, mode AddrMode) string {
	for _, pat := range modePatterns {
		if pat.mode == mode {
			return token[len(pat.prefix) : len(token)-len(pat.suffix)]
		}
	}
	return token
}

// isHex reports whether s is entirely hexadecimal digits.
func isHex(s string) bool {
	for n := 0; n < len(s); n++ {
		c := s[n]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// EncodeOperand turns a classified operand token into the two bytes of
// a two-byte instruction: the mode's microcode entry address and the
// operand value. The literal must be pure hex and address within the
// 256-byte program memory.
func EncodeOperand(op *Opcode, mode AddrMode, token string) (code, operand byte, err error) {
	if !op.Supports(mode) {
		err = ErrOperandInvalid(token)
		return
	}

	bare := bareLiteral(token, mode)
	if len(bare) == 0 || !isHex(bare) {
		err = ErrAddressFormat(token)
		return
	}

	value, perr := strconv.ParseUint(bare, 16, 64)
	if perr != nil || value >= PROGRAM_MEMORY_SIZE {
		err = ErrAddressRange(token)
		return
	}

	code = op.Code(mode)
	operand = byte(value)
	return
}
