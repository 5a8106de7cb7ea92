package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		token string
		mode  AddrMode
	}){
		{"$3F", MODE_ABSOLUTE},
		{"$3F,a", MODE_INDEXED},
		{"#$3F", MODE_IMMEDIATE},
		{"($3F)", MODE_INDIRECT},
		{"($3F,a)", MODE_INDEXED_INDIRECT},
		{"($3F),a", MODE_INDIRECT_INDEXED},

		// Lowercase and multi-digit forms.
		{"$0a", MODE_ABSOLUTE},
		{"#$ff", MODE_IMMEDIATE},
		{"($20),a", MODE_INDIRECT_INDEXED},

		// Decoration-only classification: bad literals still classify.
		{"$", MODE_ABSOLUTE},
		{"($)", MODE_INDIRECT},
		{"($,a)", MODE_INDEXED_INDIRECT},
		{"$zz", MODE_ABSOLUTE},

		// Unclassified forms.
		{"loop", MODE_NONE},
		{"3F", MODE_NONE},
		{"#3F", MODE_NONE},
		{"(3F)", MODE_NONE},
		{"($3F", MODE_NONE},
		{"(),a", MODE_NONE},
		{"", MODE_NONE},
	}

	for _, entry := range table {
		assert.Equal(entry.mode, Classify(entry.token), entry.token)
	}
}

func TestClassifyIndirectBoundary(t *testing.T) {
	assert := assert.New(t)

	// The ",a)" / "),a" / ")" tails all end near 'a' and ')'; every
	// parenthesized form must land in exactly one category regardless of
	// literal width.
	for _, literal := range []string{"0", "3F", "ff", "123"} {
		assert.Equal(MODE_INDIRECT, Classify("($"+literal+")"), literal)
		assert.Equal(MODE_INDEXED_INDIRECT, Classify("($"+literal+",a)"), literal)
		assert.Equal(MODE_INDIRECT_INDEXED, Classify("($"+literal+"),a"), literal)
	}

	// Near-miss tails stay out of all three categories.
	assert.Equal(MODE_NONE, Classify("($3F,a"))
	assert.Equal(MODE_NONE, Classify("($3F)a"))
	assert.Equal(MODE_NONE, Classify("($3F),"))
}

func TestEncodeOperand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mnemonic string
		token    string
		mode     AddrMode
		code     byte
		operand  byte
	}){
		{"lda", "#$0a", MODE_IMMEDIATE, 0x06, 0x0a},
		{"lda", "$3f", MODE_ABSOLUTE, 0x08, 0x3f},
		{"lda", "($3f)", MODE_INDIRECT, 0x0c, 0x3f},
		{"sta", "$20", MODE_ABSOLUTE, 0x2c, 0x20},
		{"ldb", "$3f,a", MODE_INDEXED, 0xd9, 0x3f},
		{"ldb", "($3f,a)", MODE_INDEXED_INDIRECT, 0x25, 0x3f},
		{"ldb", "($3f),a", MODE_INDIRECT_INDEXED, 0x1e, 0x3f},
		{"stb", "($00),a", MODE_INDIRECT_INDEXED, 0x45, 0x00},

		// Hex literals are accepted in either case.
		{"lda", "#$FF", MODE_IMMEDIATE, 0x06, 0xff},
	}

	for _, entry := range table {
		op, ok := LookupOpcode(entry.mnemonic)
		assert.True(ok, entry.mnemonic)
		assert.Equal(entry.mode, Classify(entry.token), entry.token)

		code, operand, err := EncodeOperand(op, entry.mode, entry.token)
		assert.NoError(err, entry.token)
		assert.Equal(entry.code, code, entry.token)
		assert.Equal(entry.operand, operand, entry.token)
	}
}

func TestEncodeOperandErrors(t *testing.T) {
	assert := assert.New(t)

	lda, _ := LookupOpcode("lda")
	sta, _ := LookupOpcode("sta")

	// Non-hex remainder.
	_, _, err := EncodeOperand(lda, MODE_ABSOLUTE, "$zz")
	assert.IsType(ErrAddressFormat(""), err)

	// Empty literal.
	_, _, err = EncodeOperand(lda, MODE_ABSOLUTE, "$")
	assert.IsType(ErrAddressFormat(""), err)

	// Suffix characters leak into the literal when the mode mismatches
	// the decoration.
	_, _, err = EncodeOperand(lda, MODE_ABSOLUTE, "$3f,a")
	assert.IsType(ErrAddressFormat(""), err)

	// Out of range for the 256-byte memory.
	_, _, err = EncodeOperand(lda, MODE_ABSOLUTE, "$100")
	assert.IsType(ErrAddressRange(""), err)

	_, _, err = EncodeOperand(lda, MODE_IMMEDIATE, "#$10000000000000000000")
	assert.IsType(ErrAddressRange(""), err)

	// Mode unsupported by the mnemonic.
	_, _, err = EncodeOperand(sta, MODE_IMMEDIATE, "#$10")
	assert.IsType(ErrOperandInvalid(""), err)

	// In-range boundaries.
	_, operand, err := EncodeOperand(lda, MODE_ABSOLUTE, "$00")
	assert.NoError(err)
	assert.Equal(byte(0x00), operand)

	_, operand, err = EncodeOperand(lda, MODE_ABSOLUTE, "$ff")
	assert.NoError(err)
	assert.Equal(byte(0xff), operand)
}
