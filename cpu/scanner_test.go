package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type scannedToken struct {
	LineNo int
	Token  string
}

func scanAll(t *testing.T, source string) []scannedToken {
	t.Helper()

	sc := NewScanner(strings.NewReader(source))

	var tokens []scannedToken
	for lineno, token := range sc.Tokens() {
		tokens = append(tokens, scannedToken{lineno, token})
	}

	assert.NoError(t, sc.Err())
	return tokens
}

func TestScanner(t *testing.T) {
	assert := assert.New(t)

	source := strings.Join([]string{
		"lda #$0a ; load accumulator",
		"",
		"; a full-line comment",
		"\tsta $20\t",
		"loop: jmp loop\r",
	}, "\n")

	expected := []scannedToken{
		{1, "lda"},
		{1, "#$0a"},
		{4, "sta"},
		{4, "$20"},
		{5, "loop:"},
		{5, "jmp"},
		{5, "loop"},
	}

	assert.Equal(expected, scanAll(t, source))
}

func TestScannerEmpty(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(scanAll(t, ""))
	assert.Empty(scanAll(t, "\n\n\n"))
	assert.Empty(scanAll(t, "; nothing but commentary\n;\n"))
}

func TestScannerCommentMidToken(t *testing.T) {
	assert := assert.New(t)

	// The comment marker truncates even without surrounding whitespace.
	expected := []scannedToken{{1, "rts"}}
	assert.Equal(expected, scanAll(t, "rts;tail"))
}
