package cpu

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Scanner splits assembly source into whitespace-delimited tokens,
// discarding ';' comments and tracking source line numbers for
// diagnostics. It performs no semantic validation.
type Scanner struct {
	scanner *bufio.Scanner
	err     error
}

// NewScanner wraps an input stream for tokenizing.
func NewScanner(input io.Reader) *Scanner {
	return &Scanner{scanner: bufio.NewScanner(input)}
}

// Tokens yields each token together with its 1-based line number. A
// comment runs from ';' to end of line; lines with no tokens yield
// nothing.
func (sc *Scanner) Tokens() iter.Seq2[int, string] {
	return func(yield func(lineno int, token string) bool) {
		lineno := 0
		for sc.scanner.Scan() {
			lineno++
			line, _, _ := strings.Cut(sc.scanner.Text(), ";")
			for _, token := range strings.Fields(line) {
				if !yield(lineno, token) {
					return
				}
			}
		}
		sc.err = sc.scanner.Err()
	}
}

// Err reports any read failure once iteration has finished.
func (sc *Scanner) Err() error {
	return sc.err
}
