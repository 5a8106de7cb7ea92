package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// ImageHeader tags the hex-dump format understood by the memory loader.
const ImageHeader = "v2.0 raw"

// Program is an assembled memory image.
type Program struct {
	Image []byte
}

// Bytes iterates over the (address, value) pairs of the image.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(addr int, value byte) bool) {
		for addr, value := range prog.Image {
			if !yield(addr, value) {
				return
			}
		}
	}
}

// WriteTo serializes the image as a hex dump: a header line, then each
// byte as two lowercase hex digits, space-separated, with a line break
// after every 16th byte.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	written, err := fmt.Fprintf(w, "%s\n", ImageHeader)
	n += int64(written)
	if err != nil {
		return
	}

	for addr, value := range prog.Bytes() {
		sep := " "
		if addr%16 == 15 {
			sep = "\n"
		}
		written, err = fmt.Fprintf(w, "%02x%s", value, sep)
		n += int64(written)
		if err != nil {
			return
		}
	}

	return
}

// ReadProgram parses a hex dump produced by WriteTo back into a
// Program. The header line is required; every following word must be a
// hex byte; the image must fit in program memory.
func ReadProgram(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != ImageHeader {
		err = ErrImageHeader
		return
	}

	image := []byte{}
	for scanner.Scan() {
		for _, word := range strings.Fields(scanner.Text()) {
			value, perr := strconv.ParseUint(word, 16, 8)
			if perr != nil {
				err = ErrImageByte(word)
				return
			}
			if len(image) >= PROGRAM_MEMORY_SIZE {
				err = ErrProgramTooLarge
				return
			}
			image = append(image, byte(value))
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}

	prog = &Program{Image: image}
	return
}
