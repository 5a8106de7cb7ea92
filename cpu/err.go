package cpu

import (
	"errors"

	"github.com/nybbles/asm8/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrLabelTableFull  = errors.New(f("label table full"))
	ErrFixupTableFull  = errors.New(f("jump table full"))
	ErrProgramTooLarge = errors.New(f("program exceeds memory size"))

	// Image reader errors
	ErrImageHeader = errors.New(f("image header missing"))
)

type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("unknown mnemonic '%v'", string(err))
}

type ErrOperandInvalid string

func (err ErrOperandInvalid) Error() string {
	return f("invalid or missing operand '%v'", string(err))
}

type ErrAddressFormat string

func (err ErrAddressFormat) Error() string {
	return f("invalid address format '%v'", string(err))
}

type ErrAddressRange string

func (err ErrAddressRange) Error() string {
	return f("address '%v' out of range", string(err))
}

type ErrLabelTooLong string

func (err ErrLabelTooLong) Error() string {
	return f("label '%v' is too long", string(err))
}

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label '%v' duplicated", string(err))
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label '%v' missing", string(err))
}

type ErrImageByte string

func (err ErrImageByte) Error() string {
	return f("'%v' is not an image byte", string(err))
}

type ErrSyntax struct {
	LineNo int
	Token  string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Token, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
