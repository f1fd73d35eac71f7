package isa

import (
	"errors"
	"strings"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	// Catalog errors
	ErrInstructionUnknown = errors.New(f("instruction unknown"))
	ErrOperandShape       = errors.New(f("operand shape invalid"))

	// Operand errors
	ErrCharacterInvalid = errors.New(f("character unexpected"))
	ErrRegisterInvalid  = errors.New(f("register invalid"))
	ErrNumberInvalid    = errors.New(f("numeric operand malformed"))
	ErrVectorRange      = errors.New(f("restart vector out of range"))
)

// ErrResolve is a catalog resolution failure.
type ErrResolve struct {
	Mnemonic string
	Operands []Operand
	Err      error
}

func (err *ErrResolve) Error() string {
	if len(err.Operands) == 0 {
		return f("'%v' %v", err.Mnemonic, err.Err)
	}

	args := make([]string, len(err.Operands))
	for n, op := range err.Operands {
		args[n] = op.String()
	}
	return f("'%v %v' %v", err.Mnemonic, strings.Join(args, ","), err.Err)
}

func (err *ErrResolve) Unwrap() error {
	return err.Err
}
