package scanner

import (
	"fmt"

	"github.com/ezrec/i8080/isa"
	"github.com/ezrec/i8080/translate"
)

var f = translate.From

// Position is a location in the source.
type Position struct {
	Line   int // 1-based line.
	Column int // 0-based offset within the line.
	Offset int // 0-based offset within the source.
}

// Pos returns the position.
func (pos Position) Pos() Position {
	return pos
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Positioned is implemented by every scan error.
type Positioned interface {
	error
	Pos() Position
}

// ErrUnexpectedCharacter is a character that cannot start or continue an instruction.
type ErrUnexpectedCharacter struct {
	Position
	Found byte
}

func (err *ErrUnexpectedCharacter) Error() string {
	return f("line %d column %d unexpected character %q", err.Line, err.Column, rune(err.Found))
}

func (err *ErrUnexpectedCharacter) Unwrap() error {
	return isa.ErrCharacterInvalid
}

// ErrUnknownInstruction is a mnemonic missing from the catalog.
type ErrUnknownInstruction struct {
	Position
	Mnemonic string
}

func (err *ErrUnknownInstruction) Error() string {
	return f("line %d column %d unknown instruction '%v'", err.Line, err.Column, err.Mnemonic)
}

func (err *ErrUnknownInstruction) Unwrap() error {
	return isa.ErrInstructionUnknown
}

// ErrInvalidOperandShape is an operand list that matches no form of the mnemonic.
type ErrInvalidOperandShape struct {
	Position
	Mnemonic string
	Got      string
}

func (err *ErrInvalidOperandShape) Error() string {
	return f("line %d column %d invalid operands '%v' for %v", err.Line, err.Column, err.Got, err.Mnemonic)
}

func (err *ErrInvalidOperandShape) Unwrap() error {
	return isa.ErrOperandShape
}

// ErrMalformedRegister is a register operand outside the register set.
type ErrMalformedRegister struct {
	Position
	Char byte   // Offending character.
	Text string // Operand text.
}

func (err *ErrMalformedRegister) Error() string {
	return f("line %d column %d malformed register %q in '%v'", err.Line, err.Column, rune(err.Char), err.Text)
}

func (err *ErrMalformedRegister) Unwrap() error {
	return isa.ErrRegisterInvalid
}

// ErrMalformedNumericOperand is an immediate or address of the wrong width or digits.
type ErrMalformedNumericOperand struct {
	Position
	Text string
}

func (err *ErrMalformedNumericOperand) Error() string {
	return f("line %d column %d malformed numeric operand '%v'", err.Line, err.Column, err.Text)
}

func (err *ErrMalformedNumericOperand) Unwrap() error {
	return isa.ErrNumberInvalid
}

// ErrOutOfRangeRestartVector is an RST operand above 7.
type ErrOutOfRangeRestartVector struct {
	Position
	Digit string
}

func (err *ErrOutOfRangeRestartVector) Error() string {
	return f("line %d column %d restart vector %v out of range", err.Line, err.Column, err.Digit)
}

func (err *ErrOutOfRangeRestartVector) Unwrap() error {
	return isa.ErrVectorRange
}
