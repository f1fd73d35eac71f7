package isa

import (
	"fmt"
)

// OperandKind is the kind of value an operand position holds.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER = OperandKind(0) // reg
	OPERAND_PAIR     = OperandKind(1) // pair
	OPERAND_PAIR_BD  = OperandKind(2) // pair-bd
	OPERAND_IMM8     = OperandKind(3) // imm8
	OPERAND_ADDR16   = OperandKind(4) // addr16
	OPERAND_VECTOR   = OperandKind(5) // vector
)

// Digits returns the number of hex digits a numeric operand is written with,
// or 0 for operand kinds that are not fixed width numbers.
func (kind OperandKind) Digits() int {
	switch kind {
	case OPERAND_IMM8:
		return 2
	case OPERAND_ADDR16:
		return 4
	}
	return 0
}

// Operand is a resolved operand value.
type Operand struct {
	Kind     OperandKind
	Register Register
	Pair     RegisterPair
	Value    uint16
}

// RegisterOperand creates a single register operand.
func RegisterOperand(r Register) Operand {
	return Operand{Kind: OPERAND_REGISTER, Register: r}
}

// PairOperand creates a register pair operand.
func PairOperand(rp RegisterPair) Operand {
	return Operand{Kind: OPERAND_PAIR, Pair: rp}
}

// ImmediateOperand creates an 8-bit immediate operand.
func ImmediateOperand(value uint8) Operand {
	return Operand{Kind: OPERAND_IMM8, Value: uint16(value)}
}

// AddressOperand creates a 16-bit address operand.
func AddressOperand(addr uint16) Operand {
	return Operand{Kind: OPERAND_ADDR16, Value: addr}
}

// VectorOperand creates a restart vector operand.
func VectorOperand(vector uint8) Operand {
	return Operand{Kind: OPERAND_VECTOR, Value: uint16(vector)}
}

// Accepts returns true if op may be used where kind is expected.
func (kind OperandKind) Accepts(op Operand) bool {
	switch kind {
	case OPERAND_REGISTER:
		return op.Kind == OPERAND_REGISTER && op.Register.Valid()
	case OPERAND_PAIR:
		return (op.Kind == OPERAND_PAIR || op.Kind == OPERAND_PAIR_BD) && op.Pair.Valid()
	case OPERAND_PAIR_BD:
		return (op.Kind == OPERAND_PAIR || op.Kind == OPERAND_PAIR_BD) &&
			(op.Pair == PAIR_B || op.Pair == PAIR_D)
	case OPERAND_IMM8:
		return op.Kind == OPERAND_IMM8 && op.Value <= 0xff
	case OPERAND_ADDR16:
		return op.Kind == OPERAND_ADDR16
	case OPERAND_VECTOR:
		return op.Kind == OPERAND_VECTOR && op.Value <= RST_VECTOR_LIMIT
	}
	return false
}

// String returns the operand as it is written in source.
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_REGISTER:
		return op.Register.String()
	case OPERAND_PAIR, OPERAND_PAIR_BD:
		return op.Pair.String()
	case OPERAND_IMM8:
		return fmt.Sprintf("%02X", op.Value)
	case OPERAND_ADDR16:
		return fmt.Sprintf("%04X", op.Value)
	case OPERAND_VECTOR:
		return fmt.Sprintf("%d", op.Value)
	}
	return "?"
}
