package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogLookup(t *testing.T) {
	assert := assert.New(t)

	form, ok := Lookup("MOV")
	assert.True(ok)
	assert.Equal(CLASS_MOVE, form.Class)
	assert.Equal([]OperandKind{OPERAND_REGISTER, OPERAND_REGISTER}, form.Operands)
	assert.Equal("MOV reg,reg", form.String())

	form, ok = Lookup("STAX")
	assert.True(ok)
	assert.Equal([]OperandKind{OPERAND_PAIR_BD}, form.Operands)

	form, ok = Lookup("HLT")
	assert.True(ok)
	assert.Equal("HLT", form.String())

	for _, name := range []string{"", "mov", "MO", "MOVE", "FOO", "EOF"} {
		_, ok = Lookup(name)
		assert.False(ok, name)
	}
}

func TestCatalogForms(t *testing.T) {
	assert := assert.New(t)

	seen := map[string]bool{}
	count := 0
	for form := range Forms() {
		assert.False(seen[form.Mnemonic], form.Mnemonic)
		seen[form.Mnemonic] = true
		count++

		found, ok := Lookup(form.Mnemonic)
		assert.True(ok)
		assert.Same(form, found)
	}

	// 25 implied, 10 register, 7 pair, 22 address, 10 immediate, 4 special.
	assert.Equal(78, count)
}

func TestCatalogResolve(t *testing.T) {
	assert := assert.New(t)

	code, err := Resolve("MOV", RegisterOperand(REG_A), RegisterOperand(REG_B))
	assert.NoError(err)
	assert.Equal(mustOpcode(MakeMove(REG_A, REG_B)), code)

	code, err = Resolve("MVI", RegisterOperand(REG_A), ImmediateOperand(0x03))
	assert.NoError(err)
	assert.Equal(mustOpcode(MakeMvi(REG_A, 0x03)), code)

	code, err = Resolve("LXI", PairOperand(PAIR_B), AddressOperand(0x1234))
	assert.NoError(err)
	assert.Equal(mustOpcode(MakeLxi(PAIR_B, 0x1234)), code)

	code, err = Resolve("RST", VectorOperand(7))
	assert.NoError(err)
	assert.Equal(uint8(7), code.RstDecode())

	code, err = Resolve("XCHG")
	assert.NoError(err)
	assert.Equal(MakeImplied(IMPLIED_OP_XCHG), code)

	code, err = Resolve("STAX", PairOperand(PAIR_D))
	assert.NoError(err)
	assert.Equal(mustOpcode(MakePair(PAIR_OP_STAX, PAIR_D)), code)
}

func TestCatalogResolveErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Resolve("FOO", RegisterOperand(REG_A), RegisterOperand(REG_B))
	assert.ErrorIs(err, ErrInstructionUnknown)
	var resolve *ErrResolve
	assert.True(errors.As(err, &resolve))
	assert.Equal("FOO", resolve.Mnemonic)
	assert.Len(resolve.Operands, 2)

	table := []struct {
		mnemonic string
		operands []Operand
	}{
		{"MOV", []Operand{RegisterOperand(REG_A)}},
		{"MOV", []Operand{RegisterOperand(REG_A), ImmediateOperand(1)}},
		{"MOV", []Operand{RegisterOperand(REG_A), RegisterOperand(REG_NONE)}},
		{"HLT", []Operand{RegisterOperand(REG_A)}},
		{"INX", []Operand{RegisterOperand(REG_B)}},
		{"STAX", []Operand{PairOperand(PAIR_H)}},
		{"LDAX", []Operand{PairOperand(PAIR_SP)}},
		{"JMP", []Operand{ImmediateOperand(0x10)}},
		{"MVI", []Operand{RegisterOperand(REG_A), {Kind: OPERAND_IMM8, Value: 0x100}}},
		{"RST", []Operand{VectorOperand(8)}},
		{"ADD", nil},
	}

	for _, entry := range table {
		_, err := Resolve(entry.mnemonic, entry.operands...)
		assert.ErrorIs(err, ErrOperandShape, entry.mnemonic)
	}
}

func TestCatalogResolveErrorText(t *testing.T) {
	assert := assert.New(t)

	_, err := Resolve("FOO")
	assert.EqualError(err, "'FOO' instruction unknown")

	_, err = Resolve("FOO", RegisterOperand(REG_A), ImmediateOperand(0x3c))
	assert.EqualError(err, "'FOO A,3C' instruction unknown")

	_, err = Resolve("ADD")
	assert.EqualError(err, "'ADD' operand shape invalid")
}

func TestCatalogRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for form := range Forms() {
		var ops []Operand
		for _, kind := range form.Operands {
			switch kind {
			case OPERAND_REGISTER:
				ops = append(ops, RegisterOperand(REG_E))
			case OPERAND_PAIR, OPERAND_PAIR_BD:
				ops = append(ops, PairOperand(PAIR_D))
			case OPERAND_IMM8:
				ops = append(ops, ImmediateOperand(0x5a))
			case OPERAND_ADDR16:
				ops = append(ops, AddressOperand(0xa55a))
			case OPERAND_VECTOR:
				ops = append(ops, VectorOperand(3))
			}
		}

		code, err := form.Resolve(ops...)
		assert.NoError(err, form.Mnemonic)
		assert.Equal(form.Class, code.Class())
		assert.Equal(form.Mnemonic, code.Mnemonic())
		assert.Equal(ops, code.Operands())
	}
}
