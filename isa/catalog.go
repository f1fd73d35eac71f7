package isa

import (
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/i8080/internal"
)

// Form is one catalog entry: a mnemonic and the operand kinds it takes.
type Form struct {
	Mnemonic string        // Canonical uppercase mnemonic.
	Class    Class         // Instruction form.
	Operands []OperandKind // Operand kinds, in source order.

	build func(ops []Operand) (Opcode, error)
}

// Resolve creates the Opcode for the form from resolved operands.
func (form *Form) Resolve(operands ...Operand) (code Opcode, err error) {
	defer func() {
		if err != nil {
			err = &ErrResolve{Mnemonic: form.Mnemonic, Operands: operands, Err: err}
		}
	}()

	if len(operands) != len(form.Operands) {
		err = ErrOperandShape
		return
	}

	for n, kind := range form.Operands {
		if !kind.Accepts(operands[n]) {
			err = ErrOperandShape
			return
		}
	}

	code, err = form.build(operands)
	return
}

// String returns the mnemonic followed by its operand kinds.
func (form *Form) String() string {
	if len(form.Operands) == 0 {
		return form.Mnemonic
	}

	kinds := make([]string, len(form.Operands))
	for n, kind := range form.Operands {
		kinds[n] = kind.String()
	}

	return form.Mnemonic + " " + strings.Join(kinds, ",")
}

// familyForms creates one form per op of a family.
func familyForms[T interface {
	~int
	String() string
}](class Class, limit T, kinds []OperandKind, build func(op T, ops []Operand) (Opcode, error)) (forms []*Form) {
	for op := T(0); op <= limit; op++ {
		forms = append(forms, &Form{
			Mnemonic: op.String(),
			Class:    class,
			Operands: kinds,
			build: func(ops []Operand) (Opcode, error) {
				return build(op, ops)
			},
		})
	}

	return
}

var impliedForms = familyForms(CLASS_IMPLIED, IMPLIED_OP_DI, nil,
	func(op ImpliedOp, _ []Operand) (Opcode, error) {
		return MakeImplied(op), nil
	})

var registerForms = familyForms(CLASS_REGISTER, REGISTER_OP_DCR, []OperandKind{OPERAND_REGISTER},
	func(op RegisterOp, ops []Operand) (Opcode, error) {
		return MakeRegister(op, ops[0].Register)
	})

var pairForms = familyForms(CLASS_PAIR, PAIR_OP_POP, []OperandKind{OPERAND_PAIR},
	func(op PairOp, ops []Operand) (Opcode, error) {
		return MakePair(op, ops[0].Pair)
	})

var addressForms = familyForms(CLASS_ADDRESS, ADDRESS_OP_CM, []OperandKind{OPERAND_ADDR16},
	func(op AddressOp, ops []Operand) (Opcode, error) {
		return MakeAddress(op, ops[0].Value), nil
	})

var immediateForms = familyForms(CLASS_IMMEDIATE, IMMEDIATE_OP_OUT, []OperandKind{OPERAND_IMM8},
	func(op ImmediateOp, ops []Operand) (Opcode, error) {
		return MakeImmediate(op, uint8(ops[0].Value)), nil
	})

var specialForms = []*Form{
	{
		Mnemonic: "MOV",
		Class:    CLASS_MOVE,
		Operands: []OperandKind{OPERAND_REGISTER, OPERAND_REGISTER},
		build: func(ops []Operand) (Opcode, error) {
			return MakeMove(ops[0].Register, ops[1].Register)
		},
	},
	{
		Mnemonic: "MVI",
		Class:    CLASS_MVI,
		Operands: []OperandKind{OPERAND_REGISTER, OPERAND_IMM8},
		build: func(ops []Operand) (Opcode, error) {
			return MakeMvi(ops[0].Register, uint8(ops[1].Value))
		},
	},
	{
		Mnemonic: "LXI",
		Class:    CLASS_LXI,
		Operands: []OperandKind{OPERAND_PAIR, OPERAND_ADDR16},
		build: func(ops []Operand) (Opcode, error) {
			return MakeLxi(ops[0].Pair, ops[1].Value)
		},
	},
	{
		Mnemonic: "RST",
		Class:    CLASS_RST,
		Operands: []OperandKind{OPERAND_VECTOR},
		build: func(ops []Operand) (Opcode, error) {
			return MakeRst(uint8(ops[0].Value))
		},
	},
}

// STAX and LDAX only address memory through BC and DE.
func init() {
	for _, form := range pairForms {
		switch form.Mnemonic {
		case PAIR_OP_STAX.String(), PAIR_OP_LDAX.String():
			form.Operands = []OperandKind{OPERAND_PAIR_BD}
		}
	}
}

// Forms returns every catalog form, family by family.
func Forms() iter.Seq[*Form] {
	return internal.IterSeqConcat(
		slices.Values(impliedForms),
		slices.Values(registerForms),
		slices.Values(pairForms),
		slices.Values(addressForms),
		slices.Values(immediateForms),
		slices.Values(specialForms),
	)
}

// catalog maps mnemonic text to its form.
var catalog = func() map[string]*Form {
	forms := make(map[string]*Form)
	for form := range Forms() {
		forms[form.Mnemonic] = form
	}
	return forms
}()

// Lookup returns the form of a mnemonic. Mnemonics are case sensitive.
func Lookup(mnemonic string) (form *Form, ok bool) {
	form, ok = catalog[mnemonic]
	return
}

// Resolve creates the Opcode for a mnemonic and its resolved operands.
func Resolve(mnemonic string, operands ...Operand) (code Opcode, err error) {
	form, ok := Lookup(mnemonic)
	if !ok {
		err = &ErrResolve{Mnemonic: mnemonic, Operands: operands, Err: ErrInstructionUnknown}
		return
	}

	return form.Resolve(operands...)
}
