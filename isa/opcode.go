package isa

import (
	"fmt"
)

// Class is the instruction form of an opcode.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_EOF       = Class(0) // eof
	CLASS_IMPLIED   = Class(1) // implied
	CLASS_REGISTER  = Class(2) // register
	CLASS_PAIR      = Class(3) // pair
	CLASS_ADDRESS   = Class(4) // address
	CLASS_IMMEDIATE = Class(5) // immediate
	CLASS_MOVE      = Class(6) // move
	CLASS_MVI       = Class(7) // mvi
	CLASS_LXI       = Class(8) // lxi
	CLASS_RST       = Class(9) // rst
)

// ImpliedOp is an instruction without operands.
type ImpliedOp int

//go:generate go tool stringer -linecomment -type=ImpliedOp
const (
	IMPLIED_OP_NOP  = ImpliedOp(0)  // NOP
	IMPLIED_OP_HLT  = ImpliedOp(1)  // HLT
	IMPLIED_OP_RET  = ImpliedOp(2)  // RET
	IMPLIED_OP_RNZ  = ImpliedOp(3)  // RNZ
	IMPLIED_OP_RZ   = ImpliedOp(4)  // RZ
	IMPLIED_OP_RNC  = ImpliedOp(5)  // RNC
	IMPLIED_OP_RC   = ImpliedOp(6)  // RC
	IMPLIED_OP_RPO  = ImpliedOp(7)  // RPO
	IMPLIED_OP_RPE  = ImpliedOp(8)  // RPE
	IMPLIED_OP_RP   = ImpliedOp(9)  // RP
	IMPLIED_OP_RM   = ImpliedOp(10) // RM
	IMPLIED_OP_XCHG = ImpliedOp(11) // XCHG
	IMPLIED_OP_XTHL = ImpliedOp(12) // XTHL
	IMPLIED_OP_SPHL = ImpliedOp(13) // SPHL
	IMPLIED_OP_PCHL = ImpliedOp(14) // PCHL
	IMPLIED_OP_CMA  = ImpliedOp(15) // CMA
	IMPLIED_OP_CMC  = ImpliedOp(16) // CMC
	IMPLIED_OP_STC  = ImpliedOp(17) // STC
	IMPLIED_OP_RLC  = ImpliedOp(18) // RLC
	IMPLIED_OP_RRC  = ImpliedOp(19) // RRC
	IMPLIED_OP_RAL  = ImpliedOp(20) // RAL
	IMPLIED_OP_RAR  = ImpliedOp(21) // RAR
	IMPLIED_OP_DAA  = ImpliedOp(22) // DAA
	IMPLIED_OP_EI   = ImpliedOp(23) // EI
	IMPLIED_OP_DI   = ImpliedOp(24) // DI
)

// RegisterOp is an instruction on a single register.
type RegisterOp int

//go:generate go tool stringer -linecomment -type=RegisterOp
const (
	REGISTER_OP_ADD = RegisterOp(0) // ADD
	REGISTER_OP_ADC = RegisterOp(1) // ADC
	REGISTER_OP_SUB = RegisterOp(2) // SUB
	REGISTER_OP_SBB = RegisterOp(3) // SBB
	REGISTER_OP_ANA = RegisterOp(4) // ANA
	REGISTER_OP_XRA = RegisterOp(5) // XRA
	REGISTER_OP_ORA = RegisterOp(6) // ORA
	REGISTER_OP_CMP = RegisterOp(7) // CMP
	REGISTER_OP_INR = RegisterOp(8) // INR
	REGISTER_OP_DCR = RegisterOp(9) // DCR
)

// PairOp is an instruction on a register pair.
type PairOp int

//go:generate go tool stringer -linecomment -type=PairOp
const (
	PAIR_OP_STAX = PairOp(0) // STAX
	PAIR_OP_LDAX = PairOp(1) // LDAX
	PAIR_OP_DCX  = PairOp(2) // DCX
	PAIR_OP_INX  = PairOp(3) // INX
	PAIR_OP_DAD  = PairOp(4) // DAD
	PAIR_OP_PUSH = PairOp(5) // PUSH
	PAIR_OP_POP  = PairOp(6) // POP
)

// AddressOp is an instruction on a 16-bit address.
type AddressOp int

//go:generate go tool stringer -linecomment -type=AddressOp
const (
	ADDRESS_OP_STA  = AddressOp(0)  // STA
	ADDRESS_OP_LDA  = AddressOp(1)  // LDA
	ADDRESS_OP_SHLD = AddressOp(2)  // SHLD
	ADDRESS_OP_LHLD = AddressOp(3)  // LHLD
	ADDRESS_OP_JMP  = AddressOp(4)  // JMP
	ADDRESS_OP_JNZ  = AddressOp(5)  // JNZ
	ADDRESS_OP_JZ   = AddressOp(6)  // JZ
	ADDRESS_OP_JNC  = AddressOp(7)  // JNC
	ADDRESS_OP_JC   = AddressOp(8)  // JC
	ADDRESS_OP_JPO  = AddressOp(9)  // JPO
	ADDRESS_OP_JPE  = AddressOp(10) // JPE
	ADDRESS_OP_JP   = AddressOp(11) // JP
	ADDRESS_OP_JM   = AddressOp(12) // JM
	ADDRESS_OP_CALL = AddressOp(13) // CALL
	ADDRESS_OP_CNZ  = AddressOp(14) // CNZ
	ADDRESS_OP_CZ   = AddressOp(15) // CZ
	ADDRESS_OP_CNC  = AddressOp(16) // CNC
	ADDRESS_OP_CC   = AddressOp(17) // CC
	ADDRESS_OP_CPO  = AddressOp(18) // CPO
	ADDRESS_OP_CPE  = AddressOp(19) // CPE
	ADDRESS_OP_CP   = AddressOp(20) // CP
	ADDRESS_OP_CM   = AddressOp(21) // CM
)

// ImmediateOp is an instruction on an 8-bit immediate.
type ImmediateOp int

//go:generate go tool stringer -linecomment -type=ImmediateOp
const (
	IMMEDIATE_OP_ADI = ImmediateOp(0) // ADI
	IMMEDIATE_OP_ACI = ImmediateOp(1) // ACI
	IMMEDIATE_OP_SUI = ImmediateOp(2) // SUI
	IMMEDIATE_OP_SBI = ImmediateOp(3) // SBI
	IMMEDIATE_OP_ANI = ImmediateOp(4) // ANI
	IMMEDIATE_OP_XRI = ImmediateOp(5) // XRI
	IMMEDIATE_OP_ORI = ImmediateOp(6) // ORI
	IMMEDIATE_OP_CPI = ImmediateOp(7) // CPI
	IMMEDIATE_OP_IN  = ImmediateOp(8) // IN
	IMMEDIATE_OP_OUT = ImmediateOp(9) // OUT
)

const (
	RST_VECTOR_LIMIT = 7 // Highest restart vector.
)

// Opcode is one instruction and its operands.
//
// The zero Opcode is the end-of-input marker. Opcodes are comparable.
type Opcode struct {
	class Class
	op    int
	reg   Register
	src   Register
	pair  RegisterPair
	value uint16
}

// MakeEof creates the end-of-input marker.
func MakeEof() Opcode {
	return Opcode{class: CLASS_EOF}
}

// MakeImplied creates an instruction without operands.
func MakeImplied(op ImpliedOp) Opcode {
	return Opcode{class: CLASS_IMPLIED, op: int(op)}
}

// MakeRegister creates a single register instruction.
func MakeRegister(op RegisterOp, r Register) (code Opcode, err error) {
	if !r.Valid() {
		err = ErrRegisterInvalid
		return
	}

	code = Opcode{class: CLASS_REGISTER, op: int(op), reg: r}
	return
}

// MakePair creates a register pair instruction.
// STAX and LDAX only take the B and D pairs.
func MakePair(op PairOp, rp RegisterPair) (code Opcode, err error) {
	if !rp.Valid() {
		err = ErrRegisterInvalid
		return
	}

	switch op {
	case PAIR_OP_STAX, PAIR_OP_LDAX:
		if rp != PAIR_B && rp != PAIR_D {
			err = ErrRegisterInvalid
			return
		}
	}

	code = Opcode{class: CLASS_PAIR, op: int(op), pair: rp}
	return
}

// MakeAddress creates an instruction on a 16-bit address.
func MakeAddress(op AddressOp, addr uint16) Opcode {
	return Opcode{class: CLASS_ADDRESS, op: int(op), value: addr}
}

// MakeImmediate creates an instruction on an 8-bit immediate.
func MakeImmediate(op ImmediateOp, value uint8) Opcode {
	return Opcode{class: CLASS_IMMEDIATE, op: int(op), value: uint16(value)}
}

// MakeMove creates a MOV from src to dst.
func MakeMove(dst, src Register) (code Opcode, err error) {
	if !dst.Valid() || !src.Valid() {
		err = ErrRegisterInvalid
		return
	}

	code = Opcode{class: CLASS_MOVE, reg: dst, src: src}
	return
}

// MakeMvi creates an MVI of value into r.
func MakeMvi(r Register, value uint8) (code Opcode, err error) {
	if !r.Valid() {
		err = ErrRegisterInvalid
		return
	}

	code = Opcode{class: CLASS_MVI, reg: r, value: uint16(value)}
	return
}

// MakeLxi creates an LXI of value into rp.
func MakeLxi(rp RegisterPair, value uint16) (code Opcode, err error) {
	if !rp.Valid() {
		err = ErrRegisterInvalid
		return
	}

	code = Opcode{class: CLASS_LXI, pair: rp, value: value}
	return
}

// MakeRst creates an RST to the restart vector.
func MakeRst(vector uint8) (code Opcode, err error) {
	if vector > RST_VECTOR_LIMIT {
		err = ErrVectorRange
		return
	}

	code = Opcode{class: CLASS_RST, value: uint16(vector)}
	return
}

// Class returns the instruction form.
func (code Opcode) Class() Class {
	return code.class
}

// Eof returns true for the end-of-input marker.
func (code Opcode) Eof() bool {
	return code.class == CLASS_EOF
}

// ImpliedDecode returns the op of a CLASS_IMPLIED opcode.
func (code Opcode) ImpliedDecode() ImpliedOp {
	return ImpliedOp(code.op)
}

// RegisterDecode returns the op and register of a CLASS_REGISTER opcode.
func (code Opcode) RegisterDecode() (op RegisterOp, r Register) {
	return RegisterOp(code.op), code.reg
}

// PairDecode returns the op and register pair of a CLASS_PAIR opcode.
func (code Opcode) PairDecode() (op PairOp, rp RegisterPair) {
	return PairOp(code.op), code.pair
}

// AddressDecode returns the op and address of a CLASS_ADDRESS opcode.
func (code Opcode) AddressDecode() (op AddressOp, addr uint16) {
	return AddressOp(code.op), code.value
}

// ImmediateDecode returns the op and immediate of a CLASS_IMMEDIATE opcode.
func (code Opcode) ImmediateDecode() (op ImmediateOp, value uint8) {
	return ImmediateOp(code.op), uint8(code.value)
}

// MoveDecode returns the destination and source of a CLASS_MOVE opcode.
func (code Opcode) MoveDecode() (dst, src Register) {
	return code.reg, code.src
}

// MviDecode returns the register and immediate of a CLASS_MVI opcode.
func (code Opcode) MviDecode() (r Register, value uint8) {
	return code.reg, uint8(code.value)
}

// LxiDecode returns the register pair and immediate of a CLASS_LXI opcode.
func (code Opcode) LxiDecode() (rp RegisterPair, value uint16) {
	return code.pair, code.value
}

// RstDecode returns the restart vector of a CLASS_RST opcode.
func (code Opcode) RstDecode() (vector uint8) {
	return uint8(code.value)
}

// Mnemonic returns the canonical mnemonic text.
func (code Opcode) Mnemonic() string {
	switch code.class {
	case CLASS_IMPLIED:
		return ImpliedOp(code.op).String()
	case CLASS_REGISTER:
		return RegisterOp(code.op).String()
	case CLASS_PAIR:
		return PairOp(code.op).String()
	case CLASS_ADDRESS:
		return AddressOp(code.op).String()
	case CLASS_IMMEDIATE:
		return ImmediateOp(code.op).String()
	case CLASS_MOVE:
		return "MOV"
	case CLASS_MVI:
		return "MVI"
	case CLASS_LXI:
		return "LXI"
	case CLASS_RST:
		return "RST"
	}
	return ""
}

// Operands returns the operands in source order.
func (code Opcode) Operands() (ops []Operand) {
	switch code.class {
	case CLASS_REGISTER:
		ops = []Operand{RegisterOperand(code.reg)}
	case CLASS_PAIR:
		ops = []Operand{PairOperand(code.pair)}
	case CLASS_ADDRESS:
		ops = []Operand{AddressOperand(code.value)}
	case CLASS_IMMEDIATE:
		ops = []Operand{ImmediateOperand(uint8(code.value))}
	case CLASS_MOVE:
		ops = []Operand{RegisterOperand(code.reg), RegisterOperand(code.src)}
	case CLASS_MVI:
		ops = []Operand{RegisterOperand(code.reg), ImmediateOperand(uint8(code.value))}
	case CLASS_LXI:
		ops = []Operand{PairOperand(code.pair), AddressOperand(code.value)}
	case CLASS_RST:
		ops = []Operand{VectorOperand(uint8(code.value))}
	}

	return
}

// String returns the canonical source text of the instruction.
func (code Opcode) String() (out string) {
	out = code.Mnemonic()

	var args string
	for n, op := range code.Operands() {
		if n > 0 {
			args += ","
		}
		args += op.String()
	}

	if len(args) > 0 {
		out = fmt.Sprintf("%v %v", out, args)
	}

	return
}
