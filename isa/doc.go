// Package isa is the instruction catalog for the Intel 8080 mnemonic language.
//
// Every instruction form belongs to a Class. Each class with more than one
// mnemonic has its own op type (ImpliedOp, RegisterOp, PairOp, AddressOp,
// ImmediateOp), and an Opcode can only be made through the constructor for
// its class. Constructors that take registers reject anything outside the
// register set, so an Opcode never carries operands its form disallows.
//
// The catalog maps canonical uppercase mnemonic text to a Form, which lists
// the operand kinds the form expects, and resolves scanned operands into an
// Opcode.
package isa
