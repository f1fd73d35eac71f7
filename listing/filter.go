package listing

import (
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/i8080/scanner"
)

// Names predeclared for filter expressions.
var filterNames = []string{
	"mnemonic", // Canonical mnemonic, "" at end of input.
	"class",    // Instruction form name.
	"line",     // 1-based line.
	"column",   // 0-based column.
	"lexeme",   // Source text of the instruction.
	"text",     // Canonical instruction text.
	"operands", // List of operand texts.
}

// Filter selects tokens with a starlark expression, for example
//
//	mnemonic in ("JMP", "CALL") and line > 10
type Filter struct {
	Expr string

	program *starlark.Program
}

// Compile compiles a filter expression. An empty expression selects every token,
// and compiles to a nil filter.
func Compile(expr string) (flt *Filter, err error) {
	if len(expr) == 0 {
		return
	}

	opts := syntax.FileOptions{}
	isPredeclared := func(name string) bool {
		return slices.Contains(filterNames, name)
	}

	_, prog, err := starlark.SourceProgramOptions(&opts, "filter", "rc=("+expr+")\n", isPredeclared)
	if err != nil {
		err = &ErrFilter{Expr: expr, Err: err}
		return
	}

	flt = &Filter{
		Expr:    expr,
		program: prog,
	}

	return
}

// tokenDict returns the predeclared values for tok.
func tokenDict(tok scanner.Token) starlark.StringDict {
	var operands []starlark.Value
	for _, op := range tok.Opcode.Operands() {
		operands = append(operands, starlark.String(op.String()))
	}

	return starlark.StringDict{
		"mnemonic": starlark.String(tok.Opcode.Mnemonic()),
		"class":    starlark.String(tok.Opcode.Class().String()),
		"line":     starlark.MakeInt(tok.Line),
		"column":   starlark.MakeInt(tok.Column),
		"lexeme":   starlark.String(tok.Lexeme),
		"text":     starlark.String(tok.Opcode.String()),
		"operands": starlark.NewList(operands),
	}
}

// Match evaluates the filter for tok. A nil filter matches every token.
func (flt *Filter) Match(tok scanner.Token) (ok bool, err error) {
	if flt == nil {
		ok = true
		return
	}

	thread := starlark.Thread{Name: "filter"}
	dict, err := flt.program.Init(&thread, tokenDict(tok))
	if err != nil {
		err = &ErrFilter{Expr: flt.Expr, Err: err}
		return
	}

	rc, found := dict["rc"]
	if !found {
		err = &ErrFilter{Expr: flt.Expr, Err: ErrFilterResult}
		return
	}

	ok = bool(rc.Truth())
	return
}
