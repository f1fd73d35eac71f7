package scanner

import (
	"fmt"

	"github.com/ezrec/i8080/isa"
)

// Token is one scanned instruction.
type Token struct {
	Opcode isa.Opcode
	Lexeme string // Source text of the instruction, shared with the source.
	Line   int    // 1-based line of the instruction.
	Column int    // 0-based offset of the instruction within its line.
}

// Eof returns true for the end-of-input token.
func (tok Token) Eof() bool {
	return tok.Opcode.Eof()
}

func (tok Token) String() string {
	if tok.Eof() {
		return fmt.Sprintf("%d:%d EOF", tok.Line, tok.Column)
	}
	return fmt.Sprintf("%d:%d %v", tok.Line, tok.Column, tok.Opcode)
}
