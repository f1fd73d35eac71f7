// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package scanner converts 8080 assembly source into instruction tokens.
//
// Each source line holds at most one instruction: a mnemonic, then its
// operands separated by commas. Horizontal whitespace after the mnemonic and
// around commas is insignificant, and a ';' starts a comment that runs to the
// end of the line.
package scanner

import (
	"iter"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/i8080/internal"
	"github.com/ezrec/i8080/isa"
)

// Scanner is a single pass cursor over one source text.
type Scanner struct {
	Verbose bool // If set, logs each scanned token.

	source    string
	start     int // Offset of the current token.
	current   int // Offset of the next unread byte.
	line      int // Line of the next unread byte.
	lineStart int // Offset of the first byte of line.
}

// field is the raw text of one operand.
type field struct {
	text   string
	offset int
}

// New creates a scanner over source.
func New(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// ScanAll scans the whole source, stopping at the first error.
// On success the last token is the end-of-input token.
func ScanAll(source string) (tokens []Token, err error) {
	scanner := New(source)
	for tok, scan_err := range scanner.Tokens() {
		if scan_err != nil {
			err = scan_err
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	return
}

// Tokens yields tokens up to and including the end-of-input token,
// or up to the first error.
func (s *Scanner) Tokens() iter.Seq2[Token, error] {
	var steps iter.Seq2[Token, error] = func(yield func(Token, error) bool) {
		for yield(s.Next()) {
		}
	}

	return internal.IterSeqUntil(steps, func(tok Token, err error) bool {
		return err != nil || tok.Eof()
	})
}

// Next scans one token. Once the source is exhausted it returns the
// end-of-input token on every call.
func (s *Scanner) Next() (tok Token, err error) {
	s.skipBlank()

	s.start = s.current
	pos := s.position(s.start)

	if s.atEnd() {
		tok = Token{Opcode: isa.MakeEof(), Line: pos.Line, Column: pos.Column}
		return
	}

	c := s.peek()
	if !isAlpha(c) {
		err = &ErrUnexpectedCharacter{Position: pos, Found: c}
		return
	}

	for isAlpha(s.peek()) {
		s.advance()
	}
	mnemonic := s.source[s.start:s.current]

	form, ok := isa.Lookup(mnemonic)
	if !ok {
		err = &ErrUnknownInstruction{Position: pos, Mnemonic: mnemonic}
		return
	}

	operand_start := s.current
	fields, end, joined, err := s.scanFields()
	if err != nil {
		return
	}

	shape_err := func() error {
		got := strings.TrimSpace(s.source[operand_start:s.current])
		return &ErrInvalidOperandShape{Position: pos, Mnemonic: mnemonic, Got: got}
	}

	// A missing operand around a comma leaves an empty field.
	empty := slices.ContainsFunc(fields, func(fld field) bool { return len(fld.text) == 0 })
	if joined || empty || len(fields) != len(form.Operands) {
		err = shape_err()
		return
	}

	ops := make([]isa.Operand, len(fields))
	for n, kind := range form.Operands {
		ops[n], err = s.operand(kind, fields[n])
		if err != nil {
			return
		}
	}

	code, err := form.Resolve(ops...)
	if err != nil {
		err = shape_err()
		return
	}

	tok = Token{
		Opcode: code,
		Lexeme: s.source[s.start:end],
		Line:   pos.Line,
		Column: pos.Column,
	}

	if s.Verbose {
		log.Printf("%v: %v\n", pos, tok.Lexeme)
	}

	return
}

// SkipLine moves the cursor past the next line terminator, discarding the
// rest of the current line. It is used to resume after an error.
func (s *Scanner) SkipLine() {
	for !s.atEnd() && s.peek() != '\n' {
		s.advance()
	}
	if !s.atEnd() {
		s.newline()
	}
}

// scanFields scans the comma separated operands following a mnemonic.
// end is the offset just past the last operand character, and joined is
// set when two operands are separated only by whitespace.
func (s *Scanner) scanFields() (fields []field, end int, joined bool, err error) {
	end = s.current

	s.skipSpace()
	if s.atEndOfLine() {
		return
	}

	for {
		start := s.current
		for isAlnum(s.peek()) {
			s.advance()
		}
		fields = append(fields, field{text: s.source[start:s.current], offset: start})
		end = s.current

		s.skipSpace()
		if isAlnum(s.peek()) {
			joined = true
			continue
		}
		if s.peek() != ',' {
			break
		}
		s.advance()
		end = s.current
		s.skipSpace()
	}

	if !s.atEndOfLine() {
		err = &ErrUnexpectedCharacter{Position: s.position(s.current), Found: s.peek()}
	}

	return
}

// operand resolves one operand field as the kind the form expects.
func (s *Scanner) operand(kind isa.OperandKind, fld field) (op isa.Operand, err error) {
	switch kind {
	case isa.OPERAND_REGISTER:
		for n := range len(fld.text) {
			c := fld.text[n]
			if n > 0 || !isa.RegisterFromChar(c).Valid() {
				err = &ErrMalformedRegister{Position: s.position(fld.offset + n), Char: c, Text: fld.text}
				return
			}
		}
		op = isa.RegisterOperand(isa.RegisterFromChar(fld.text[0]))
	case isa.OPERAND_PAIR, isa.OPERAND_PAIR_BD:
		rp, ok := isa.RegisterPairFromString(fld.text)
		if kind == isa.OPERAND_PAIR_BD && rp != isa.PAIR_B && rp != isa.PAIR_D {
			ok = false
		}
		if !ok {
			err = &ErrMalformedRegister{Position: s.position(fld.offset), Char: fld.text[0], Text: fld.text}
			return
		}
		op = isa.PairOperand(rp)
	case isa.OPERAND_IMM8, isa.OPERAND_ADDR16:
		var value uint16
		value, err = s.number(kind.Digits(), fld)
		if err != nil {
			return
		}
		if kind == isa.OPERAND_IMM8 {
			op = isa.ImmediateOperand(uint8(value))
		} else {
			op = isa.AddressOperand(value)
		}
	case isa.OPERAND_VECTOR:
		if !isDecimal(fld.text) {
			err = &ErrMalformedNumericOperand{Position: s.position(fld.offset), Text: fld.text}
			return
		}
		vector, perr := strconv.ParseUint(fld.text, 10, 8)
		if perr != nil || vector > isa.RST_VECTOR_LIMIT {
			err = &ErrOutOfRangeRestartVector{Position: s.position(fld.offset), Digit: fld.text}
			return
		}
		op = isa.VectorOperand(uint8(vector))
	}

	return
}

// number parses a fixed width hex operand, with an optional 'H' suffix.
func (s *Scanner) number(digits int, fld field) (value uint16, err error) {
	text := fld.text
	if len(text) == digits+1 && (text[digits] == 'H' || text[digits] == 'h') {
		text = text[:digits]
	}

	v64, perr := strconv.ParseUint(text, 16, digits*4)
	if len(text) != digits || !isHex(text) || perr != nil {
		err = &ErrMalformedNumericOperand{Position: s.position(fld.offset), Text: fld.text}
		return
	}

	value = uint16(v64)
	return
}

// position returns the position of offset on the current line.
func (s *Scanner) position(offset int) Position {
	return Position{
		Line:   s.line,
		Column: offset - s.lineStart,
		Offset: offset,
	}
}

// skipBlank skips whitespace, line terminators, and comments.
func (s *Scanner) skipBlank() {
	for !s.atEnd() {
		switch c := s.peek(); {
		case c == '\n':
			s.newline()
		case isSpace(c):
			s.advance()
		case c == ';':
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

// skipSpace skips horizontal whitespace.
func (s *Scanner) skipSpace() {
	for !s.atEnd() && isSpace(s.peek()) {
		s.advance()
	}
}

// newline consumes a line terminator.
func (s *Scanner) newline() {
	s.advance()
	s.line++
	s.lineStart = s.current
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.source)
}

// atEndOfLine is true at a line terminator, a comment, or the end of input.
func (s *Scanner) atEndOfLine() bool {
	if s.atEnd() {
		return true
	}
	c := s.peek()
	return c == '\n' || c == ';'
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isDecimal(text string) bool {
	for n := range len(text) {
		if !isDigit(text[n]) {
			return false
		}
	}
	return len(text) > 0
}

func isHex(text string) bool {
	for n := range len(text) {
		c := text[n]
		if !isDigit(c) && !(c >= 'a' && c <= 'f') && !(c >= 'A' && c <= 'F') {
			return false
		}
	}
	return len(text) > 0
}
