package listing

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/i8080/scanner"
)

func TestCompileEmpty(t *testing.T) {
	assert := assert.New(t)

	flt, err := Compile("")
	assert.NoError(err)
	assert.Nil(flt)

	ok, err := flt.Match(scanner.Token{})
	assert.NoError(err)
	assert.True(ok)
}

func TestCompileErrors(t *testing.T) {
	assert := assert.New(t)

	for _, expr := range []string{
		"mnemonic ==",
		"unknown_name > 1",
		"line +* 2",
	} {
		_, err := Compile(expr)
		var flt_err *ErrFilter
		if assert.ErrorAs(err, &flt_err, expr) {
			assert.Equal(expr, flt_err.Expr)
		}
	}
}

func TestFilterMatch(t *testing.T) {
	assert := assert.New(t)

	tokens, err := scanner.ScanAll("MOV A,B\nMVI C,10\nJMP 0100\n  CALL 2000\nPUSH H\n")
	assert.NoError(err)

	table := []struct {
		expr     string
		expected []bool
	}{
		{`mnemonic == "MOV"`, []bool{true, false, false, false, false}},
		{`mnemonic in ("JMP", "CALL")`, []bool{false, false, true, true, false}},
		{`line > 3`, []bool{false, false, false, true, true}},
		{`column == 2`, []bool{false, false, false, true, false}},
		{`class == "pair"`, []bool{false, false, false, false, true}},
		{`len(operands) == 2`, []bool{true, true, false, false, false}},
		{`"C" in operands`, []bool{false, true, false, false, false}},
		{`text == "MVI C,10"`, []bool{false, true, false, false, false}},
		{`lexeme.startswith("CALL")`, []bool{false, false, false, true, false}},
	}

	for _, entry := range table {
		flt, err := Compile(entry.expr)
		if !assert.NoError(err, entry.expr) {
			continue
		}

		for n, tok := range tokens[:len(tokens)-1] {
			ok, err := flt.Match(tok)
			assert.NoError(err)
			assert.Equal(entry.expected[n], ok, "%v: %v", entry.expr, tok)
		}
	}
}

func TestFilterRuntimeError(t *testing.T) {
	assert := assert.New(t)

	flt, err := Compile(`line / 0`)
	assert.NoError(err)

	tokens, err := scanner.ScanAll("HLT")
	assert.NoError(err)

	_, err = flt.Match(tokens[0])
	var flt_err *ErrFilter
	assert.ErrorAs(err, &flt_err)
}

func TestWriteFiltered(t *testing.T) {
	assert := assert.New(t)

	file := Options{}.Scan("f.asm", "MOV A,B\nHLT\nMOV B,C\n")

	flt, err := Compile(`mnemonic == "MOV"`)
	assert.NoError(err)

	var buf bytes.Buffer
	assert.NoError(Write(&buf, file, flt))
	assert.Equal(2, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.NotContains(buf.String(), "HLT")
}
