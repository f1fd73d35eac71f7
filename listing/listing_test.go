package listing

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/i8080/isa"
	"github.com/ezrec/i8080/scanner"
)

func mustOpcode(code isa.Opcode, err error) isa.Opcode {
	if err != nil {
		panic(err)
	}
	return code
}

func TestCollect(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"MOV A,B",
		"FOO A,B",
		"MVI A,GG ; bad",
		"  RST 9",
		"HLT",
		"?",
	}

	tokens, errs := Collect(strings.Join(program, "\n"), false)

	if assert.Len(errs, 4) {
		assert.ErrorIs(errs[0], isa.ErrInstructionUnknown)
		assert.ErrorIs(errs[1], isa.ErrNumberInvalid)
		assert.ErrorIs(errs[2], isa.ErrVectorRange)
		assert.ErrorIs(errs[3], isa.ErrCharacterInvalid)

		for n, line := range []int{2, 3, 4, 6} {
			var positioned scanner.Positioned
			if assert.True(errors.As(errs[n], &positioned)) {
				assert.Equal(line, positioned.Pos().Line)
			}
		}
	}

	if assert.Len(tokens, 3) {
		assert.Equal(mustOpcode(isa.MakeMove(isa.REG_A, isa.REG_B)), tokens[0].Opcode)
		assert.Equal(isa.MakeImplied(isa.IMPLIED_OP_HLT), tokens[1].Opcode)
		assert.Equal(5, tokens[1].Line)
		assert.True(tokens[2].Eof())
	}
}

func TestCollectClean(t *testing.T) {
	assert := assert.New(t)

	source := "MOV A,B\nLXI B,1234\n"

	tokens, errs := Collect(source, false)
	assert.Empty(errs)

	expected, err := scanner.ScanAll(source)
	assert.NoError(err)
	assert.Equal(expected, tokens)
}

func TestOptionsScan(t *testing.T) {
	assert := assert.New(t)

	source := "HLT\nFOO\nBAR\nRET\n"

	file := Options{}.Scan("prog.asm", source)
	assert.Equal("prog.asm", file.Path)
	assert.Nil(file.Tokens)
	assert.Len(file.Errs, 1)

	file = Options{KeepGoing: true}.Scan("prog.asm", source)
	assert.Len(file.Errs, 2)
	assert.Len(file.Tokens, 3)
}

func TestScanFiles(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	sources := map[string]string{
		"a.asm": "MVI A,03\nHLT\n",
		"b.asm": "LXI SP,2400\nCALL 0100\nRET\n",
		"c.asm": "MOV A,Q\n",
	}

	var paths []string
	for _, name := range []string{"a.asm", "b.asm", "c.asm"} {
		path := filepath.Join(dir, name)
		assert.NoError(os.WriteFile(path, []byte(sources[name]), 0644))
		paths = append(paths, path)
	}

	files, err := Options{}.ScanFiles(context.Background(), paths...)
	assert.NoError(err)
	if !assert.Len(files, 3) {
		return
	}

	for n, file := range files {
		assert.Equal(paths[n], file.Path)

		expected, scan_err := scanner.ScanAll(file.Source)
		assert.Equal(expected, file.Tokens)
		if scan_err != nil {
			assert.Equal([]error{scan_err}, file.Errs)
		} else {
			assert.Empty(file.Errs)
		}
	}

	assert.Len(files[0].Tokens, 3)
	assert.Len(files[1].Tokens, 4)
	assert.ErrorIs(files[2].Errs[0], isa.ErrRegisterInvalid)
}

func TestScanFilesMissing(t *testing.T) {
	assert := assert.New(t)

	missing := filepath.Join(t.TempDir(), "missing.asm")

	files, err := Options{}.ScanFiles(context.Background(), missing)
	assert.Nil(files)
	assert.ErrorIs(err, os.ErrNotExist)

	var file_err *ErrFile
	if assert.True(errors.As(err, &file_err)) {
		assert.Equal(missing, file_err.Path)
	}
}

func TestScanFilesCanceled(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Options{}.ScanFiles(ctx, "unused.asm")
	assert.ErrorIs(err, context.Canceled)
}

func TestWrite(t *testing.T) {
	assert := assert.New(t)

	file := Options{}.Scan("x.asm", "MOV A, B\n  JMP 0100\n")

	var buf bytes.Buffer
	assert.NoError(Write(&buf, file, nil))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if assert.Len(lines, 2) {
		assert.Equal("x.asm:1:0\tMOV A,B     \tMOV A, B", lines[0])
		assert.Equal("x.asm:2:2\tJMP 0100    \tJMP 0100", lines[1])
	}
}

func TestWriteErrors(t *testing.T) {
	assert := assert.New(t)

	file := Options{KeepGoing: true}.Scan("x.asm", "FOO\nBAR\n")

	var buf bytes.Buffer
	assert.NoError(WriteErrors(&buf, file))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if assert.Len(lines, 2) {
		assert.True(strings.HasPrefix(lines[0], "x.asm: "))
		assert.Contains(lines[0], "FOO")
		assert.Contains(lines[1], "BAR")
	}
}

// failWriter fails every write.
type failWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWriteFailed
}

func TestWriteErrorsFailure(t *testing.T) {
	assert := assert.New(t)

	file := Options{KeepGoing: true}.Scan("x.asm", "FOO\nBAR\n")
	assert.ErrorIs(WriteErrors(failWriter{}, file), errWriteFailed)

	clean := Options{}.Scan("y.asm", "HLT\n")
	assert.NoError(WriteErrors(failWriter{}, clean))
}

func TestWriteCatalog(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(WriteCatalog(&buf))

	text := buf.String()
	assert.Contains(text, "MOV reg,reg")
	assert.Contains(text, "STAX pair-bd")
	assert.Contains(text, "RST vector")
	assert.Equal(78, strings.Count(text, "\n"))
}
