package listing

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/i8080/isa"
	"github.com/ezrec/i8080/scanner"
)

// Options control how sources are scanned.
type Options struct {
	Verbose   bool // If set, logs each scanned token.
	KeepGoing bool // If set, skips bad lines and reports every error.
}

// File is the scan result of one source.
type File struct {
	Path   string          // Source path, "-" for standard input.
	Source string          // Source text; token lexemes refer into it.
	Tokens []scanner.Token // Tokens, ending with the end-of-input token unless scanning failed.
	Errs   []error         // Scan errors, in source order.
}

// Collect scans source, skipping the rest of any line that fails to scan.
// The tokens always end with the end-of-input token.
func Collect(source string, verbose bool) (tokens []scanner.Token, errs []error) {
	scan := scanner.New(source)
	scan.Verbose = verbose

	for {
		tok, err := scan.Next()
		if err != nil {
			errs = append(errs, err)
			scan.SkipLine()
			continue
		}

		tokens = append(tokens, tok)
		if tok.Eof() {
			return
		}
	}
}

// Scan scans one source.
func (opts Options) Scan(path string, source string) (file *File) {
	file = &File{
		Path:   path,
		Source: source,
	}

	if opts.KeepGoing {
		file.Tokens, file.Errs = Collect(source, opts.Verbose)
		return
	}

	scan := scanner.New(source)
	scan.Verbose = opts.Verbose
	for tok, err := range scan.Tokens() {
		if err != nil {
			file.Tokens = nil
			file.Errs = []error{err}
			break
		}
		file.Tokens = append(file.Tokens, tok)
	}

	return
}

// readSource reads a path, or standard input for "-".
func readSource(path string) (source string, err error) {
	var data []byte
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return
	}

	source = string(data)
	return
}

// ScanFiles reads and scans each path with its own scanner, in parallel.
// Files are returned in path order. The error is only set for I/O failures;
// scan errors are in each File.
func (opts Options) ScanFiles(ctx context.Context, paths ...string) (files []*File, err error) {
	files = make([]*File, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	for n, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			source, err := readSource(path)
			if err != nil {
				return &ErrFile{Path: path, Err: err}
			}

			files[n] = opts.Scan(path, source)
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		files = nil
	}

	return
}

// Write prints the tokens of file selected by flt, one per line.
func Write(w io.Writer, file *File, flt *Filter) (err error) {
	for _, tok := range file.Tokens {
		if tok.Eof() {
			continue
		}

		var ok bool
		ok, err = flt.Match(tok)
		if err != nil {
			err = &ErrFile{Path: file.Path, Err: err}
			return
		}
		if !ok {
			continue
		}

		_, err = fmt.Fprintf(w, "%v:%d:%d\t%-12v\t%v\n", file.Path, tok.Line, tok.Column, tok.Opcode, tok.Lexeme)
		if err != nil {
			return
		}
	}

	return
}

// WriteErrors prints the scan errors of file, one per line.
func WriteErrors(w io.Writer, file *File) (err error) {
	for _, scan_err := range file.Errs {
		_, err = fmt.Fprintln(w, &ErrFile{Path: file.Path, Err: scan_err})
		if err != nil {
			return
		}
	}

	return
}

// WriteCatalog prints every instruction form of the catalog.
func WriteCatalog(w io.Writer) (err error) {
	for form := range isa.Forms() {
		_, err = fmt.Fprintf(w, "%-10v\t%v\n", form.Class, form)
		if err != nil {
			return
		}
	}

	return
}
