package listing

import (
	"errors"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	ErrFilterResult = errors.New(f("filter has no result"))
)

// ErrFilter is a filter that failed to compile or evaluate.
type ErrFilter struct {
	Expr string
	Err  error
}

func (err *ErrFilter) Error() string {
	return f("filter '%v' %v", err.Expr, err.Err)
}

func (err *ErrFilter) Unwrap() error {
	return err.Err
}

// ErrFile locates an error in a source file.
type ErrFile struct {
	Path string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}
