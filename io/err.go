package io

import (
	"errors"

	"github.com/ezrec/stump/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageFull  = errors.New(f("image larger than memory"))
	ErrImageDigit = errors.New(f("not a binary digit"))
	ErrImageWidth = errors.New(f("more than 16 digits"))
)

// ErrSyntax locates an error in a memory image.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
