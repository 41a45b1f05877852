package emulator

import (
	"errors"

	"github.com/ezrec/stump/translate"
)

var f = translate.From

var (
	ErrExpressionEmpty = errors.New(f("missing expression"))
	ErrExpressionType  = errors.New(f("expression is not an integer"))
)

// ErrCommand indicates the monitor command that failed.
type ErrCommand struct {
	Command string
	Err     error
}

func (err *ErrCommand) Error() string {
	return f("command '%v' %v", err.Command, err.Err)
}

func (err *ErrCommand) Unwrap() error {
	return err.Err
}
