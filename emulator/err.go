package emulator

import (
	"errors"

	"github.com/ezrec/emuview/command"
	"github.com/ezrec/emuview/translate"
)

var f = translate.From

var (
	ErrFrameBufferMissing = errors.New(f("no frame buffer"))
)

// ErrCommand indicates the command that failed to apply.
type ErrCommand struct {
	Command command.Command
	Err     error
}

func (err *ErrCommand) Error() string {
	return f("%v: %v", err.Command, err.Err)
}

func (err *ErrCommand) Unwrap() error {
	return err.Err
}
