package boundary

import (
	"errors"

	"github.com/ezrec/emuview/translate"
)

var f = translate.From

var (
	ErrTextEncoding = errors.New(f("text is not valid UTF-8"))
	ErrFormat       = errors.New(f("unknown display format"))
	ErrUnit         = errors.New(f("unknown frequency unit"))
	ErrBufferNil    = errors.New(f("buffer pointer is nil"))
)

// ErrRejected indicates an entry point input that was dropped.
type ErrRejected struct {
	Entry string
	Field string
	Err   error
}

func (err *ErrRejected) Error() string {
	return f("%v: %v rejected: %v", err.Entry, err.Field, err.Err)
}

func (err *ErrRejected) Unwrap() error {
	return err.Err
}
