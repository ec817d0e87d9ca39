package config

import (
	"github.com/ezrec/emuview/translate"
)

var f = translate.From

// ErrIO wraps a failure to read the configuration file.
type ErrIO struct {
	Path string
	Err  error
}

func (err *ErrIO) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrIO) Unwrap() error {
	return err.Err
}

// ErrParse wraps a failure to decode the configuration document.
type ErrParse struct {
	Err error
}

func (err *ErrParse) Error() string {
	return f("configuration: %v", err.Err)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}

// ErrExpression is returned for a register value that is not an
// unsigned integer expression.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not an unsigned integer expression", string(err))
}
