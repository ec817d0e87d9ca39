package view

import (
	"errors"

	"github.com/ezrec/emuview/translate"
)

var f = translate.From

var (
	ErrBackendUnavailable = errors.New(f("view backend not built in"))
)

// ErrBackendUnknown is returned for an unknown backend name.
type ErrBackendUnknown string

func (err ErrBackendUnknown) Error() string {
	return f("'%v' is not a view backend", string(err))
}
