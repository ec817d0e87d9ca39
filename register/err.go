package register

import (
	"github.com/ezrec/emuview/translate"
)

var f = translate.From

// ErrFormatInvalid is returned for an unknown display format name.
type ErrFormatInvalid string

func (err ErrFormatInvalid) Error() string {
	return f("'%v' is not a display format", string(err))
}
