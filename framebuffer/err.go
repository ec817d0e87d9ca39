package framebuffer

import (
	"github.com/ezrec/emuview/translate"
)

var f = translate.From

// ErrMismatchedBufferSize is returned when replacement pixels do not cover
// exactly the frame buffer geometry.
type ErrMismatchedBufferSize struct {
	Expected int
	Received int
}

func (err *ErrMismatchedBufferSize) Error() string {
	return f("received buffer of length %v, expected length %v", err.Received, err.Expected)
}
