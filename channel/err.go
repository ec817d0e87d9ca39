package channel

import (
	"errors"

	"github.com/ezrec/emuview/translate"
)

var f = translate.From

var (
	ErrChannelFull   = errors.New(f("channel full"))
	ErrChannelClosed = errors.New(f("channel closed"))
)
