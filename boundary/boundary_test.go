package boundary

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/emuview/channel"
	"github.com/ezrec/emuview/command"
	"github.com/ezrec/emuview/framebuffer"
	"github.com/ezrec/emuview/frequency"
	"github.com/ezrec/emuview/register"
)

type countingSection struct {
	held     bool
	acquired int
}

func (cs *countingSection) Acquire() {
	cs.held = true
	cs.acquired++
}

func (cs *countingSection) Release() {
	cs.held = false
}

func drain(bd *Boundary, receiver *channel.Receiver[command.Command]) []command.Command {
	bd.Close()
	return slices.Collect(receiver.All())
}

func TestBoundary_Register(t *testing.T) {
	assert := assert.New(t)

	sender, receiver := channel.New[command.Command](channel.Options{})
	bd := New(sender)

	group := []byte("General Purpose\x00")
	name := []byte("R1\x00garbage")
	bd.UpdateRegisterValue(group, name, 0x1000)
	bd.UpdateRegisterFormat(group, name, register.FORMAT_DECIMAL)

	// Inputs are copied before returning.
	group[0] = 'X'

	assert.Equal([]command.Command{
		command.UpdateRegisterValue{Group: "General Purpose", Register: "R1", Value: 0x1000},
		command.UpdateRegisterFormat{Group: "General Purpose", Register: "R1", Format: register.FORMAT_DECIMAL},
	}, drain(bd, receiver))
	assert.Equal(uint64(0), bd.Rejected())
}

func TestBoundary_Rejects(t *testing.T) {
	assert := assert.New(t)

	sender, receiver := channel.New[command.Command](channel.Options{})
	bd := New(sender)

	bad := []byte{0xff, 0xfe, 0x00}
	bd.UpdateRegisterValue(bad, []byte("R1"), 1)
	bd.UpdateRegisterValue([]byte("GP"), bad, 1)
	bd.UpdateRegisterFormat([]byte("GP"), []byte("R1"), register.DisplayFormat(17))
	bd.SetFrequency(frequency.Unit(9), 1)

	assert.Empty(drain(bd, receiver))
	assert.Equal(uint64(4), bd.Rejected())

	// Calls after close are rejected too.
	bd.UpdateRegisterValue([]byte("GP"), []byte("R1"), 1)
	assert.Equal(uint64(5), bd.Rejected())
}

func TestBoundary_FrameBuffer(t *testing.T) {
	assert := assert.New(t)

	sender, receiver := channel.New[command.Command](channel.Options{})
	bd := New(sender)

	data := []byte{1, 2, 3, 4}
	section := &countingSection{}
	bd.UpdateFrameBuffer(data, section)
	data[0] = 99

	assert.Equal(1, section.acquired)
	assert.False(section.held)

	cmds := drain(bd, receiver)
	assert.Len(cmds, 1)
	update, ok := cmds[0].(command.UpdateFrameBuffer)
	assert.True(ok)
	assert.Equal([]byte{1, 2, 3, 4}, update.Data)
	assert.Equal(framebuffer.Unsynchronized, update.Sync)
}

func TestBoundary_Frequency(t *testing.T) {
	assert := assert.New(t)

	sender, receiver := channel.New[command.Command](channel.Options{})
	bd := New(sender)

	bd.SetFrequency(frequency.UNIT_MHZ, 4.194304)

	assert.Equal([]command.Command{
		command.SetFrequency{Frequency: frequency.MHz(4.194304)},
	}, drain(bd, receiver))
}

func TestErrRejected(t *testing.T) {
	assert := assert.New(t)

	err := error(&ErrRejected{Entry: "set_frequency", Field: "unit", Err: ErrUnit})
	assert.True(errors.Is(err, ErrUnit))
	assert.Equal("set_frequency: unit rejected: unknown frequency unit", err.Error())
}
