// Package command defines the closed set of state mutations sent from the
// foreign boundary to the actor.
package command

import (
	"fmt"

	"github.com/ezrec/emuview/framebuffer"
	"github.com/ezrec/emuview/frequency"
	"github.com/ezrec/emuview/register"
)

// Handler applies commands. Every command variant has exactly one method
// here, so a new variant fails to compile until every handler covers it.
type Handler interface {
	HandleRegisterValue(cmd UpdateRegisterValue)
	HandleRegisterFormat(cmd UpdateRegisterFormat)
	HandleFrameBuffer(cmd UpdateFrameBuffer)
	HandleFrequency(cmd SetFrequency)
}

// Command is a mutation intent. The set of implementations is closed.
type Command interface {
	fmt.Stringer
	// Dispatch calls the handler method matching the command.
	Dispatch(handler Handler)

	sealed()
}

// UpdateRegisterValue sets the value of group/register.
type UpdateRegisterValue struct {
	Group    string
	Register string
	Value    uint64
}

// UpdateRegisterFormat sets the display format of group/register.
type UpdateRegisterFormat struct {
	Group    string
	Register string
	Format   register.DisplayFormat
}

// UpdateFrameBuffer replaces the frame buffer pixels. Data is copied while
// Sync is held.
type UpdateFrameBuffer struct {
	Data []byte
	Sync framebuffer.CriticalSection
}

// SetFrequency replaces the target clock frequency.
type SetFrequency struct {
	Frequency frequency.Frequency
}

var (
	_ Command = UpdateRegisterValue{}
	_ Command = UpdateRegisterFormat{}
	_ Command = UpdateFrameBuffer{}
	_ Command = SetFrequency{}
)

func (cmd UpdateRegisterValue) Dispatch(handler Handler)  { handler.HandleRegisterValue(cmd) }
func (cmd UpdateRegisterFormat) Dispatch(handler Handler) { handler.HandleRegisterFormat(cmd) }
func (cmd UpdateFrameBuffer) Dispatch(handler Handler)    { handler.HandleFrameBuffer(cmd) }
func (cmd SetFrequency) Dispatch(handler Handler)         { handler.HandleFrequency(cmd) }

func (UpdateRegisterValue) sealed()  {}
func (UpdateRegisterFormat) sealed() {}
func (UpdateFrameBuffer) sealed()    {}
func (SetFrequency) sealed()         {}

func (cmd UpdateRegisterValue) String() string {
	return fmt.Sprintf("value %v/%v = 0x%x", cmd.Group, cmd.Register, cmd.Value)
}

func (cmd UpdateRegisterFormat) String() string {
	return fmt.Sprintf("format %v/%v = %v", cmd.Group, cmd.Register, cmd.Format)
}

func (cmd UpdateFrameBuffer) String() string {
	return fmt.Sprintf("frame buffer %d bytes", len(cmd.Data))
}

func (cmd SetFrequency) String() string {
	return fmt.Sprintf("frequency %v", cmd.Frequency)
}
