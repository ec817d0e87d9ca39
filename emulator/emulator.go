// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator holds the shared emulator state pushed by a foreign
// emulator core, and the actor that serializes every mutation of it.
package emulator

import (
	"log"

	"github.com/ezrec/emuview/command"
	"github.com/ezrec/emuview/framebuffer"
	"github.com/ezrec/emuview/frequency"
	"github.com/ezrec/emuview/register"
)

const (
	DEFAULT_NAME = "EmuView" // Name used when no configuration is loaded.
)

// State is the emulator state shown by the inspector.
type State struct {
	Verbose bool // If set, enables verbose logging.

	Name         string                   // Display name.
	RegisterSets map[string]*register.Set // Register groups, by name.
	FrameBuffer  *framebuffer.FrameBuffer // Optional frame buffer.
	Frequency    *frequency.Frequency     // Optional target clock frequency.
}

var _ command.Handler = (*State)(nil)

// NewState creates an empty state.
func NewState(name string) (st *State) {
	st = &State{
		Name:         name,
		RegisterSets: map[string]*register.Set{},
	}

	return
}

// TestState creates the built-in demonstration state.
func TestState() (st *State) {
	st = NewState(DEFAULT_NAME)

	gp := register.NewSet()
	gp.Add("R1", register.NewRegister(0x1234, register.FORMAT_HEX, 16))
	gp.Add("R2", register.NewRegister(0x5678, register.FORMAT_OCTAL, 16))
	st.RegisterSets["General Purpose"] = gp

	st.FrameBuffer = framebuffer.New(100, 100)

	return
}

// ResolveRegister returns the register named by group and name.
func (st *State) ResolveRegister(group, name string) (reg *register.Register, ok bool) {
	set, ok := st.RegisterSets[group]
	if !ok {
		return
	}

	return set.Get(name)
}

// HandleRegisterValue sets a register value. Unknown registers are ignored.
func (st *State) HandleRegisterValue(cmd command.UpdateRegisterValue) {
	reg, ok := st.ResolveRegister(cmd.Group, cmd.Register)
	if !ok {
		return
	}

	reg.Value = cmd.Value
}

// HandleRegisterFormat sets a register format. Unknown registers are ignored.
func (st *State) HandleRegisterFormat(cmd command.UpdateRegisterFormat) {
	reg, ok := st.ResolveRegister(cmd.Group, cmd.Register)
	if !ok {
		return
	}

	reg.UpdateDisplayFormat(cmd.Format)
}

// HandleFrameBuffer replaces the frame buffer pixels. Failures are logged
// and the command is dropped.
func (st *State) HandleFrameBuffer(cmd command.UpdateFrameBuffer) {
	var err error
	if st.FrameBuffer == nil {
		err = ErrFrameBufferMissing
	} else {
		err = st.FrameBuffer.Replace(cmd.Data, cmd.Sync)
	}

	if err != nil {
		log.Printf("emulator: %v", &ErrCommand{Command: cmd, Err: err})
	}
}

// HandleFrequency replaces the target clock frequency.
func (st *State) HandleFrequency(cmd command.SetFrequency) {
	freq := cmd.Frequency
	st.Frequency = &freq
}
