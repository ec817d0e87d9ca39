// Package boundary turns calls from a foreign emulator core into commands.
//
// Every entry point copies its inputs into Go owned values before it
// returns, and never reports whether the command is later applied. Invalid
// input is logged and dropped rather than aborting the process.
package boundary

import (
	"bytes"
	"log"
	"sync/atomic"
	"unicode/utf8"

	"github.com/ezrec/emuview/channel"
	"github.com/ezrec/emuview/command"
	"github.com/ezrec/emuview/framebuffer"
	"github.com/ezrec/emuview/frequency"
	"github.com/ezrec/emuview/register"
)

// Boundary owns one sender into the actor's queue.
type Boundary struct {
	Verbose bool // If set, logs every accepted command.

	sender   *channel.Sender[command.Command]
	rejected atomic.Uint64
}

// New creates a boundary sending on sender. The boundary owns the sender.
func New(sender *channel.Sender[command.Command]) *Boundary {
	return &Boundary{sender: sender}
}

// Rejected returns the number of dropped calls.
func (bd *Boundary) Rejected() uint64 {
	return bd.rejected.Load()
}

// Close releases the sender. Later calls are rejected.
func (bd *Boundary) Close() {
	bd.sender.Close()
}

func (bd *Boundary) reject(entry, field string, err error) {
	bd.rejected.Add(1)
	log.Printf("boundary: %v", &ErrRejected{Entry: entry, Field: field, Err: err})
}

func (bd *Boundary) send(entry string, cmd command.Command) {
	if err := bd.sender.Send(cmd); err != nil {
		bd.reject(entry, "command", err)
		return
	}

	if bd.Verbose {
		log.Printf("boundary: %v", cmd)
	}
}

// decodeText copies a foreign string. The text ends at the first NUL.
func decodeText(raw []byte) (text string, err error) {
	if n := bytes.IndexByte(raw, 0); n >= 0 {
		raw = raw[:n]
	}

	if !utf8.Valid(raw) {
		err = ErrTextEncoding
		return
	}

	text = string(raw)
	return
}

func (bd *Boundary) decodeNames(entry string, group, name []byte) (groupText, nameText string, ok bool) {
	var err error

	groupText, err = decodeText(group)
	if err != nil {
		bd.reject(entry, "group", err)
		return
	}

	nameText, err = decodeText(name)
	if err != nil {
		bd.reject(entry, "register", err)
		return
	}

	ok = true
	return
}

// UpdateRegisterValue queues a register value change.
func (bd *Boundary) UpdateRegisterValue(group, name []byte, value uint64) {
	const entry = "update_register_value"

	groupText, nameText, ok := bd.decodeNames(entry, group, name)
	if !ok {
		return
	}

	bd.send(entry, command.UpdateRegisterValue{
		Group:    groupText,
		Register: nameText,
		Value:    value,
	})
}

// UpdateRegisterFormat queues a register display format change.
func (bd *Boundary) UpdateRegisterFormat(group, name []byte, format register.DisplayFormat) {
	const entry = "update_register_format"

	groupText, nameText, ok := bd.decodeNames(entry, group, name)
	if !ok {
		return
	}

	if !format.Valid() {
		bd.reject(entry, "format", ErrFormat)
		return
	}

	bd.send(entry, command.UpdateRegisterFormat{
		Group:    groupText,
		Register: nameText,
		Format:   format,
	})
}

// UpdateFrameBuffer copies data while holding section, then queues the copy.
// The section is not retained past the call.
func (bd *Boundary) UpdateFrameBuffer(data []byte, section framebuffer.CriticalSection) {
	const entry = "update_frame_buffer"

	if section == nil {
		section = framebuffer.Unsynchronized
	}

	owned := make([]byte, len(data))
	section.Acquire()
	copy(owned, data)
	section.Release()

	bd.send(entry, command.UpdateFrameBuffer{
		Data: owned,
		Sync: framebuffer.Unsynchronized,
	})
}

// SetFrequency queues a target clock frequency change.
func (bd *Boundary) SetFrequency(unit frequency.Unit, magnitude float32) {
	const entry = "set_frequency"

	freq, ok := frequency.New(unit, magnitude)
	if !ok {
		bd.reject(entry, "unit", ErrUnit)
		return
	}

	bd.send(entry, command.SetFrequency{Frequency: freq})
}

// Reject records a call dropped before reaching the boundary, such as a
// nil foreign pointer.
func (bd *Boundary) Reject(entry, field string, err error) {
	bd.reject(entry, field, err)
}
