package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/emuview/emulator"
	"github.com/ezrec/emuview/framebuffer"
	"github.com/ezrec/emuview/frequency"
)

func testShared(t *testing.T) *emulator.Shared {
	st := emulator.TestState()
	st.FrameBuffer = framebuffer.New(2, 1)
	assert.NoError(t, st.FrameBuffer.Replace(make([]byte, 8), nil))
	freq := frequency.MHz(1)
	st.Frequency = &freq
	return emulator.NewShared(st)
}

func TestLines(t *testing.T) {
	assert := assert.New(t)

	lines := Lines(testShared(t).Snapshot())
	assert.Equal([]string{
		emulator.DEFAULT_NAME,
		"Clock: 1 MHz",
		"",
		"General Purpose",
		"  R1: 0x1234",
		"  R2: 0o053170",
		"",
		"Frame Buffer: 2x1 (8 B)",
	}, lines)

	lines = Lines(emulator.NewShared(emulator.NewState("bare")).Snapshot())
	assert.Equal([]string{"bare"}, lines)
}

func TestNew(t *testing.T) {
	assert := assert.New(t)

	renderer, err := New("headless")
	assert.NoError(err)
	assert.IsType(&Headless{}, renderer)

	renderer, err = New("terminal")
	assert.NoError(err)
	assert.IsType(&Terminal{}, renderer)

	_, err = New("hologram")
	assert.Equal(ErrBackendUnknown("hologram"), err)
}

func TestHeadless_Frames(t *testing.T) {
	assert := assert.New(t)

	var names []string
	h := NewHeadless()
	h.Interval = time.Millisecond
	h.Frames = 3
	h.OnFrame = func(snap *emulator.Snapshot) {
		names = append(names, snap.Name)
	}

	assert.NoError(h.Run(testShared(t)))
	assert.Equal(uint64(3), h.FrameCount())
	assert.Equal([]string{emulator.DEFAULT_NAME, emulator.DEFAULT_NAME, emulator.DEFAULT_NAME}, names)
}

func TestHeadless_Stop(t *testing.T) {
	assert := assert.New(t)

	h := NewHeadless()
	h.Interval = time.Millisecond

	done := make(chan error)
	go func() {
		done <- h.Run(testShared(t))
	}()

	time.Sleep(10 * time.Millisecond)
	h.Stop()
	h.Stop()

	assert.NoError(<-done)
	assert.NotZero(h.FrameCount())
}

func TestTerminal_Render(t *testing.T) {
	assert := assert.New(t)

	term := NewTerminal()
	term.render(testShared(t).Snapshot())

	text := term.text.GetText(true)
	assert.Contains(text, "R1: 0x1234")
	assert.Contains(text, "Clock: 1 MHz")
	assert.Equal(" "+emulator.DEFAULT_NAME+" ", term.text.GetTitle())
}
