package view

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/ezrec/emuview/emulator"
)

// Headless polls snapshots without displaying them.
type Headless struct {
	Interval time.Duration            // Poll period, DEFAULT_REFRESH if zero.
	Frames   uint64                   // Stop after this many frames, 0 to run until Stop.
	OnFrame  func(*emulator.Snapshot) // Optional per frame callback.

	frames   atomic.Uint64
	stop     chan struct{}
	stopOnce sync.Once
}

var _ Renderer = (*Headless)(nil)

// NewHeadless creates a headless renderer.
func NewHeadless() *Headless {
	return &Headless{stop: make(chan struct{})}
}

// Run polls source until Stop, or until Frames snapshots were taken.
func (h *Headless) Run(source Source) (err error) {
	interval := h.Interval
	if interval <= 0 {
		interval = DEFAULT_REFRESH
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		snap := source.Snapshot()
		if h.OnFrame != nil {
			h.OnFrame(snap)
		}
		if frames := h.frames.Add(1); h.Frames != 0 && frames >= h.Frames {
			return
		}

		select {
		case <-h.stop:
			return
		case <-ticker.C:
		}
	}
}

// Stop makes Run return.
func (h *Headless) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
}

// FrameCount returns the number of snapshots taken.
func (h *Headless) FrameCount() uint64 {
	return h.frames.Load()
}
