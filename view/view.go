// Package view renders snapshots of the shared emulator state.
//
// Renderers are read-only: they take one snapshot per frame through a
// Source and never mutate the state.
package view

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ezrec/emuview/emulator"
)

const (
	DEFAULT_REFRESH = time.Second / 60 // Refresh period of polling renderers.
)

// Source provides snapshots. *emulator.Shared is a Source.
type Source interface {
	Snapshot() *emulator.Snapshot
}

var _ Source = (*emulator.Shared)(nil)

// Renderer displays snapshots until it is closed or fails.
type Renderer interface {
	// Run blocks, rendering from source.
	Run(source Source) error
	// Stop asks a running renderer to return.
	Stop()
}

// New returns the renderer backend of the given name.
func New(backend string) (renderer Renderer, err error) {
	switch backend {
	case "window":
		renderer, err = newWindow()
	case "terminal":
		renderer = NewTerminal()
	case "headless":
		renderer = NewHeadless()
	default:
		err = ErrBackendUnknown(backend)
	}
	return
}

// Lines renders the textual part of a snapshot.
func Lines(snap *emulator.Snapshot) (lines []string) {
	lines = append(lines, snap.Name)

	if snap.Frequency != nil {
		lines = append(lines, fmt.Sprintf("Clock: %v", snap.Frequency.Humanize()))
	}

	for _, group := range snap.Groups {
		lines = append(lines, "", group.Name)
		for _, line := range group.Lines {
			lines = append(lines, "  "+line)
		}
	}

	if snap.Frame != nil {
		size := snap.Frame.Rect.Size()
		lines = append(lines, "", fmt.Sprintf("Frame Buffer: %dx%d (%v)",
			size.X, size.Y, humanize.IBytes(uint64(len(snap.Frame.Pix)))))
	}

	return
}
