package view

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ezrec/emuview/emulator"
)

// Terminal renders snapshots as text in the terminal. Escape or 'q' quits.
type Terminal struct {
	Interval time.Duration // Refresh period, DEFAULT_REFRESH if zero.

	app  *tview.Application
	text *tview.TextView

	stopOnce sync.Once
}

var _ Renderer = (*Terminal)(nil)

// NewTerminal creates a terminal renderer.
func NewTerminal() (term *Terminal) {
	term = &Terminal{
		app:  tview.NewApplication(),
		text: tview.NewTextView(),
	}

	term.text.SetScrollable(true)
	term.text.SetBorder(true).SetTitle(" emuview ")
	term.app.SetRoot(term.text, true)
	term.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			term.Stop()
			return nil
		}
		return event
	})

	return
}

func (term *Terminal) render(snap *emulator.Snapshot) {
	term.text.SetTitle(" " + snap.Name + " ")
	term.text.SetText(strings.Join(Lines(snap), "\n"))
}

// Run takes over the terminal until Stop.
func (term *Terminal) Run(source Source) (err error) {
	interval := term.Interval
	if interval <= 0 {
		interval = DEFAULT_REFRESH
	}

	term.render(source.Snapshot())

	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				snap := source.Snapshot()
				term.app.QueueUpdateDraw(func() { term.render(snap) })
			}
		}
	}()

	return term.app.Run()
}

// Stop restores the terminal and makes Run return.
func (term *Terminal) Stop() {
	term.stopOnce.Do(term.app.Stop)
}
