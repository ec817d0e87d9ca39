//go:build !headless

package view

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	windowMargin     = 8
	windowLineHeight = 14
)

var (
	windowBackground = color.RGBA{24, 24, 24, 255}
	windowForeground = color.RGBA{220, 220, 220, 255}
)

// Window renders snapshots in a native window.
type Window struct {
	Title  string
	Width  int
	Height int

	source  Source
	frame   *ebiten.Image
	staging *image.RGBA
	closing atomic.Bool
}

var _ Renderer = (*Window)(nil)

func newWindow() (Renderer, error) {
	return NewWindow(), nil
}

// NewWindow creates a window renderer with a default geometry.
func NewWindow() *Window {
	return &Window{
		Title:  "EmuView",
		Width:  640,
		Height: 480,
	}
}

// Run opens the window and renders until it is closed. It must be called
// from the main goroutine.
func (w *Window) Run(source Source) (err error) {
	w.source = source

	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)

	err = ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return
}

// Stop closes the window on the next update.
func (w *Window) Stop() {
	w.closing.Store(true)
}

func (w *Window) Update() error {
	if w.closing.Load() {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.source.Snapshot()

	screen.Fill(windowBackground)

	face := basicfont.Face7x13
	y := windowMargin + windowLineHeight
	for _, line := range Lines(snap) {
		text.Draw(screen, line, face, windowMargin, y, windowForeground)
		y += windowLineHeight
	}

	if snap.Frame == nil {
		return
	}

	// Frame pixels are not premultiplied; ebiten wants premultiplied.
	bounds := snap.Frame.Rect
	if w.staging == nil || w.staging.Rect != bounds {
		if w.frame != nil {
			w.frame.Deallocate()
		}
		w.staging = image.NewRGBA(bounds)
		w.frame = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	draw.Draw(w.staging, bounds, snap.Frame, bounds.Min, draw.Src)
	w.frame.WritePixels(w.staging.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(windowMargin, float64(y))
	screen.DrawImage(w.frame, op)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.Width, w.Height
}
