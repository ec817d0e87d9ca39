// Package framebuffer holds a fixed geometry RGBA8 raster that is replaced
// wholesale from externally owned pixel memory.
package framebuffer

import (
	"image"
)

const BYTES_PER_PIXEL = 4 // RGBA8, not premultiplied.

// FrameBuffer is a fixed size RGBA8 image.
//
// The pixel slice is either empty or exactly RequiredLength bytes, and is
// never written after it is installed: Replace always builds a new slice.
type FrameBuffer struct {
	width          int
	height         int
	requiredLength int
	pixels         []byte
}

// New creates an uninitialized frame buffer of the given geometry.
func New(width, height int) *FrameBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &FrameBuffer{
		width:          width,
		height:         height,
		requiredLength: width * height * BYTES_PER_PIXEL,
	}
}

// Width in pixels.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height in pixels.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// RequiredLength is the byte length a replacement must have.
func (fb *FrameBuffer) RequiredLength() int {
	return fb.requiredLength
}

// Initialized returns true once a replacement has been accepted.
func (fb *FrameBuffer) Initialized() bool {
	return len(fb.pixels) != 0
}

// Pixels returns the current pixels. The slice must not be modified.
func (fb *FrameBuffer) Pixels() []byte {
	return fb.pixels
}

// Replace copies data into a fresh image while holding section.
// On a length mismatch the current image is left untouched.
func (fb *FrameBuffer) Replace(data []byte, section CriticalSection) (err error) {
	if len(data) != fb.requiredLength {
		err = &ErrMismatchedBufferSize{
			Expected: fb.requiredLength,
			Received: len(data),
		}
		return
	}

	if section == nil {
		section = Unsynchronized
	}

	pixels := make([]byte, fb.requiredLength)
	section.Acquire()
	copy(pixels, data)
	section.Release()

	fb.pixels = pixels

	return
}

// Clone returns a frame buffer sharing the current, immutable, pixels.
func (fb *FrameBuffer) Clone() *FrameBuffer {
	dup := *fb
	return &dup
}

// Image returns the pixels as an image, or nil when uninitialized.
// The image shares the immutable pixel slice and must not be modified.
func (fb *FrameBuffer) Image() *image.NRGBA {
	if !fb.Initialized() {
		return nil
	}

	return &image.NRGBA{
		Pix:    fb.pixels,
		Stride: fb.width * BYTES_PER_PIXEL,
		Rect:   image.Rect(0, 0, fb.width, fb.height),
	}
}
