package framebuffer

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSection struct {
	held     bool
	acquired int
	released int
}

func (rs *recordingSection) Acquire() {
	rs.held = true
	rs.acquired++
}

func (rs *recordingSection) Release() {
	rs.held = false
	rs.released++
}

func TestFrameBuffer(t *testing.T) {
	assert := assert.New(t)

	fb := New(100, 100)
	assert.Equal(100, fb.Width())
	assert.Equal(100, fb.Height())
	assert.Equal(40000, fb.RequiredLength())
	assert.False(fb.Initialized())
	assert.Nil(fb.Image())
	assert.Len(fb.Pixels(), 0)
}

func TestFrameBuffer_ReplaceMismatched(t *testing.T) {
	assert := assert.New(t)

	fb := New(2, 2)
	prior := bytes.Repeat([]byte{1}, 16)
	assert.NoError(fb.Replace(prior, nil))

	section := &recordingSection{}
	err := fb.Replace(make([]byte, 15), section)

	var mismatch *ErrMismatchedBufferSize
	assert.True(errors.As(err, &mismatch))
	assert.Equal(16, mismatch.Expected)
	assert.Equal(15, mismatch.Received)

	assert.Equal(prior, fb.Pixels())
	assert.Equal(0, section.acquired)

	err = fb.Replace(make([]byte, 17), section)
	assert.Error(err)
	assert.Equal(prior, fb.Pixels())
}

func TestFrameBuffer_Replace(t *testing.T) {
	assert := assert.New(t)

	fb := New(3, 2)
	data := make([]byte, 24)
	for n := range data {
		data[n] = byte(n)
	}

	section := &recordingSection{}
	assert.NoError(fb.Replace(data, section))
	assert.Equal(1, section.acquired)
	assert.Equal(1, section.released)
	assert.False(section.held)

	assert.True(fb.Initialized())
	assert.Equal(data, fb.Pixels())

	// The source is not retained.
	data[0] = 0xff
	assert.Equal(byte(0), fb.Pixels()[0])

	img := fb.Image()
	assert.Equal(3, img.Rect.Dx())
	assert.Equal(2, img.Rect.Dy())
	assert.Equal(12, img.Stride)
	c := img.NRGBAAt(1, 1)
	assert.Equal([]byte{16, 17, 18, 19}, []byte{c.R, c.G, c.B, c.A})
}

func TestFrameBuffer_Clone(t *testing.T) {
	assert := assert.New(t)

	fb := New(1, 1)
	assert.NoError(fb.Replace([]byte{1, 2, 3, 4}, Unsynchronized))

	clone := fb.Clone()
	assert.NoError(fb.Replace([]byte{5, 6, 7, 8}, Unsynchronized))

	assert.Equal([]byte{1, 2, 3, 4}, clone.Pixels())
	assert.Equal([]byte{5, 6, 7, 8}, fb.Pixels())
}

func TestFrameBuffer_ReplaceLocked(t *testing.T) {
	assert := assert.New(t)

	const size = 64 * 64 * BYTES_PER_PIXEL

	var mutex sync.Mutex
	source := make([]byte, size)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for value := byte(1); ; value++ {
			select {
			case <-stop:
				return
			default:
			}
			mutex.Lock()
			for n := range source {
				source[n] = value
			}
			mutex.Unlock()
		}
	}()

	fb := New(64, 64)
	for range 200 {
		assert.NoError(fb.Replace(source, Locker(&mutex)))
		pixels := fb.Pixels()
		assert.Equal(bytes.Repeat(pixels[:1], size), pixels)
	}

	close(stop)
	wg.Wait()
}

func TestFuncs(t *testing.T) {
	assert := assert.New(t)

	var calls []string
	section := Funcs{
		AcquireFunc: func() { calls = append(calls, "acquire") },
		ReleaseFunc: func() { calls = append(calls, "release") },
	}

	fb := New(1, 1)
	assert.NoError(fb.Replace([]byte{9, 9, 9, 9}, section))
	assert.Equal([]string{"acquire", "release"}, calls)

	// Missing callbacks are skipped.
	assert.NoError(fb.Replace([]byte{1, 1, 1, 1}, Funcs{}))
}
