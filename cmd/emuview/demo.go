package main

import (
	"sync"
	"time"

	"github.com/ezrec/emuview/boundary"
	"github.com/ezrec/emuview/emulator"
	"github.com/ezrec/emuview/framebuffer"
	"github.com/ezrec/emuview/frequency"
	"github.com/ezrec/emuview/register"
)

// demoProducer plays the part of a foreign emulator core.
type demoProducer struct {
	boundary *boundary.Boundary
	done     chan struct{}
	stopOnce sync.Once

	group    string
	names    []string
	width    int
	height   int
	mutex    sync.Mutex
	pixels   []byte
	interval time.Duration
}

// describe picks the registers and frame geometry to drive.
func (dp *demoProducer) describe(st *emulator.State) {
	for group, set := range st.RegisterSets {
		dp.group = group
		for name := range set.All() {
			dp.names = append(dp.names, name)
		}
		break
	}

	if st.FrameBuffer != nil {
		dp.width = st.FrameBuffer.Width()
		dp.height = st.FrameBuffer.Height()
	}
	dp.pixels = make([]byte, dp.width*dp.height*framebuffer.BYTES_PER_PIXEL)

	if dp.interval == 0 {
		dp.interval = time.Second / 60
	}
}

// paint fills the pixels with a gradient that scrolls with tick.
func (dp *demoProducer) paint(tick int) {
	dp.mutex.Lock()
	defer dp.mutex.Unlock()

	for y := range dp.height {
		for x := range dp.width {
			n := (y*dp.width + x) * framebuffer.BYTES_PER_PIXEL
			dp.pixels[n+0] = byte(x + tick)
			dp.pixels[n+1] = byte(y + tick)
			dp.pixels[n+2] = byte(tick)
			dp.pixels[n+3] = 0xff
		}
	}
}

// step sends one frame worth of updates.
func (dp *demoProducer) step(tick int) {
	group := []byte(dp.group)
	for n, name := range dp.names {
		dp.boundary.UpdateRegisterValue(group, []byte(name), uint64(tick*(n+1)))
		if tick%120 == 0 {
			format := register.DisplayFormat((tick / 120) % 4)
			dp.boundary.UpdateRegisterFormat(group, []byte(name), format)
		}
	}

	if len(dp.pixels) != 0 {
		dp.paint(tick)
		dp.boundary.UpdateFrameBuffer(dp.pixels, framebuffer.Locker(&dp.mutex))
	}
}

func (dp *demoProducer) run() {
	dp.boundary.SetFrequency(frequency.UNIT_MHZ, 4.194304)

	ticker := time.NewTicker(dp.interval)
	defer ticker.Stop()

	for tick := 0; ; tick++ {
		select {
		case <-dp.done:
			return
		case <-ticker.C:
			dp.step(tick)
		}
	}
}

func (dp *demoProducer) stop() {
	dp.stopOnce.Do(func() { close(dp.done) })
}
