package framebuffer

import (
	"sync"
)

// CriticalSection is a lock owned by whoever owns the pixel memory.
// The frame buffer only brackets its copy with Acquire and Release; it
// never creates or destroys the section.
type CriticalSection interface {
	Acquire()
	Release()
}

type lockerSection struct {
	locker sync.Locker
}

func (ls lockerSection) Acquire() { ls.locker.Lock() }
func (ls lockerSection) Release() { ls.locker.Unlock() }

// Locker adapts a sync.Locker into a CriticalSection.
func Locker(locker sync.Locker) CriticalSection {
	return lockerSection{locker: locker}
}

// Funcs adapts a pair of callbacks into a CriticalSection.
type Funcs struct {
	AcquireFunc func()
	ReleaseFunc func()
}

func (fs Funcs) Acquire() {
	if fs.AcquireFunc != nil {
		fs.AcquireFunc()
	}
}

func (fs Funcs) Release() {
	if fs.ReleaseFunc != nil {
		fs.ReleaseFunc()
	}
}

type unsynchronized struct{}

func (unsynchronized) Acquire() {}
func (unsynchronized) Release() {}

// Unsynchronized is used for pixel data already owned by the caller.
var Unsynchronized CriticalSection = unsynchronized{}
