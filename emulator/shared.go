package emulator

import (
	"sync"

	"github.com/ezrec/emuview/command"
)

// Shared guards the single State instance. Writers and readers both take
// the same exclusive lock, for one command or one snapshot at a time.
type Shared struct {
	mutex sync.Mutex
	state *State
}

// NewShared takes ownership of state.
func NewShared(state *State) *Shared {
	return &Shared{state: state}
}

// With runs fn while holding the lock.
func (sh *Shared) With(fn func(st *State)) {
	sh.mutex.Lock()
	defer sh.mutex.Unlock()

	fn(sh.state)
}

// Apply dispatches one command while holding the lock.
func (sh *Shared) Apply(cmd command.Command) {
	sh.With(func(st *State) {
		cmd.Dispatch(st)
	})
}

// Snapshot copies the state for a renderer.
func (sh *Shared) Snapshot() (snap *Snapshot) {
	sh.With(func(st *State) {
		snap = st.Snapshot()
	})

	return
}
