package emulator

import (
	"image"

	"github.com/ezrec/emuview/frequency"
	"github.com/ezrec/emuview/internal"
)

// GroupSnapshot is the rendered text of one register set.
type GroupSnapshot struct {
	Name  string
	Lines []string
}

// Snapshot is an immutable copy of State, taken for display.
type Snapshot struct {
	Name      string
	Groups    []GroupSnapshot      // Sorted by name.
	Frame     *image.NRGBA         // Nil without an initialized frame buffer.
	Frequency *frequency.Frequency // Nil without a target frequency.
}

// Snapshot copies the state. The caller must hold the lock guarding st.
func (st *State) Snapshot() (snap *Snapshot) {
	snap = &Snapshot{
		Name: st.Name,
	}

	for name, set := range internal.SortedSeq2(st.RegisterSets) {
		snap.Groups = append(snap.Groups, GroupSnapshot{
			Name:  name,
			Lines: set.Lines(),
		})
	}

	// Installed pixels are never written again, so sharing them is safe.
	if st.FrameBuffer != nil {
		snap.Frame = st.FrameBuffer.Image()
	}

	if st.Frequency != nil {
		freq := *st.Frequency
		snap.Frequency = &freq
	}

	return
}
