package register

import (
	"iter"
	"slices"

	"github.com/ezrec/emuview/internal"
)

// Set is a named group of registers.
type Set struct {
	registers map[string]*Register
}

// NewSet creates an empty register set.
func NewSet() *Set {
	return &Set{registers: map[string]*Register{}}
}

// Add inserts a register, replacing any register of the same name.
func (set *Set) Add(name string, reg *Register) {
	set.registers[name] = reg
}

// Get returns the named register.
func (set *Set) Get(name string) (reg *Register, ok bool) {
	reg, ok = set.registers[name]
	return
}

// Len returns the number of registers.
func (set *Set) Len() int {
	return len(set.registers)
}

// All iterates the registers in name order.
func (set *Set) All() iter.Seq2[string, *Register] {
	return internal.SortedSeq2(set.registers)
}

// Lines returns one "name: value" line per register, in name order.
func (set *Set) Lines() []string {
	return slices.Collect(internal.MapSeq2(set.All(), func(name string, reg *Register) string {
		return name + ": " + reg.String()
	}))
}

// Clone returns a deep copy of the set.
func (set *Set) Clone() (clone *Set) {
	clone = NewSet()
	for name, reg := range set.registers {
		dup := *reg
		clone.registers[name] = &dup
	}
	return
}
