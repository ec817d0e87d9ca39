package emulator

import (
	"log"
	"sync/atomic"

	"github.com/ezrec/emuview/channel"
	"github.com/ezrec/emuview/command"
)

// Actor is the only writer of the shared state. It applies commands one at
// a time, in arrival order.
type Actor struct {
	Verbose bool // If set, logs every applied command.

	shared   *Shared
	receiver *channel.Receiver[command.Command]
	applied  atomic.Uint64
	done     chan struct{}
}

// NewActor creates an actor draining receiver into shared.
func NewActor(shared *Shared, receiver *channel.Receiver[command.Command]) *Actor {
	return &Actor{
		shared:   shared,
		receiver: receiver,
		done:     make(chan struct{}),
	}
}

// Run applies commands until every sender is closed and the queue is empty.
func (actor *Actor) Run() {
	defer close(actor.done)

	for cmd := range actor.receiver.All() {
		actor.shared.Apply(cmd)
		actor.applied.Add(1)
		if actor.Verbose {
			log.Printf("actor: %v", cmd)
		}
	}

	if actor.Verbose {
		log.Printf("actor: stopped after %d commands", actor.applied.Load())
	}
}

// Start runs the actor on its own goroutine.
func (actor *Actor) Start() {
	go actor.Run()
}

// Done is closed when Run returns.
func (actor *Actor) Done() <-chan struct{} {
	return actor.done
}

// Applied returns the number of commands applied so far.
func (actor *Actor) Applied() uint64 {
	return actor.applied.Load()
}
