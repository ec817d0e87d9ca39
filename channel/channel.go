// Package channel implements an ordered multi-producer, single-consumer queue.
//
// By default the queue is unbounded: senders never block and never fail.
// A bound, and what happens when it is reached, must be chosen explicitly
// through Options.
package channel

import (
	"iter"
	"sync"
)

// Overflow selects the behaviour of Send on a full bounded queue.
type Overflow int

const (
	OVERFLOW_BLOCK       = Overflow(0) // Wait for the receiver to make space.
	OVERFLOW_DROP_OLDEST = Overflow(1) // Discard the oldest queued item.
	OVERFLOW_REJECT      = Overflow(2) // Fail with ErrChannelFull.
)

// Options configure a queue. The zero value is unbounded.
type Options struct {
	Limit    int      // Maximum queued items, 0 for unbounded.
	Overflow Overflow // Policy when Limit is reached.
}

type queue[T any] struct {
	options Options

	mutex   sync.Mutex
	ready   sync.Cond // Items queued, or last sender closed.
	space   sync.Cond // Items removed.
	items   []T
	senders int
	dropped uint64
}

// Sender is a producer handle. Each handle must be closed once; the
// receiver finishes after every handle is closed and the queue drains.
type Sender[T any] struct {
	q      *queue[T]
	closed bool // Guarded by q.mutex.
}

// Receiver is the single consumer handle.
type Receiver[T any] struct {
	q *queue[T]
}

// New creates a queue with one open sender.
func New[T any](options Options) (sender *Sender[T], receiver *Receiver[T]) {
	q := &queue[T]{
		options: options,
		senders: 1,
	}
	q.ready.L = &q.mutex
	q.space.L = &q.mutex

	sender = &Sender[T]{q: q}
	receiver = &Receiver[T]{q: q}
	return
}

// Clone returns an additional sender for the same queue.
func (s *Sender[T]) Clone() (clone *Sender[T], err error) {
	q := s.q

	q.mutex.Lock()
	defer q.mutex.Unlock()

	if s.closed {
		err = ErrChannelClosed
		return
	}

	q.senders++
	clone = &Sender[T]{q: q}
	return
}

// Send queues an item. On an unbounded queue it never blocks and only
// fails on a closed handle.
func (s *Sender[T]) Send(item T) (err error) {
	q := s.q

	q.mutex.Lock()
	defer q.mutex.Unlock()

	if s.closed {
		err = ErrChannelClosed
		return
	}

	if limit := q.options.Limit; limit > 0 {
		switch q.options.Overflow {
		case OVERFLOW_DROP_OLDEST:
			for len(q.items) >= limit {
				q.pop()
				q.dropped++
			}
		case OVERFLOW_REJECT:
			if len(q.items) >= limit {
				q.dropped++
				err = ErrChannelFull
				return
			}
		default:
			for len(q.items) >= limit {
				q.space.Wait()
			}
		}
	}

	q.items = append(q.items, item)
	q.ready.Signal()

	return
}

// Close drops the handle. Closing twice is harmless.
func (s *Sender[T]) Close() {
	q := s.q

	q.mutex.Lock()
	defer q.mutex.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	q.senders--
	if q.senders == 0 {
		q.ready.Broadcast()
	}
}

func (q *queue[T]) pop() (item T) {
	var zero T

	item = q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	q.space.Signal()

	return
}

// Receive blocks for the next item. It is not ok once every sender is
// closed and the queue is empty.
func (r *Receiver[T]) Receive() (item T, ok bool) {
	q := r.q

	q.mutex.Lock()
	defer q.mutex.Unlock()

	for len(q.items) == 0 {
		if q.senders == 0 {
			return
		}
		q.ready.Wait()
	}

	item = q.pop()
	ok = true
	return
}

// All iterates received items until the queue is closed and drained.
func (r *Receiver[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := r.Receive()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Len returns the number of queued items.
func (r *Receiver[T]) Len() int {
	r.q.mutex.Lock()
	defer r.q.mutex.Unlock()

	return len(r.q.items)
}

// Dropped returns the number of items discarded by the overflow policy.
func (r *Receiver[T]) Dropped() uint64 {
	r.q.mutex.Lock()
	defer r.q.mutex.Unlock()

	return r.q.dropped
}
