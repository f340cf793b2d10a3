package tui

import (
	"context"
	"sync"
)

// EventSink accepts events from contexts and state setters.
type EventSink interface {
	// Send delivers ev, blocking while the sink is full. It returns
	// ErrChannelClosed once the consumer has gone away.
	Send(ev Event) error
}

// DefaultEventBuffer is the capacity of the bounded channel that state
// setters write into.
const DefaultEventBuffer = 32

// SyncChannel is a bounded, blocking event channel. A full channel blocks the
// sender, which gives state setters called from arbitrary goroutines
// backpressure against the render loop.
type SyncChannel struct {
	ch   chan Event
	done chan struct{}
	once sync.Once
}

var _ EventSink = (*SyncChannel)(nil)

// NewSyncChannel creates a channel holding up to size events.
// A size below one is treated as one.
func NewSyncChannel(size int) *SyncChannel {
	if size < 1 {
		size = 1
	}
	return &SyncChannel{
		ch:   make(chan Event, size),
		done: make(chan struct{}),
	}
}

// Send blocks until ev is buffered or the channel is closed.
func (s *SyncChannel) Send(ev Event) error {
	// Closed wins over a free slot so that nothing is accepted after Close.
	select {
	case <-s.done:
		return ErrChannelClosed
	default:
	}
	select {
	case s.ch <- ev:
		return nil
	case <-s.done:
		return ErrChannelClosed
	}
}

// Recv blocks for the next event. ok is false once the channel is closed.
// Events buffered before Close are discarded.
func (s *SyncChannel) Recv() (ev Event, ok bool) {
	select {
	case <-s.done:
		return nil, false
	default:
	}
	select {
	case ev := <-s.ch:
		return ev, true
	case <-s.done:
		return nil, false
	}
}

// Close releases all blocked senders and receivers. It is safe to call more
// than once.
func (s *SyncChannel) Close() {
	s.once.Do(func() { close(s.done) })
}

// Done is closed when the channel is closed.
func (s *SyncChannel) Done() <-chan struct{} { return s.done }

// Bridge relays events from src into dst until src is closed or dst stops
// accepting pushes.
func Bridge(src *SyncChannel, dst *Queue[Event]) {
	for {
		ev, ok := src.Recv()
		if !ok {
			return
		}
		if !dst.Push(ev) {
			return
		}
	}
}

// Queue is an unbounded FIFO. Push never blocks; Pop blocks until an item is
// available, the queue is closed and drained, or ctx is done.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	ready  chan struct{}
	done   chan struct{}
}

// NewQueue returns an empty, open queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Push appends v. It reports false, dropping v, once the queue is closed.
func (q *Queue[T]) Push(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, v)
	select {
	case q.ready <- struct{}{}:
	default:
	}
	return true
}

// Pop removes the oldest item. Items pushed before Close are still returned;
// ok is false when the queue is closed and empty, or when ctx is done.
func (q *Queue[T]) Pop(ctx context.Context) (v T, ok bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			v = q.items[0]
			var zero T
			q.items[0] = zero
			q.items = q.items[1:]
			if len(q.items) > 0 {
				select {
				case q.ready <- struct{}{}:
				default:
				}
			}
			q.mu.Unlock()
			return v, true
		}
		if q.closed {
			q.mu.Unlock()
			return v, false
		}
		q.mu.Unlock()

		select {
		case <-q.ready:
		case <-q.done:
		case <-ctx.Done():
			return v, false
		}
	}
}

// Close stops the queue from accepting new items. Safe to call more than once.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.done)
}

// Len returns the number of buffered items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
