package streams

import "sync"

// LatestQueue is a single-slot queue. Publishing into an occupied slot replaces the message
// that is waiting there, so a slow consumer only ever sees the newest one.
type LatestQueue[T any] struct {
	mu   sync.Mutex
	slot chan T
}

func NewLatestQueue[T any]() *LatestQueue[T] {
	return &LatestQueue[T]{slot: make(chan T, 1)}
}

// Publish never blocks. It reports whether an unconsumed message was replaced.
func (queue *LatestQueue[T]) Publish(msg T) (replaced bool) {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	select {
	case <-queue.slot:
		replaced = true
	default:
	}
	// only publishers send, and they hold mu, so the slot is free here
	queue.slot <- msg
	return replaced
}

func (queue *LatestQueue[T]) Messages() <-chan T {
	return queue.slot
}
