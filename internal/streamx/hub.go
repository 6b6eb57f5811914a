// Package streamx provides a minimal latest-value broadcast hub: one writer
// publishes whole-value snapshots, any number of readers subscribe to a live,
// restartable stream that replays the latest value on subscription.
package streamx

import (
	"context"
	"sync"
)

// Hub holds the latest value of type T and fans every Publish out to all
// active subscribers. Semantics are last-write-wins: a slow subscriber may
// skip intermediate values but always observes the newest one.
type Hub[T any] struct {
	mu     sync.Mutex
	latest T
	subs   map[chan T]struct{}
}

// NewHub creates a hub seeded with an initial value.
func NewHub[T any](initial T) *Hub[T] {
	return &Hub[T]{
		latest: initial,
		subs:   make(map[chan T]struct{}),
	}
}

// Latest returns the most recently published value.
func (h *Hub[T]) Latest() T {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// Publish replaces the latest value and notifies all subscribers.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = v
	for ch := range h.subs {
		send(ch, v)
	}
}

// Subscribe registers a new reader. The returned channel immediately yields
// the current value, then every subsequent publish (coalesced to the latest).
// The subscription ends and the channel is closed when ctx is done.
func (h *Hub[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	ch <- h.latest
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
		close(ch)
	}()

	return ch
}

// send delivers v without blocking: if the subscriber has not consumed the
// previous value yet, it is replaced by the newer one.
func send[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
