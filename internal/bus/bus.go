// Package bus implements the in-process broadcast channel that fans out
// session-state changes to every mounted observer.
//
// Delivery is synchronous and in subscription order. There is no replay for
// late subscribers: a new observer must pull current state first and only
// then subscribe, otherwise it can miss a transition that happened between
// the two steps.
package bus

import (
	"sync"

	"github.com/pensup/pensup/internal/models"
)

// Handler receives a published session event.
type Handler func(models.SessionEvent)

type subscription struct {
	id      uint64
	handler Handler
}

// Bus is a single-process publish/subscribe channel for session events.
// The zero value is not usable; call New.
type Bus struct {
	mu   sync.Mutex
	next uint64
	subs []subscription
}

func New() *Bus {
	return &Bus{}
}

// Subscribe registers a handler and returns a function that removes it.
// Handlers are invoked in subscription order.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	b.subs = append(b.subs, subscription{id: id, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.subs {
			if sub.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event to every subscriber synchronously, in
// subscription order. It returns after the last handler has run.
func (b *Bus) Publish(event models.SessionEvent) {
	b.mu.Lock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.handler(event)
	}
}
