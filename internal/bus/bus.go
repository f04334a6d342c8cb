package bus

import "sync"

// Bus is an in-process publish/subscribe fan-out with per-subscriber kind
// filtering. Delivery is non-blocking: a subscriber that falls behind
// loses events rather than stalling the publisher, which matches the
// fire-and-forget delivery model of the chat stream.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]*subscription
	next int
}

type subscription struct {
	kinds map[string]struct{} // empty means every kind
	ch    chan Event
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[int]*subscription)}
}

// Publish delivers evt to every subscriber registered for its kind.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if len(sub.kinds) > 0 {
			if _, ok := sub.kinds[evt.Kind]; !ok {
				continue
			}
		}
		select {
		case sub.ch <- evt:
		default:
			// Subscriber buffer full; drop.
		}
	}
}

// Subscribe registers interest in the given kinds (none means every kind)
// and returns the delivery channel plus an unsubscribe function.
func (b *Bus) Subscribe(bufSize int, kinds ...string) (<-chan Event, func()) {
	sub := &subscription{
		kinds: make(map[string]struct{}, len(kinds)),
		ch:    make(chan Event, bufSize),
	}
	for _, k := range kinds {
		sub.kinds[k] = struct{}{}
	}

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = sub
	b.mu.Unlock()

	return sub.ch, func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}
