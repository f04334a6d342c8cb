package client

import (
	"sort"
	"sync"
	"time"
)

// DefaultTypingTTL is how long a typing indication stays visible.
const DefaultTypingTTL = 2 * time.Second

// Tracker is the self-expiring set of usernames currently composing.
// Every Notify schedules its own removal and timers are never cancelled,
// so an earlier timer can expire a name that a newer keystroke just
// refreshed; the name flickers out until the next typing event re-adds
// it. That flicker is deliberate and kept. Expiry does not signal a
// redraw either; removals become visible on the next unrelated redraw.
type Tracker struct {
	mu    sync.Mutex
	ttl   time.Duration
	users map[string]bool
}

// NewTracker creates a tracker with the given TTL; non-positive means
// DefaultTypingTTL.
func NewTracker(ttl time.Duration) *Tracker {
	if ttl <= 0 {
		ttl = DefaultTypingTTL
	}
	return &Tracker{ttl: ttl, users: make(map[string]bool)}
}

// Notify marks username as typing and schedules exactly one removal after
// the TTL, independent of any pending removal for the same name.
func (t *Tracker) Notify(username string) {
	t.mu.Lock()
	t.users[username] = true
	t.mu.Unlock()

	time.AfterFunc(t.ttl, func() {
		t.mu.Lock()
		delete(t.users, username)
		t.mu.Unlock()
	})
}

// Active returns the current set in sorted order.
func (t *Tracker) Active() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, 0, len(t.users))
	for u := range t.users {
		names = append(names, u)
	}
	sort.Strings(names)
	return names
}
