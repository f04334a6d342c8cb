package chat

import "sync"

// Registry maps live connection ids to display names. Names are
// client-supplied and may collide across connections; that is accepted
// behavior, not an error. Entries exist only for the lifetime of the
// process.
type Registry struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]string)}
}

// Register stores the connection's display name, replacing any previous
// one for the same connection.
func (r *Registry) Register(connID, displayName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[connID] = displayName
}

// Unregister removes the connection's entry. Idempotent; reports whether
// an entry was actually removed.
func (r *Registry) Unregister(connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.names[connID]
	delete(r.names, connID)
	return ok
}

// Name returns the display name registered for the connection.
func (r *Registry) Name(connID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[connID]
	return name, ok
}

// Len returns the number of registered connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}
