package chat

import "sync"

// Store is the append-only message sequence. Identity is an explicit
// monotonic counter plus an id index rather than a slice position, so
// addressability would survive compaction; ids stay dense because the
// counter only advances on append. Everything lives in memory and is lost
// on restart.
type Store struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]*Message
	order  []int
}

// NewStore creates an empty store. The first appended message gets id 0.
func NewStore() *Store {
	return &Store{byID: make(map[int]*Message)}
}

// Append constructs a message with the next id and zeroed counters,
// stores it and returns a copy. Id assignment and insertion happen under
// one lock so ids stay dense on a multi-threaded runtime.
func (s *Store) Append(text, sender string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := &Message{ID: s.nextID, Text: text, Sender: sender}
	s.byID[m.ID] = m
	s.order = append(s.order, m.ID)
	s.nextID++
	return *m
}

// Get returns a copy of the message with the given id, or ErrNotFound for
// ids that were never assigned.
func (s *Store) Get(id int) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byID[id]
	if !ok {
		return Message{}, ErrNotFound
	}
	return *m, nil
}

// Snapshot returns the full sequence in append order. Messages are copied
// by value: feedback applied after the call is not visible through a
// previously taken snapshot.
func (s *Store) Snapshot() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := make([]Message, 0, len(s.order))
	for _, id := range s.order {
		msgs = append(msgs, *s.byID[id])
	}
	return msgs
}

// Len returns the number of stored messages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
