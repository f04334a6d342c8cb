package chat

// Apply runs the feedback transition table against the target message and
// returns the message as it stands afterwards. Unknown targets return
// ErrNotFound and must not be broadcast. An edit by anyone but the sender,
// or an edit carrying no replacement text, changes nothing but still
// returns the message: callers rebroadcast it unchanged, which is the
// observable contract, not an accident. Likes and retries are independent
// monotonic counters; an edit never resets either.
func (s *Store) Apply(ev FeedbackEvent, requester string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byID[ev.TargetID]
	if !ok {
		return Message{}, ErrNotFound
	}
	switch ev.Kind {
	case FeedbackLike:
		m.Likes++
	case FeedbackRetry:
		m.Retries++
	case FeedbackEdit:
		if ev.NewText != nil && m.Sender == requester {
			m.Text = *ev.NewText
		}
	}
	return *m, nil
}
