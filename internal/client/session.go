package client

import (
	"time"

	"github.com/lgrossi/banter/internal/bus"
	"github.com/lgrossi/banter/internal/protocol"
)

// Session ties a connection to its local state: it subscribes to the bus
// the client publishes on and routes decoded events into the mirror and
// the typing tracker.
type Session struct {
	Client *Client
	Mirror *Mirror
	Typing *Tracker
	Flash  Flash

	stop func()
}

// NewSession starts routing events for the given local user. typingTTL
// controls presence expiry; zero means the default.
func NewSession(c *Client, b *bus.Bus, username string, typingTTL time.Duration) *Session {
	s := &Session{
		Client: c,
		Mirror: NewMirror(username),
		Typing: NewTracker(typingTTL),
	}

	ch, unsub := b.Subscribe(64,
		protocol.EventChatHistory,
		protocol.EventNewMessage,
		protocol.EventUpdateMessage,
		protocol.EventTyping,
	)
	done := make(chan struct{})
	s.stop = func() {
		unsub()
		close(done)
	}

	go func() {
		for {
			select {
			case evt := <-ch:
				env, ok := evt.Payload.(protocol.Envelope)
				if !ok {
					continue
				}
				s.route(env)
			case <-done:
				return
			}
		}
	}()

	return s
}

func (s *Session) route(env protocol.Envelope) {
	switch env.Type {
	case protocol.EventChatHistory:
		s.Mirror.ApplyHistory(env.Messages)
	case protocol.EventNewMessage:
		if env.Message != nil {
			s.Mirror.ApplyNew(*env.Message)
		}
	case protocol.EventUpdateMessage:
		if env.Message != nil {
			s.Mirror.ApplyUpdate(*env.Message)
		}
	case protocol.EventTyping:
		s.Typing.Notify(env.Username)
	}
}

// Close stops event routing. The underlying client is left to its owner.
func (s *Session) Close() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}
