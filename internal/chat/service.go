package chat

import (
	"errors"

	"github.com/lgrossi/banter/internal/metrics"
	"go.uber.org/zap"
)

// Service is the state container behind the hub: it owns the registry and
// the store and is the only writer to either. The hub's run loop already
// serializes inbound events, so these methods are short critical sections
// rather than a second queue.
type Service struct {
	registry *Registry
	store    *Store
	metrics  *metrics.Set
	logger   *zap.Logger
}

// NewService creates a chat service over the given state.
func NewService(registry *Registry, store *Store, set *metrics.Set, logger *zap.Logger) *Service {
	return &Service{registry: registry, store: store, metrics: set, logger: logger}
}

// Join registers the connection under its display name and returns the
// history snapshot for point-to-point replay. Duplicate display names are
// allowed.
func (s *Service) Join(connID, displayName string) []Message {
	s.registry.Register(connID, displayName)
	s.metrics.Connections.Set(float64(s.registry.Len()))
	s.logger.Info("connection joined",
		zap.String("conn_id", connID),
		zap.String("name", displayName))
	return s.store.Snapshot()
}

// Send appends a message attributed to the connection's registered name
// and returns it for broadcast. A connection that never joined sends with
// an empty sender rather than being rejected.
func (s *Service) Send(connID, text string) Message {
	sender, _ := s.registry.Name(connID)
	m := s.store.Append(text, sender)
	s.metrics.Messages.Inc()
	return m
}

// Feedback applies the event on behalf of the connection. ok is false when
// the target id was never assigned; nothing may be broadcast in that case.
// A rejected edit still returns ok=true with the unchanged message.
func (s *Service) Feedback(connID string, ev FeedbackEvent) (Message, bool) {
	requester, _ := s.registry.Name(connID)
	m, err := s.store.Apply(ev, requester)
	if errors.Is(err, ErrNotFound) {
		s.logger.Debug("feedback for unknown message",
			zap.Int("id", ev.TargetID),
			zap.String("kind", string(ev.Kind)))
		return Message{}, false
	}
	s.metrics.Feedback.WithLabelValues(string(ev.Kind)).Inc()
	return m, true
}

// Leave removes the connection from the registry. Idempotent; calling it
// for an unknown connection is a no-op. Disconnects are never broadcast.
func (s *Service) Leave(connID string) {
	if s.registry.Unregister(connID) {
		s.metrics.Connections.Set(float64(s.registry.Len()))
		s.logger.Info("connection left", zap.String("conn_id", connID))
	}
}
