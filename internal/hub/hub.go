// Package hub owns every live websocket connection and fans broadcast
// events out to them. All inbound traffic is funneled through a single run
// loop, so chat mutations are serialized without per-handler locking and
// sends are enqueued in the order mutations occurred.
package hub

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lgrossi/banter/internal/chat"
	"github.com/lgrossi/banter/internal/protocol"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// inbound pairs a decoded frame with the connection it arrived on.
type inbound struct {
	conn *Conn
	env  protocol.Envelope
}

// Hub is the broadcast fan-out. The run loop is the single writer for the
// client set and the only caller into the chat service.
type Hub struct {
	service *chat.Service
	logger  *zap.Logger
	sendBuf int

	register   chan *Conn
	unregister chan *Conn
	events     chan inbound
	clients    map[*Conn]bool
}

// New creates a hub over the given service. sendBuf sizes each
// connection's outbound queue.
func New(service *chat.Service, logger *zap.Logger, sendBuf int) *Hub {
	if sendBuf <= 0 {
		sendBuf = 64
	}
	return &Hub{
		service:    service,
		logger:     logger,
		sendBuf:    sendBuf,
		register:   make(chan *Conn),
		unregister: make(chan *Conn),
		events:     make(chan inbound),
		clients:    make(map[*Conn]bool),
	}
}

// ServeWS upgrades the request, registers the connection and starts its
// pumps. Connection ids are fresh UUIDs; the display name arrives later
// with the join frame.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	sock, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	c := &Conn{
		ID:   uuid.NewString(),
		sock: sock,
		send: make(chan []byte, h.sendBuf),
	}
	h.register <- c
	go c.writePump()
	go c.readPump(h)
}

// Run processes registrations and inbound frames until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			h.drop(c)
		case in := <-h.events:
			h.dispatch(in)
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		}
	}
}

func (h *Hub) dispatch(in inbound) {
	c, env := in.conn, in.env
	switch env.Type {
	case protocol.EventJoin:
		history := h.service.Join(c.ID, env.Username)
		h.sendTo(c, protocol.History(history))
	case protocol.EventSendMessage:
		m := h.service.Send(c.ID, env.Text)
		h.broadcast(protocol.NewMessage(m))
	case protocol.EventFeedback:
		if env.Feedback == nil {
			return
		}
		m, ok := h.service.Feedback(c.ID, env.Feedback.Event())
		if !ok {
			// Unknown target: silently dropped, nothing broadcast.
			return
		}
		h.broadcast(protocol.UpdateMessage(m))
	case protocol.EventTyping:
		// Advisory only: rebroadcast verbatim, including to the
		// originator. The server never expires typing state.
		h.broadcast(protocol.Typing(env.Username))
	}
}

// broadcast queues the envelope for every active connection. A connection
// whose buffer is full is dropped rather than allowed to stall the loop.
func (h *Hub) broadcast(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Error("marshal broadcast", zap.Error(err))
		return
	}
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.drop(c)
		}
	}
}

// sendTo queues the envelope for one connection only.
func (h *Hub) sendTo(c *Conn, env protocol.Envelope) {
	if !h.clients[c] {
		return
	}
	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Error("marshal send", zap.Error(err))
		return
	}
	select {
	case c.send <- data:
	default:
		h.drop(c)
	}
}

// drop removes the connection and its registry entry. Safe to call twice;
// only the first call closes the send channel.
func (h *Hub) drop(c *Conn) {
	if !h.clients[c] {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.service.Leave(c.ID)
}
