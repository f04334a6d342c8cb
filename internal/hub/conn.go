package hub

import (
	"github.com/gorilla/websocket"
	"github.com/lgrossi/banter/internal/protocol"
)

// Conn is one websocket session. The read pump feeds decoded frames to the
// hub's run loop; the write pump drains the send queue. Separate pumps
// keep a slow reader from blocking writes.
type Conn struct {
	ID   string
	sock *websocket.Conn
	send chan []byte
}

// readPump decodes inbound frames until the socket errors or closes, then
// unregisters the connection. Malformed frames end the session.
func (c *Conn) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.sock.Close()
	}()
	for {
		var env protocol.Envelope
		if err := c.sock.ReadJSON(&env); err != nil {
			return
		}
		h.events <- inbound{conn: c, env: env}
	}
}

// writePump drains send to the socket. The channel is closed by the hub
// when the connection is dropped.
func (c *Conn) writePump() {
	defer c.sock.Close()
	for data := range c.send {
		if err := c.sock.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.sock.WriteMessage(websocket.CloseMessage, []byte{})
}
