// Package client is the chat client core: the server connection, the
// local mirror of the message sequence and the typing presence tracker.
// Rendering lives elsewhere; everything here is UI-agnostic state.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lgrossi/banter/internal/bus"
	"github.com/lgrossi/banter/internal/chat"
	"github.com/lgrossi/banter/internal/protocol"
)

// Client is one websocket session with a banter server. Inbound frames
// are decoded and published on the bus under their wire event kind.
type Client struct {
	mu   sync.Mutex // guards writes; gorilla allows one writer at a time
	sock *websocket.Conn
	bus  *bus.Bus
	done chan struct{}
}

// Login validates the display name with the server. This is the only
// blocking handshake in the protocol; no token or session is issued.
func Login(baseURL, username string) error {
	body, err := json.Marshal(map[string]string{"username": username})
	if err != nil {
		return err
	}
	resp, err := http.Post(baseURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login rejected: status %d", resp.StatusCode)
	}
	return nil
}

// Dial opens the websocket session and starts the read loop. baseURL is
// the server's http(s) URL.
func Dial(baseURL string, b *bus.Bus) (*Client, error) {
	wsURL := "ws" + strings.TrimPrefix(baseURL, "http") + "/ws"
	sock, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", wsURL, err)
	}
	c := &Client{sock: sock, bus: b, done: make(chan struct{})}
	go c.readLoop()
	return c, nil
}

func (c *Client) readLoop() {
	defer close(c.done)
	for {
		var env protocol.Envelope
		if err := c.sock.ReadJSON(&env); err != nil {
			return
		}
		c.bus.Publish(bus.Event{Kind: env.Type, At: time.Now(), Payload: env})
	}
}

func (c *Client) write(env protocol.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sock.WriteJSON(env)
}

// Join announces the display name. The server answers with a chatHistory
// frame addressed to this connection only.
func (c *Client) Join(username string) error {
	return c.write(protocol.Join(username))
}

// Send submits a new message.
func (c *Client) Send(text string) error {
	return c.write(protocol.Send(text))
}

// Feedback attaches like/retry/edit feedback to a message id. newText is
// only meaningful for edits.
func (c *Client) Feedback(id int, kind chat.FeedbackKind, newText *string) error {
	return c.write(protocol.SendFeedback(id, kind, newText))
}

// Typing signals that username is composing.
func (c *Client) Typing(username string) error {
	return c.write(protocol.Typing(username))
}

// Close tears the socket down. In-flight sends are not retried.
func (c *Client) Close() error {
	return c.sock.Close()
}

// Done is closed when the read loop exits.
func (c *Client) Done() <-chan struct{} {
	return c.done
}
