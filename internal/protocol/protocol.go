// Package protocol defines the JSON event stream exchanged over the
// websocket. Every frame is one Envelope; Type selects which optional
// field carries the payload.
package protocol

import "github.com/lgrossi/banter/internal/chat"

// Event kinds on the wire. Client to server: join, sendMessage, feedback,
// typing. Server to client: chatHistory (point-to-point, join only),
// newMessage, updateMessage, typing.
const (
	EventJoin          = "join"
	EventChatHistory   = "chatHistory"
	EventSendMessage   = "sendMessage"
	EventNewMessage    = "newMessage"
	EventFeedback      = "feedback"
	EventUpdateMessage = "updateMessage"
	EventTyping        = "typing"
)

// Envelope is the single frame type on the wire.
type Envelope struct {
	Type     string         `json:"type"`
	Username string         `json:"username,omitempty"`
	Text     string         `json:"text,omitempty"`
	Feedback *Feedback      `json:"feedback,omitempty"`
	Message  *chat.Message  `json:"message,omitempty"`
	Messages []chat.Message `json:"messages,omitempty"`
}

// Feedback is the wire shape of a feedback instruction. NewText is absent
// except for edits.
type Feedback struct {
	ID      int     `json:"id"`
	Type    string  `json:"type"`
	NewText *string `json:"newText,omitempty"`
}

// Event converts the wire shape into a domain feedback event.
func (f *Feedback) Event() chat.FeedbackEvent {
	return chat.FeedbackEvent{
		TargetID: f.ID,
		Kind:     chat.FeedbackKind(f.Type),
		NewText:  f.NewText,
	}
}

// Join announces a display name on a fresh connection.
func Join(username string) Envelope {
	return Envelope{Type: EventJoin, Username: username}
}

// History carries the full message snapshot to a joining connection.
func History(msgs []chat.Message) Envelope {
	return Envelope{Type: EventChatHistory, Messages: msgs}
}

// Send submits a new message body.
func Send(text string) Envelope {
	return Envelope{Type: EventSendMessage, Text: text}
}

// NewMessage broadcasts a freshly appended message.
func NewMessage(m chat.Message) Envelope {
	return Envelope{Type: EventNewMessage, Message: &m}
}

// SendFeedback attaches like/retry/edit feedback to a message id.
func SendFeedback(id int, kind chat.FeedbackKind, newText *string) Envelope {
	return Envelope{Type: EventFeedback, Feedback: &Feedback{ID: id, Type: string(kind), NewText: newText}}
}

// UpdateMessage broadcasts the full post-feedback message.
func UpdateMessage(m chat.Message) Envelope {
	return Envelope{Type: EventUpdateMessage, Message: &m}
}

// Typing signals that username is composing. The server rebroadcasts it
// verbatim, including to the originator; expiry is entirely client-local.
func Typing(username string) Envelope {
	return Envelope{Type: EventTyping, Username: username}
}
