package chat

import "errors"

// ErrNotFound is returned when feedback targets a message id that was
// never assigned.
var ErrNotFound = errors.New("message not found")

// Message is one stored chat message. Ids are dense: the nth message ever
// appended carries id n-1, and ids are never reused. Text is the only
// mutable field besides the two counters.
type Message struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Sender  string `json:"sender"`
	Likes   int    `json:"likes"`
	Retries int    `json:"retries"`
}

// FeedbackKind enumerates the mutations a client can attach to a message.
type FeedbackKind string

const (
	FeedbackLike  FeedbackKind = "like"
	FeedbackRetry FeedbackKind = "retry"
	FeedbackEdit  FeedbackKind = "edit"
)

// FeedbackEvent is a transient instruction targeting a stored message.
// It is applied once and never persisted. NewText is nil unless the
// client supplied replacement text for an edit.
type FeedbackEvent struct {
	TargetID int
	Kind     FeedbackKind
	NewText  *string
}
