package client

import (
	"sync"

	"github.com/lgrossi/banter/internal/chat"
)

// EditPrompt is the retry-triggered edit state: open when a retry arrived
// for one of the local user's messages that was not the one just edited.
type EditPrompt struct {
	Open bool
	ID   int
	Text string
}

// Mirror is the client's reconstruction of the server's message sequence,
// fed by chatHistory, newMessage and updateMessage events in arrival
// order. It is rebuilt from scratch on every login; the server never sees
// it. Layered on top of update events it drives the retry/edit workflow
// and keeps per-sender retry streaks, which are local tallies: every
// client counts independently and the numbers need not agree.
type Mirror struct {
	mu         sync.RWMutex
	username   string
	messages   []chat.Message
	prompt     EditPrompt
	lastEditID int
	streaks    map[string]int

	refreshCh chan struct{}
}

// NewMirror creates an empty mirror for the given local user.
func NewMirror(username string) *Mirror {
	return &Mirror{
		username:   username,
		lastEditID: -1,
		streaks:    make(map[string]int),
		refreshCh:  make(chan struct{}, 1),
	}
}

// RefreshCh signals that the mirror changed and the UI should redraw.
func (m *Mirror) RefreshCh() <-chan struct{} {
	return m.refreshCh
}

func (m *Mirror) signalRefresh() {
	select {
	case m.refreshCh <- struct{}{}:
	default:
	}
}

// ApplyHistory replaces the local sequence with the server snapshot.
func (m *Mirror) ApplyHistory(msgs []chat.Message) {
	m.mu.Lock()
	m.messages = append([]chat.Message(nil), msgs...)
	m.mu.Unlock()
	m.signalRefresh()
}

// ApplyNew appends a broadcast message.
func (m *Mirror) ApplyNew(msg chat.Message) {
	m.mu.Lock()
	m.messages = append(m.messages, msg)
	m.mu.Unlock()
	m.signalRefresh()
}

// ApplyUpdate replaces the message with the same id in place. When the
// update carries retries, is addressed at the local user's own message and
// is not the id just edited, the edit prompt opens pre-filled with the
// message's current text. Every retry-carrying update also bumps the
// sender's local streak, whoever the local user is.
func (m *Mirror) ApplyUpdate(msg chat.Message) {
	m.mu.Lock()
	for i := range m.messages {
		if m.messages[i].ID == msg.ID {
			m.messages[i] = msg
			break
		}
	}
	if msg.Retries > 0 && msg.Sender == m.username && msg.ID != m.lastEditID {
		m.prompt = EditPrompt{Open: true, ID: msg.ID, Text: msg.Text}
	}
	if msg.Retries > 0 {
		m.streaks[msg.Sender]++
	}
	m.mu.Unlock()
	m.signalRefresh()
}

// SubmitEdit closes the prompt and records its id as the last-submitted
// edit, suppressing re-prompts for that id until an edit is submitted for
// a different one. Returns the target id; ok is false when no prompt is
// open. The caller is responsible for emitting the edit feedback event.
func (m *Mirror) SubmitEdit() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.prompt.Open {
		return 0, false
	}
	id := m.prompt.ID
	m.lastEditID = id
	m.prompt = EditPrompt{}
	return id, true
}

// DismissPrompt closes the prompt without recording an edit; the next
// retry for the same id will reopen it.
func (m *Mirror) DismissPrompt() {
	m.mu.Lock()
	m.prompt = EditPrompt{}
	m.mu.Unlock()
	m.signalRefresh()
}

// Clear empties the local view only. The authoritative store is untouched
// and a rejoin replays the full history.
func (m *Mirror) Clear() {
	m.mu.Lock()
	m.messages = nil
	m.mu.Unlock()
	m.signalRefresh()
}

// Messages returns a copy of the local sequence.
func (m *Mirror) Messages() []chat.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]chat.Message(nil), m.messages...)
}

// Prompt returns the current edit prompt state.
func (m *Mirror) Prompt() EditPrompt {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prompt
}

// Streak returns the local retry streak recorded for a sender.
func (m *Mirror) Streak(sender string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.streaks[sender]
}
