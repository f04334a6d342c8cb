package client

import (
	"testing"
	"time"

	"github.com/lgrossi/banter/internal/chat"
)

func TestApplyHistoryReplaces(t *testing.T) {
	m := NewMirror("alice")
	m.ApplyNew(chat.Message{ID: 0, Text: "stale"})

	m.ApplyHistory([]chat.Message{
		{ID: 0, Text: "one", Sender: "alice"},
		{ID: 1, Text: "two", Sender: "bob"},
	})

	msgs := m.Messages()
	if len(msgs) != 2 || msgs[0].Text != "one" || msgs[1].Text != "two" {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestApplyUpdateReplacesByID(t *testing.T) {
	m := NewMirror("bob")
	m.ApplyHistory([]chat.Message{
		{ID: 0, Text: "one", Sender: "alice"},
		{ID: 1, Text: "two", Sender: "alice"},
	})

	m.ApplyUpdate(chat.Message{ID: 0, Text: "edited", Sender: "alice"})

	msgs := m.Messages()
	if msgs[0].Text != "edited" {
		t.Errorf("msgs[0].Text = %q, want edited", msgs[0].Text)
	}
	if msgs[1].Text != "two" {
		t.Errorf("msgs[1] touched: %+v", msgs[1])
	}
}

func TestRetryOpensPromptForOwnMessage(t *testing.T) {
	m := NewMirror("alice")
	m.ApplyNew(chat.Message{ID: 0, Text: "hi", Sender: "alice"})

	m.ApplyUpdate(chat.Message{ID: 0, Text: "hi", Sender: "alice", Retries: 1})

	p := m.Prompt()
	if !p.Open || p.ID != 0 || p.Text != "hi" {
		t.Errorf("prompt = %+v, want open for id 0 pre-filled hi", p)
	}
}

func TestRetryDoesNotPromptForOthersMessage(t *testing.T) {
	m := NewMirror("bob")
	m.ApplyNew(chat.Message{ID: 0, Text: "hi", Sender: "alice"})

	m.ApplyUpdate(chat.Message{ID: 0, Text: "hi", Sender: "alice", Retries: 1})

	if m.Prompt().Open {
		t.Error("prompt opened for someone else's message")
	}
	// But the streak still counts on every client.
	if m.Streak("alice") != 1 {
		t.Errorf("Streak(alice) = %d, want 1", m.Streak("alice"))
	}
}

func TestSubmitEditSuppressesSameID(t *testing.T) {
	m := NewMirror("alice")
	m.ApplyNew(chat.Message{ID: 0, Text: "hi", Sender: "alice"})
	m.ApplyUpdate(chat.Message{ID: 0, Text: "hi", Sender: "alice", Retries: 1})

	id, ok := m.SubmitEdit()
	if !ok || id != 0 {
		t.Fatalf("SubmitEdit() = %d, %v", id, ok)
	}
	if m.Prompt().Open {
		t.Fatal("prompt still open after submit")
	}

	// Another retry at the same id must not reopen the prompt.
	m.ApplyUpdate(chat.Message{ID: 0, Text: "hello", Sender: "alice", Retries: 2})
	if m.Prompt().Open {
		t.Error("prompt reopened for the just-edited id")
	}

	// A retry at a different id prompts again.
	m.ApplyNew(chat.Message{ID: 1, Text: "more", Sender: "alice"})
	m.ApplyUpdate(chat.Message{ID: 1, Text: "more", Sender: "alice", Retries: 1})
	p := m.Prompt()
	if !p.Open || p.ID != 1 {
		t.Errorf("prompt = %+v, want open for id 1", p)
	}

	// Submitting for id 1 moves the suppression: id 0 prompts once more.
	m.SubmitEdit()
	m.ApplyUpdate(chat.Message{ID: 0, Text: "hello", Sender: "alice", Retries: 3})
	if !m.Prompt().Open {
		t.Error("prompt did not reopen for id 0 after editing a different id")
	}
}

func TestSubmitEditWithoutPrompt(t *testing.T) {
	m := NewMirror("alice")
	if _, ok := m.SubmitEdit(); ok {
		t.Error("SubmitEdit() ok with no open prompt")
	}
}

func TestRetryStreaksPerSender(t *testing.T) {
	m := NewMirror("carol")
	m.ApplyHistory([]chat.Message{
		{ID: 0, Text: "a", Sender: "alice"},
		{ID: 1, Text: "b", Sender: "bob"},
	})

	m.ApplyUpdate(chat.Message{ID: 0, Sender: "alice", Retries: 1})
	m.ApplyUpdate(chat.Message{ID: 0, Sender: "alice", Retries: 2})
	m.ApplyUpdate(chat.Message{ID: 1, Sender: "bob", Retries: 1})
	// Likes do not count toward streaks.
	m.ApplyUpdate(chat.Message{ID: 1, Sender: "bob", Retries: 1, Likes: 1})

	if m.Streak("alice") != 2 {
		t.Errorf("Streak(alice) = %d, want 2", m.Streak("alice"))
	}
	// Every retry-carrying update counts, including like updates on an
	// already-retried message; the tally is local bookkeeping, not a
	// server truth.
	if m.Streak("bob") != 2 {
		t.Errorf("Streak(bob) = %d, want 2", m.Streak("bob"))
	}
}

func TestClearIsLocalOnly(t *testing.T) {
	m := NewMirror("alice")
	m.ApplyNew(chat.Message{ID: 0, Text: "hi", Sender: "alice"})

	m.Clear()
	if len(m.Messages()) != 0 {
		t.Error("Clear() left messages behind")
	}

	// A later history replay repopulates the view.
	m.ApplyHistory([]chat.Message{{ID: 0, Text: "hi", Sender: "alice"}})
	if len(m.Messages()) != 1 {
		t.Error("history after Clear() not applied")
	}
}

func TestRefreshSignal(t *testing.T) {
	m := NewMirror("alice")

	m.ApplyNew(chat.Message{ID: 0, Text: "hi"})
	select {
	case <-m.RefreshCh():
	case <-time.After(time.Second):
		t.Fatal("no refresh signal after ApplyNew")
	}

	// Signals coalesce; two mutations leave at most one pending signal.
	m.ApplyNew(chat.Message{ID: 1, Text: "a"})
	m.ApplyNew(chat.Message{ID: 2, Text: "b"})
	<-m.RefreshCh()
	select {
	case <-m.RefreshCh():
		t.Error("refresh signals did not coalesce")
	case <-time.After(50 * time.Millisecond):
	}
}
