package client

import (
	"testing"
	"time"

	"github.com/lgrossi/banter/internal/bus"
	"github.com/lgrossi/banter/internal/chat"
	"github.com/lgrossi/banter/internal/protocol"
)

func publish(b *bus.Bus, env protocol.Envelope) {
	b.Publish(bus.Event{Kind: env.Type, At: time.Now(), Payload: env})
}

func waitRefresh(t *testing.T, m *Mirror) {
	t.Helper()
	select {
	case <-m.RefreshCh():
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for mirror refresh")
	}
}

func TestSessionRoutesEvents(t *testing.T) {
	b := bus.New()
	s := NewSession(nil, b, "alice", time.Second)
	defer s.Close()

	publish(b, protocol.History([]chat.Message{{ID: 0, Text: "hi", Sender: "alice"}}))
	waitRefresh(t, s.Mirror)
	if len(s.Mirror.Messages()) != 1 {
		t.Fatalf("mirror length = %d, want 1", len(s.Mirror.Messages()))
	}

	publish(b, protocol.NewMessage(chat.Message{ID: 1, Text: "yo", Sender: "bob"}))
	waitRefresh(t, s.Mirror)
	if len(s.Mirror.Messages()) != 2 {
		t.Fatalf("mirror length = %d, want 2", len(s.Mirror.Messages()))
	}

	publish(b, protocol.UpdateMessage(chat.Message{ID: 0, Text: "hi", Sender: "alice", Retries: 1}))
	waitRefresh(t, s.Mirror)
	if !s.Mirror.Prompt().Open {
		t.Error("retry update did not open the edit prompt")
	}

	publish(b, protocol.Typing("bob"))
	deadline := time.After(time.Second)
	for len(s.Typing.Active()) == 0 {
		select {
		case <-deadline:
			t.Fatal("typing event not routed")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestSessionCloseStopsRouting(t *testing.T) {
	b := bus.New()
	s := NewSession(nil, b, "alice", time.Second)
	s.Close()

	publish(b, protocol.NewMessage(chat.Message{ID: 0, Text: "late"}))
	time.Sleep(50 * time.Millisecond)
	if len(s.Mirror.Messages()) != 0 {
		t.Error("event routed after Close()")
	}
}
