package chat

import (
	"testing"

	"github.com/lgrossi/banter/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

func newTestService() (*Service, *metrics.Set) {
	set := metrics.New(prometheus.NewRegistry())
	return NewService(NewRegistry(), NewStore(), set, zap.NewNop()), set
}

func TestJoinReturnsSnapshot(t *testing.T) {
	svc, _ := newTestService()
	svc.Join("c1", "alice")
	svc.Send("c1", "one")
	svc.Send("c1", "two")
	svc.Feedback("c1", FeedbackEvent{TargetID: 0, Kind: FeedbackLike})

	history := svc.Join("c2", "bob")
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	// History carries current values, including feedback applied before
	// the join.
	if history[0].Likes != 1 {
		t.Errorf("history[0].Likes = %d, want 1", history[0].Likes)
	}
	if history[0].ID != 0 || history[1].ID != 1 {
		t.Errorf("history out of order: %+v", history)
	}
}

func TestSendAttributesSender(t *testing.T) {
	svc, set := newTestService()
	svc.Join("c1", "alice")

	m := svc.Send("c1", "hi")
	if m.Sender != "alice" {
		t.Errorf("sender = %q, want alice", m.Sender)
	}

	// Unjoined connections send with an empty sender.
	m = svc.Send("ghost", "boo")
	if m.Sender != "" {
		t.Errorf("sender = %q, want empty", m.Sender)
	}

	if got := testutil.ToFloat64(set.Messages); got != 2 {
		t.Errorf("messages counter = %v, want 2", got)
	}
}

func TestFeedbackUnknownID(t *testing.T) {
	svc, set := newTestService()
	svc.Join("c1", "alice")
	svc.Send("c1", "hi")

	if _, ok := svc.Feedback("c1", FeedbackEvent{TargetID: 42, Kind: FeedbackRetry}); ok {
		t.Error("Feedback() on unknown id reported ok")
	}
	if got := testutil.ToFloat64(set.Feedback.WithLabelValues("retry")); got != 0 {
		t.Errorf("feedback counter = %v, want 0", got)
	}
}

func TestFeedbackRejectedEditStillReturned(t *testing.T) {
	svc, _ := newTestService()
	svc.Join("c1", "alice")
	svc.Join("c2", "carol")
	svc.Send("c1", "hello")

	text := "hacked"
	m, ok := svc.Feedback("c2", FeedbackEvent{TargetID: 0, Kind: FeedbackEdit, NewText: &text})
	if !ok {
		t.Fatal("Feedback() ok = false, want true: rejected edits are still broadcast")
	}
	if m.Text != "hello" {
		t.Errorf("text = %q, want hello", m.Text)
	}
}

func TestLeaveIdempotentAndGauge(t *testing.T) {
	svc, set := newTestService()
	svc.Join("c1", "alice")
	svc.Join("c2", "bob")

	if got := testutil.ToFloat64(set.Connections); got != 2 {
		t.Fatalf("connections gauge = %v, want 2", got)
	}

	svc.Leave("c1")
	svc.Leave("c1")
	if got := testutil.ToFloat64(set.Connections); got != 1 {
		t.Errorf("connections gauge = %v, want 1", got)
	}
}
