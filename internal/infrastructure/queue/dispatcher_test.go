package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/accessgate/rbac-system/internal/core/domain"
)

type memorySink struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (s *memorySink) Insert(_ context.Context, event *domain.AuthEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *event)
	return nil
}

func (s *memorySink) snapshot() []domain.AuthEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuthEvent, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestAuditDispatcher_DeliversEvents(t *testing.T) {
	sink := &memorySink{}
	d := NewAuditDispatcher(2, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.AuthEvent{Username: "alice", Action: domain.ActionLogin, Success: true})
	d.Record(domain.AuthEvent{Username: "bob", Action: domain.ActionLogin, Success: false, Reason: "invalid_credentials"})

	waitFor(t, func() bool { return len(sink.snapshot()) == 2 })

	seen := map[string]bool{}
	for _, e := range sink.snapshot() {
		seen[e.Username] = true
	}
	if !seen["alice"] || !seen["bob"] {
		t.Fatalf("missing events: %+v", sink.snapshot())
	}
}

func TestAuditDispatcher_PerUserOrdering(t *testing.T) {
	sink := &memorySink{}
	d := NewAuditDispatcher(4, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 50
	for i := 0; i < n; i++ {
		d.Record(domain.AuthEvent{
			Username:  "carol",
			Action:    domain.ActionLogin,
			Success:   i%2 == 0,
			Timestamp: time.Unix(int64(i), 0),
		})
	}

	waitFor(t, func() bool { return len(sink.snapshot()) == n })

	events := sink.snapshot()
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Fatalf("events for one username arrived out of order at %d", i)
		}
	}
}
