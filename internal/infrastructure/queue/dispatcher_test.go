package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// countingAuditService records every processed event, guarded for
// concurrent workers.
type countingAuditService struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	done   chan struct{} // closed-ish signal: send per event
}

func newCountingAuditService() *countingAuditService {
	return &countingAuditService{done: make(chan struct{}, 64)}
}

func (s *countingAuditService) Process(_ context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *countingAuditService) snapshot() []domain.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditEvent, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, svc *countingAuditService, n int) {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-svc.done:
		case <-timeout:
			t.Fatalf("timed out waiting for event %d of %d", i+1, n)
		}
	}
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	svc := newCountingAuditService()
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuditEvent{Action: domain.AuditRegistered, SubjectID: "u1"})
	d.Enqueue(domain.AuditEvent{Action: domain.AuditLoggedIn, SubjectID: "u2"})
	waitFor(t, svc, 2)

	if got := len(svc.snapshot()); got != 2 {
		t.Fatalf("processed %d events, want 2", got)
	}
}

func TestDispatcher_SameSubjectKeepsOrder(t *testing.T) {
	svc := newCountingAuditService()
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	want := []domain.AuditAction{
		domain.AuditRegistered,
		domain.AuditLoggedIn,
		domain.AuditProfileUpdated,
		domain.AuditPasswordChanged,
	}
	for _, action := range want {
		d.Enqueue(domain.AuditEvent{Action: action, SubjectID: "u1"})
	}
	waitFor(t, svc, len(want))

	got := svc.snapshot()
	for i, event := range got {
		if event.Action != want[i] {
			t.Fatalf("event %d = %q, want %q", i, event.Action, want[i])
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, newCountingAuditService(), zerolog.Nop())

	first := d.shardIndex("user-42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("user-42"); got != first {
			t.Fatalf("shard index changed: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= len(d.workers) {
		t.Fatalf("shard index %d out of range", first)
	}
}
