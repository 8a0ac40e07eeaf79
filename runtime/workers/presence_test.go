package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"chat-courier/domain"
)

// fakeRoster lets a test change the visible participants between ticks.
type fakeRoster struct {
	mu           sync.Mutex
	participants []domain.Participant
}

func (f *fakeRoster) Snapshot() []domain.Participant {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Participant, len(f.participants))
	copy(out, f.participants)
	return out
}

func (f *fakeRoster) join(p domain.Participant) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.participants = append(f.participants, p)
}

func TestPresenceWorker_SeedDoesNotRetriggerExistingParticipants(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	roster := &fakeRoster{participants: []domain.Participant{
		{ID: "steve", Name: "Steve"},
	}}
	appearances := make(chan domain.Participant, 8)
	worker := NewPresenceWorker(log, roster, 5*time.Millisecond, appearances)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// Steve was present at activation: several intervals pass without an edge
	select {
	case p := <-appearances:
		req.Failf("Unexpected appearance", "got %s", p.Name)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPresenceWorker_EmitsEdgeOncePerAppearance(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	roster := &fakeRoster{}
	appearances := make(chan domain.Participant, 8)
	worker := NewPresenceWorker(log, roster, time.Hour, appearances)

	// Seed on an empty roster, then join: the next scan must see the edge
	worker.seed()
	roster.join(domain.Participant{ID: "alex", Name: "Alex"})

	worker.scan(context.Background())
	req.Len(appearances, 1)
	req.Equal("Alex", (<-appearances).Name)

	// Alex stays visible: a later scan emits no second edge
	worker.scan(context.Background())
	req.Empty(appearances)
}

func TestPresenceWorker_ScanHandlesManyNewcomers(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	roster := &fakeRoster{participants: []domain.Participant{
		{ID: "alex", Name: "Alex"},
		{ID: "bob", Name: "Bob"},
		{ID: "clara", Name: "Clara"},
	}}
	appearances := make(chan domain.Participant, 8)
	worker := NewPresenceWorker(log, roster, time.Hour, appearances)

	worker.seen = make(map[string]struct{})
	worker.scan(context.Background())

	req.Len(appearances, 3)
	first := <-appearances
	req.Equal("Alex", first.Name)
}
