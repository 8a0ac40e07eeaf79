package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-courier/contract"
	"chat-courier/domain"
)

// PresenceWorker polls the roster on a fixed cadence and emits one
// appearance event per participant per session. The seen set answers
// "did we already notice X this session", never "is X present now";
// the live roster answers the latter.
type PresenceWorker struct {
	log         *slog.Logger
	roster      contract.Roster
	interval    time.Duration
	seen        map[string]struct{}
	appearances chan<- domain.Participant
}

func NewPresenceWorker(log *slog.Logger, roster contract.Roster,
	interval time.Duration, appearances chan<- domain.Participant) *PresenceWorker {
	return &PresenceWorker{
		log:         log,
		roster:      roster,
		interval:    interval,
		appearances: appearances,
		seen:        make(map[string]struct{}),
	}
}

// Run seeds the seen set from the current roster so participants already
// present at activation do not re-trigger delivery, then samples the roster
// until the context ends. Delivery after an appearance is therefore delayed
// by at most one interval.
func (w *PresenceWorker) Run(ctx context.Context) error {
	w.seed()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *PresenceWorker) seed() {
	w.seen = make(map[string]struct{})
	for _, p := range w.roster.Snapshot() {
		w.seen[p.ID] = struct{}{}
	}
	w.log.Debug("Presence set seeded", "count", len(w.seen))
}

// scan emits every roster entry whose stable ID has not been seen yet.
func (w *PresenceWorker) scan(ctx context.Context) {
	for _, p := range w.roster.Snapshot() {
		if _, ok := w.seen[p.ID]; ok {
			continue
		}
		w.seen[p.ID] = struct{}{}
		w.log.Info("Participant appeared", "name", p.Name, "id", p.ID)
		select {
		case <-ctx.Done():
			return
		case w.appearances <- p:
		}
	}
}
