// Package roster provides the static roster shim backed by configuration.
// Entries use the form "Name:latency_ms" separated by commas.
package roster

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"chat-courier/domain"
	"chat-courier/errors"
)

type Static struct {
	mu           sync.RWMutex
	participants []domain.Participant
}

func Parse(spec string) (*Static, error) {
	s := &Static{}
	if strings.TrimSpace(spec) == "" {
		return s, nil
	}
	for _, entry := range strings.Split(spec, ",") {
		name, latency, found := strings.Cut(strings.TrimSpace(entry), ":")
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q", errors.ErrInvalidRoster, entry)
		}
		ms, err := strconv.Atoi(latency)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errors.ErrInvalidRoster, entry)
		}
		s.participants = append(s.participants, domain.Participant{
			ID:      domain.CanonicalIdentity(name),
			Name:    name,
			Latency: time.Duration(ms) * time.Millisecond,
		})
	}
	return s, nil
}

func (s *Static) Snapshot() []domain.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Participant, len(s.participants))
	copy(out, s.participants)
	return out
}

// Join adds a participant at runtime, mostly useful to drive presence edges
// in scenarios and local experiments.
func (s *Static) Join(p domain.Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants = append(s.participants, p)
}
