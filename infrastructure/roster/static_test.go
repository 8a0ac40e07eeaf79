package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chat-courier/domain"
	"chat-courier/errors"
)

func TestParse(t *testing.T) {
	req := require.New(t)

	s, err := Parse("Steve:42, Alex_77:130")
	req.NoError(err)

	snapshot := s.Snapshot()
	req.Len(snapshot, 2)
	req.Equal(domain.Participant{ID: "steve", Name: "Steve", Latency: 42 * time.Millisecond}, snapshot[0])
	req.Equal(domain.Participant{ID: "alex_77", Name: "Alex_77", Latency: 130 * time.Millisecond}, snapshot[1])
}

func TestParse_Empty(t *testing.T) {
	req := require.New(t)

	s, err := Parse("   ")
	req.NoError(err)
	req.Empty(s.Snapshot())
}

func TestParse_Malformed(t *testing.T) {
	req := require.New(t)

	for _, entry := range []string{"Steve", "Steve:fast", ":42"} {
		_, err := Parse(entry)
		req.ErrorIs(err, errors.ErrInvalidRoster, "entry=%q", entry)
	}
}

func TestJoin_ShowsUpInSnapshot(t *testing.T) {
	req := require.New(t)

	s, err := Parse("Steve:42")
	req.NoError(err)

	s.Join(domain.Participant{ID: "alex", Name: "Alex"})
	req.Len(s.Snapshot(), 2)
}
