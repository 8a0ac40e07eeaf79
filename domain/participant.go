package domain

import "time"

// Participant is one entry of the roster snapshot.
// ID is the stable identifier used for presence tracking,
// Name is the display name seen in chat lines.
type Participant struct {
	ID      string
	Name    string
	Latency time.Duration
}
