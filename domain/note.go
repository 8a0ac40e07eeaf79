package domain

import (
	"time"

	"github.com/google/uuid"
)

// PendingNote is an immutable offline message waiting for its recipient.
// The body is already defused against template evaluation when stored.
type PendingNote struct {
	ID   uuid.UUID
	From string
	Body string
	At   time.Time
}
