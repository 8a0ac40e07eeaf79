package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrEmptyDenyList    = fmt.Errorf("deny list contains no patterns")
	ErrInvalidRoster    = fmt.Errorf("roster entry is malformed")
	ErrMailboxCorrupted = fmt.Errorf("stored note cannot be decoded")

	// ErrPrivateUnavailable marks the expected degradation of a transport
	// whose direct-message channel cannot be used right now.
	ErrPrivateUnavailable = fmt.Errorf("private channel unavailable")
)
