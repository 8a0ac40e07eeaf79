package e2e

import (
	"strings"
	"sync"

	"chat-courier/errors"
)

// recordingTransport captures every send so scenarios can assert on the
// exact wire output. Private delivery can be switched off to force the
// public fallback path.
type recordingTransport struct {
	mu           sync.Mutex
	allowPrivate bool
	public       []string
	private      map[string][]string
}

func newRecordingTransport(allowPrivate bool) *recordingTransport {
	return &recordingTransport{
		allowPrivate: allowPrivate,
		private:      make(map[string][]string),
	}
}

func (r *recordingTransport) SendPublic(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.public = append(r.public, text)
	return nil
}

func (r *recordingTransport) SendPrivate(recipient, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.allowPrivate {
		return errors.ErrPrivateUnavailable
	}
	r.private[recipient] = append(r.private[recipient], text)
	return nil
}

func (r *recordingTransport) publicContains(substr string) bool {
	return r.publicCount(substr) > 0
}

func (r *recordingTransport) publicCount(substr string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, line := range r.public {
		if strings.Contains(line, substr) {
			count++
		}
	}
	return count
}

func (r *recordingTransport) privateTo(recipient string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.private[recipient]))
	copy(out, r.private[recipient])
	return out
}

func (r *recordingTransport) privateContains(recipient, substr string) bool {
	for _, line := range r.privateTo(recipient) {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
