//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-courier/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Transport is the outbound side of the chat channel.
// SendPrivate is best effort: an error is a normal outcome and the
// caller falls back to a public send with the recipient's name prefixed.
type Transport interface {
	SendPublic(text string) error
	SendPrivate(recipient, text string) error
}

// Roster lists currently visible participants. Snapshots are cheap and
// queried on demand; the core keeps no cache beyond the presence set.
type Roster interface {
	Snapshot() []domain.Participant
}

// World answers the environment-specific parts of the info command.
type World interface {
	Name() string
	TimeOfDay() (hour, minute int)
}

// IMailbox is the durable per-recipient note queue.
type IMailbox interface {
	Enqueue(target, from, body string) error
	Peek(identity string) ([]domain.PendingNote, error)
	Drain(identity string) ([]domain.PendingNote, error)
}

// Deliverer drains and transmits a recipient's mailbox.
type Deliverer interface {
	DeliverTo(displayName string)
}

// LineHandler consumes one parsed chat line.
type LineHandler interface {
	Handle(line domain.ChatLine)
}
