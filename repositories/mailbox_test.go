package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"chat-courier/domain"
)

func openTestDB(t *testing.T, dir string) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	return db
}

func Test_Enqueue_Then_Peek(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t, t.TempDir())
	defer db.Close()

	mailbox := NewMailboxRepository(db, slog.Default())

	req.NoError(mailbox.Enqueue("Alex", "Steve", "don't wait up"))
	req.NoError(mailbox.Enqueue("Alex", "Herobrine", "behind you"))

	notes, err := mailbox.Peek("alex")
	req.NoError(err)
	req.Len(notes, 2)
	// FIFO: oldest first
	req.Equal("Steve", notes[0].From)
	req.Equal("don't wait up", notes[0].Body)
	req.Equal("Herobrine", notes[1].From)

	// Peek is read only
	notes, err = mailbox.Peek("Alex")
	req.NoError(err)
	req.Len(notes, 2)
}

// Two different-case spellings of the same recipient land in one mailbox.
func Test_Enqueue_CaseInsensitiveIdentity(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t, t.TempDir())
	defer db.Close()

	mailbox := NewMailboxRepository(db, slog.Default())

	req.NoError(mailbox.Enqueue("Bob", "Steve", "first"))
	req.NoError(mailbox.Enqueue("BOB", "Steve", "second"))

	notes, err := mailbox.Peek("bOb")
	req.NoError(err)
	req.Len(notes, 2)
	req.Equal("first", notes[0].Body)
	req.Equal("second", notes[1].Body)
}

func Test_Drain_RemovesEverything(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t, t.TempDir())
	defer db.Close()

	mailbox := NewMailboxRepository(db, slog.Default())

	bodies := []string{"one", "two", "three"}
	for _, body := range bodies {
		req.NoError(mailbox.Enqueue("Alex", "Steve", body))
	}

	drained, err := mailbox.Drain("alex")
	req.NoError(err)
	req.Len(drained, len(bodies))
	for i, note := range drained {
		req.Equal(bodies[i], note.Body)
	}

	// The mailbox entry is gone, a second drain is a no-op
	leftover, err := mailbox.Peek("alex")
	req.NoError(err)
	req.Empty(leftover)

	again, err := mailbox.Drain("alex")
	req.NoError(err)
	req.Empty(again)
}

func Test_Drain_LeavesOtherMailboxesAlone(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t, t.TempDir())
	defer db.Close()

	mailbox := NewMailboxRepository(db, slog.Default())

	req.NoError(mailbox.Enqueue("Alex", "Steve", "for alex"))
	req.NoError(mailbox.Enqueue("Alexandra", "Steve", "for alexandra"))

	drained, err := mailbox.Drain("alex")
	req.NoError(err)
	req.Len(drained, 1)
	req.Equal("for alex", drained[0].Body)

	notes, err := mailbox.Peek("alexandra")
	req.NoError(err)
	req.Len(notes, 1)
	req.Equal("for alexandra", notes[0].Body)
}

// Closing and reopening the database reproduces an equivalent mailbox:
// same identities, same notes, same order.
func Test_RoundTrip_AcrossReopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	db := openTestDB(t, dir)
	mailbox := NewMailboxRepository(db, slog.Default())
	req.NoError(mailbox.Enqueue("Alex", "Steve", "see you at dawn"))
	req.NoError(mailbox.Enqueue("Alex", "Bob", "mine is flooded"))
	before, err := mailbox.Peek("alex")
	req.NoError(err)
	req.NoError(db.Close())

	db = openTestDB(t, dir)
	defer db.Close()
	reopened := NewMailboxRepository(db, slog.Default())

	after, err := reopened.Peek("alex")
	req.NoError(err)
	req.Equal(before, after)
}

func Test_Peek_PendingNoteFields(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t, t.TempDir())
	defer db.Close()

	mailbox := NewMailboxRepository(db, slog.Default())
	req.NoError(mailbox.Enqueue("Alex", "Steve", "hello"))

	notes, err := mailbox.Peek("alex")
	req.NoError(err)
	req.Len(notes, 1)
	req.NotEqual(domain.PendingNote{}.ID, notes[0].ID)
	req.False(notes[0].At.IsZero())
	req.Equal("Steve", notes[0].From)
}
