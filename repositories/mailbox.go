package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"chat-courier/domain"
)

type MailboxRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMailboxRepository(db *badger.DB, log *slog.Logger) MailboxRepository {
	return MailboxRepository{db: db, log: log}
}

// DiskNote is the persisted form of a pending note.
// Timestamps are epoch milliseconds.
type DiskNote struct {
	ID   string `json:"id"`
	From string `json:"from"`
	Body string `json:"body"`
	At   int64  `json:"at"`
}

// noteKey formats "note:{identity}:{timestamp_padded}:{uuid}" so that:
//  1. A prefix scan per recipient yields notes oldest first thanks to the
//     19-digit zero padding (lexicographical order).
//  2. The UUID disambiguates two notes enqueued at the same nanosecond.
func noteKey(identity string, at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("note:%s:%019d:%s", identity, at.UnixNano(), id))
}

func notePrefix(identity string) []byte {
	return []byte(fmt.Sprintf("note:%s:", identity))
}

// Enqueue appends a note to the target's mailbox. The body is expected to be
// already defused against template evaluation by the caller. The Badger
// transaction is the durability unit: a crash mid-write leaves the previous
// state visible, never a partial one.
func (m MailboxRepository) Enqueue(target, from, body string) error {
	identity := domain.CanonicalIdentity(target)
	id := uuid.New()
	at := time.Now().UTC()

	bytes, err := json.Marshal(DiskNote{
		ID:   id.String(),
		From: from,
		Body: body,
		At:   at.UnixMilli(),
	})
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(noteKey(identity, at, id), bytes)
	})
}

// Peek returns the pending notes of an identity oldest first, without
// touching them. Undecodable entries are skipped and reported, keeping the
// rest of the mailbox usable.
func (m MailboxRepository) Peek(identity string) ([]domain.PendingNote, error) {
	var diskNotes []DiskNote
	err := m.db.View(func(txn *badger.Txn) error {
		notes, _, err := m.collect(txn, domain.CanonicalIdentity(identity))
		diskNotes = notes
		return err
	})
	if err != nil {
		return nil, err
	}
	return toPendingNotes(diskNotes), nil
}

// Drain removes and returns every note of an identity oldest first. Reads
// and deletes happen in one transaction, so the store is persisted exactly
// once per drain and an emptied mailbox leaves no keys behind. Removal does
// not depend on what channel ends up carrying the note: the contract is
// "attempted and transmitted", not "confirmed read".
func (m MailboxRepository) Drain(identity string) ([]domain.PendingNote, error) {
	var diskNotes []DiskNote
	err := m.db.Update(func(txn *badger.Txn) error {
		notes, keys, err := m.collect(txn, domain.CanonicalIdentity(identity))
		if err != nil {
			return err
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		diskNotes = notes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPendingNotes(diskNotes), nil
}

// collect walks the identity prefix in key order and gathers decodable
// notes together with every visited key.
func (m MailboxRepository) collect(txn *badger.Txn, identity string) ([]DiskNote, [][]byte, error) {
	var notes []DiskNote
	var keys [][]byte

	prefix := notePrefix(identity)
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		keys = append(keys, item.KeyCopy(nil))
		err := item.Value(func(value []byte) error {
			var note DiskNote
			if err := json.Unmarshal(value, &note); err != nil {
				m.log.Warn("Skipping undecodable note",
					"key", string(item.Key()), "error", err)
				return nil
			}
			notes = append(notes, note)
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}
	return notes, keys, nil
}

func toPendingNotes(notes []DiskNote) []domain.PendingNote {
	return lo.Map(notes, func(item DiskNote, _ int) domain.PendingNote {
		id, err := uuid.Parse(item.ID)
		if err != nil {
			id = uuid.Nil
		}
		return domain.PendingNote{
			ID:   id,
			From: item.From,
			Body: item.Body,
			At:   time.UnixMilli(item.At).UTC(),
		}
	})
}
