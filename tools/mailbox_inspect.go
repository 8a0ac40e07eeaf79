package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"chat-courier/repositories"
)

// Read-only dump of the offline mailbox, one row per pending note.
func main() {
	dbPath := flag.String("db", "data/mailbox", "Path to badger DB")
	prefix := flag.String("prefix", "note:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Recipient", "From", "At", "Body"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var note repositories.DiskNote
				if err := json.Unmarshal(v, &note); err != nil {
					// Log and keep scanning instead of stopping the dump
					fmt.Printf("Error decoding key %s: %v\n", string(item.Key()), err)
					return nil
				}

				rawKey := string(item.Key())
				recipient := ""
				if parts := strings.SplitN(rawKey, ":", 3); len(parts) == 3 {
					recipient = parts[1]
				}

				table.Append([]string{
					rawKey,
					recipient,
					note.From,
					time.UnixMilli(note.At).UTC().Format("2006-01-02 15:04:05"),
					note.Body,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
