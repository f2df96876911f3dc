package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	pb "letterbox/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/proto"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	// Default prefix targets primary records, not the inbox:/sent: index keys
	prefix := flag.String("prefix", "letter:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Category", "Sent At", "Letter ID", "From", "To", "Subject", "Read"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
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

			// Skip index and idempotency keys, their values are bare ids
			key := string(item.Key())
			if strings.HasPrefix(key, "inbox:") ||
				strings.HasPrefix(key, "sent:") ||
				strings.HasPrefix(key, "idem:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				var p pb.Letter
				if err := proto.Unmarshal(v, &p); err != nil {
					// Log and keep scanning instead of stopping the whole dump
					fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
					return nil
				}

				// First 8 chars of the id keep the table readable
				displayID := p.Id
				if len(displayID) > 8 {
					displayID = displayID[:8]
				}

				read := ""
				if p.Read {
					read = "✓"
				}

				table.Append([]string{
					key,
					p.Category,
					time.Unix(0, p.SentAt).Format("15:04:05"),
					displayID,
					p.SenderEmail,
					p.RecipientEmail,
					p.Subject,
					read,
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
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// A dirty value log needs one writeable open to truncate
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}

			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
