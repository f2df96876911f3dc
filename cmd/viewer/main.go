package main

import (
	"fmt"
	"log"
	"time"

	"letterbox/internal"
	pb "letterbox/proto/storage"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"google.golang.org/protobuf/proto"
)

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening while the server holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Start Debug Server Only
	// Empty stats provider since the dispatcher isn't running here
	emptyStats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Time":   time.Now().Format(time.RFC822),
		}
	}

	fmt.Printf("🌐 Viewer started at http://localhost:%d/inspect\n", config.DebugPort)

	internal.StartDebugServer(db, config.DebugPort, "/inspect", LetterMapper, emptyStats)
	internal.Wait("letter:")
}

// LetterMapper decodes primary letter values; index keys keep the
// default layout decoding.
func LetterMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	var p pb.Letter
	if err := proto.Unmarshal(val, &p); err != nil {
		return row
	}

	row.Type = p.Category
	row.EntityID = p.Id
	if len(row.EntityID) > 8 {
		row.EntityID = row.EntityID[:8]
	}
	row.Namespace = p.RecipientEmail
	row.Timestamp = time.Unix(0, p.SentAt).Format("15:04:05")
	row.Detail = p.Subject
	if p.Read {
		row.Detail += " (read)"
	}
	return row
}
