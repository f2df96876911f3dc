package main

import (
	"context"
	"flag"
	"io"
	"log"
	"time"

	pb "letterbox/proto/exchange"
	"letterbox/repositories"
	"letterbox/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Demo harness for the exchange API. With -seed it first registers two
// participants straight into the store (run it BEFORE the server, the
// lock is exclusive), then drives a full send/subscribe/open round trip
// over gRPC.
func main() {
	addr := flag.String("addr", "localhost:50051", "Exchange server address")
	dbPath := flag.String("db", "", "Badger path for -seed (must match the server's BADGER_FILEPATH)")
	seed := flag.Bool("seed", false, "Register the two demo participants and exit")
	flag.Parse()

	if *seed {
		seedParticipants(*dbPath)
		return
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewExchangeServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	aliceID, bobID := lookupDemoIDs(*dbPath)

	// 1. Bob watches his inbox before anything is sent.
	step("Subscribe: bob follows his inbox")
	stream, err := client.Subscribe(ctx, &pb.SubscribeRequest{
		ParticipantId: bobID,
		Role:          "recipient",
	})
	if err != nil {
		log.Fatalf("Subscribe failed: %v", err)
	}
	go printSnapshots(stream)

	// 2. Alice writes to Bob.
	step("SendLetter: alice -> bob")
	sent, err := client.SendLetter(ctx, &pb.SendLetterRequest{
		SenderId:       aliceID,
		RecipientEmail: "bob@example.com",
		Category:       "appreciation",
		Subject:        "Thanks for yesterday",
		Content:        "The soup was perfect. Same time next week?",
		IdempotencyKey: "demo-letter-1",
	})
	if err != nil {
		log.Fatalf("SendLetter failed: %v", err)
	}
	color.Green.Printf("  letter %s sent at %s\n",
		sent.Letter.LetterId, sent.Letter.SentAt.AsTime().Format(time.RFC3339))

	// 3. Retry with the same key: must come back as the same letter.
	step("SendLetter retry (same idempotency key)")
	retried, err := client.SendLetter(ctx, &pb.SendLetterRequest{
		SenderId:       aliceID,
		RecipientEmail: "bob@example.com",
		Category:       "appreciation",
		Subject:        "Thanks for yesterday",
		Content:        "The soup was perfect. Same time next week?",
		IdempotencyKey: "demo-letter-1",
	})
	if err != nil {
		log.Fatalf("Retry failed: %v", err)
	}
	if retried.Letter.LetterId == sent.Letter.LetterId {
		color.Green.Println("  deduplicated, same letter id")
	} else {
		color.Red.Println("  DUPLICATE CREATED, idempotency broken")
	}

	// 4. Bob opens it.
	step("OpenLetter: bob reads the letter")
	opened, err := client.OpenLetter(ctx, &pb.LetterRequest{
		CallerId: bobID,
		LetterId: sent.Letter.LetterId,
	})
	if err != nil {
		log.Fatalf("OpenLetter failed: %v", err)
	}
	color.Green.Printf("  read=%v\n", opened.Letter.Read)

	// 5. Alice must see the acknowledgement in her sent view.
	step("ListSent: alice checks the read flag")
	sentView, err := client.ListSent(ctx, &pb.ListRequest{ParticipantId: aliceID})
	if err != nil {
		log.Fatalf("ListSent failed: %v", err)
	}
	for _, letter := range sentView.Letters {
		color.Cyan.Printf("  %s  %-30s read=%v\n",
			letter.SentAt.AsTime().Format("15:04:05"), letter.Subject, letter.Read)
	}

	// 6. Full-text search.
	step("SearchLetters: bob searches for 'soup'")
	found, err := client.SearchLetters(ctx, &pb.SearchRequest{
		ParticipantId: bobID,
		Role:          "recipient",
		Terms:         "soup",
	})
	if err != nil {
		log.Fatalf("SearchLetters failed: %v", err)
	}
	for _, letter := range found.Letters {
		color.Cyan.Printf("  hit: %s (%s)\n", letter.Subject, letter.Category)
	}

	// Let the subscription print the final snapshot before exiting.
	time.Sleep(500 * time.Millisecond)
	color.Green.Println("Demo finished")
}

func step(title string) {
	color.New(color.BgBlack, color.FgGreen).Printf("====== %s ======\n", title)
}

func printSnapshots(stream pb.ExchangeService_SubscribeClient) {
	for {
		reply, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			return
		}
		color.Yellow.Printf("  [inbox snapshot] %d letters, %d unread\n",
			len(reply.Letters), reply.UnreadCount)
	}
}

func seedParticipants(dbPath string) {
	if dbPath == "" {
		log.Fatal("-seed requires -db")
	}
	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	directory := services.NewDirectoryService(repositories.NewParticipantRepository(db))
	for _, p := range []struct{ email, name string }{
		{"alice@example.com", "Alice"},
		{"bob@example.com", "Bob"},
	} {
		participant, err := directory.Register(p.email, p.name)
		if err != nil {
			log.Fatalf("Failed to register %s: %v", p.email, err)
		}
		color.Green.Printf("registered %s as %s\n", participant.Email, participant.ID)
	}
}

func lookupDemoIDs(dbPath string) (string, string) {
	if dbPath == "" {
		log.Fatal("-db is required to look up the demo participant ids")
	}
	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	participants := repositories.NewParticipantRepository(db)
	alice := mustResolve(participants, "alice@example.com")
	bob := mustResolve(participants, "bob@example.com")
	return alice, bob
}

func mustResolve(participants repositories.IParticipantRepository, email string) string {
	matches, err := participants.ListByEmail(email)
	if err != nil || len(matches) == 0 {
		log.Fatalf("Participant %s not found, run with -seed first", email)
	}
	return matches[0].ID
}
