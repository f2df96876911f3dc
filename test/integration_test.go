package test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"letterbox/domain"
	"letterbox/errors"
	"letterbox/projection"
	"letterbox/repositories"
	"letterbox/repositories/search"
	"letterbox/runtime"
	"letterbox/runtime/workers"
	"letterbox/services"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type exchangeFixture struct {
	service    services.ILetterService
	directory  services.IDirectoryService
	dispatcher *runtime.Dispatcher
}

// setupExchange wires the full stack the server binary runs: real badger,
// real bluge, dispatcher under supervision. Only the gRPC edge is absent.
func setupExchange(t *testing.T) *exchangeFixture {
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	letters := repositories.NewLetterRepository(db, log)
	participants := repositories.NewParticipantRepository(db)
	index := search.NewLetterIndex(blugeWriter, log, 25)
	resolver := services.NewRecipientResolver(participants, log)
	dispatcher := runtime.NewDispatcher(log, letters, 100)
	service := services.NewLetterService(letters, participants, resolver, index, dispatcher, log)

	ctx, cancel := context.WithCancel(context.Background())
	supervisor := workers.NewSupervisor(log)
	supervisor.Add(dispatcher)
	go supervisor.Run(ctx)

	t.Cleanup(func() {
		cancel()
		supervisor.Stop()
		_ = blugeWriter.Close()
		_ = db.Close()
	})

	return &exchangeFixture{
		service:    service,
		directory:  services.NewDirectoryService(participants),
		dispatcher: dispatcher,
	}
}

// waitFor polls until the condition holds; the dispatcher delivers
// snapshots asynchronously.
func waitFor(t *testing.T, condition func() bool, msg string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if condition() {
			return
		}
		select {
		case <-deadline:
			require.Fail(t, "Timeout: "+msg)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func Test_Scenario_Send_And_Partition(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	fixture := setupExchange(t)

	alice, err := fixture.directory.Register("a@x.com", "Alice")
	req.NoError(err)
	bob, err := fixture.directory.Register("b@x.com", "Bob")
	req.NoError(err)

	aliceInbox := projection.NewInboxView(alice.ID)
	aliceSent := projection.NewSentView(alice.ID)
	bobInbox := projection.NewInboxView(bob.ID)
	bobSent := projection.NewSentView(bob.ID)
	fixture.dispatcher.Subscribe(ctx, runtime.Filter{ParticipantID: alice.ID, Role: domain.RoleRecipient}, aliceInbox)
	fixture.dispatcher.Subscribe(ctx, runtime.Filter{ParticipantID: alice.ID, Role: domain.RoleSender}, aliceSent)
	fixture.dispatcher.Subscribe(ctx, runtime.Filter{ParticipantID: bob.ID, Role: domain.RoleRecipient}, bobInbox)
	fixture.dispatcher.Subscribe(ctx, runtime.Filter{ParticipantID: bob.ID, Role: domain.RoleSender}, bobSent)

	// When Alice writes to Bob
	letter, err := fixture.service.Send(ctx, domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft: domain.Draft{
			RecipientEmail: "b@x.com",
			Category:       domain.CategoryDaily,
			Subject:        "Hi",
			Content:        "Hello",
		},
	})
	req.NoError(err)
	req.False(letter.Read)

	// Then the letter lands in exactly two views
	waitFor(t, func() bool { return len(bobInbox.Letters()) == 1 }, "letter never reached Bob's inbox")
	waitFor(t, func() bool { return len(aliceSent.Letters()) == 1 }, "letter never reached Alice's sent view")
	req.Equal(1, bobInbox.UnreadCount())
	req.False(aliceSent.Letters()[0].Read)

	// And never in the two others
	req.Empty(aliceInbox.Letters())
	req.Empty(bobSent.Letters())
}

func Test_Scenario_Open_Propagates_Read_Flag(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	fixture := setupExchange(t)

	alice, err := fixture.directory.Register("a@x.com", "Alice")
	req.NoError(err)
	bob, err := fixture.directory.Register("b@x.com", "Bob")
	req.NoError(err)

	bobInbox := projection.NewInboxView(bob.ID)
	aliceSent := projection.NewSentView(alice.ID)
	fixture.dispatcher.Subscribe(ctx, runtime.Filter{ParticipantID: bob.ID, Role: domain.RoleRecipient}, bobInbox)
	fixture.dispatcher.Subscribe(ctx, runtime.Filter{ParticipantID: alice.ID, Role: domain.RoleSender}, aliceSent)

	letter, err := fixture.service.Send(ctx, domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft: domain.Draft{
			RecipientEmail: "b@x.com",
			Category:       domain.CategoryDaily,
			Subject:        "Hi",
			Content:        "Hello",
		},
	})
	req.NoError(err)
	waitFor(t, func() bool { return bobInbox.UnreadCount() == 1 }, "unread count never reached 1")

	// When Bob opens the letter
	opened, err := fixture.service.Open(ctx, domain.OpenLetterCommand{CallerID: bob.ID, LetterID: letter.ID})
	req.NoError(err)
	req.True(opened.Read)

	// Then the store agrees
	got, err := fixture.service.Get(ctx, domain.OpenLetterCommand{CallerID: bob.ID, LetterID: letter.ID})
	req.NoError(err)
	req.True(got.Read)

	// And both sides converge
	waitFor(t, func() bool { return bobInbox.UnreadCount() == 0 }, "unread count never dropped to 0")
	waitFor(t, func() bool { return aliceSent.ReadCount() == 1 }, "read receipt never reached Alice")
}

func Test_Scenario_Unknown_Recipient_Creates_Nothing(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	fixture := setupExchange(t)

	alice, err := fixture.directory.Register("a@x.com", "Alice")
	req.NoError(err)

	_, err = fixture.service.Send(ctx, domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft: domain.Draft{
			RecipientEmail: "nobody@x.com",
			Category:       domain.CategoryDaily,
			Subject:        "Hi",
			Content:        "Hello",
		},
	})
	req.ErrorIs(err, errors.ErrRecipientNotFound)

	sent, err := fixture.service.Sent(ctx, alice.ID)
	req.NoError(err)
	req.Empty(sent)
}

func Test_Scenario_Sender_Cannot_Mark_Read(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	fixture := setupExchange(t)

	alice, err := fixture.directory.Register("a@x.com", "Alice")
	req.NoError(err)
	_, err = fixture.directory.Register("b@x.com", "Bob")
	req.NoError(err)

	letter, err := fixture.service.Send(ctx, domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft: domain.Draft{
			RecipientEmail: "b@x.com",
			Category:       domain.CategoryDaily,
			Subject:        "Hi",
			Content:        "Hello",
		},
	})
	req.NoError(err)

	// The author never gets to flip the read flag
	_, err = fixture.service.Open(ctx, domain.OpenLetterCommand{CallerID: alice.ID, LetterID: letter.ID})
	req.ErrorIs(err, errors.ErrUnauthorizedTransition)

	got, err := fixture.service.Get(ctx, domain.OpenLetterCommand{CallerID: alice.ID, LetterID: letter.ID})
	req.NoError(err)
	req.False(got.Read)
}
