package services

import (
	"context"
	"log/slog"
	"testing"

	"letterbox/domain"
	"letterbox/domain/event"
	"letterbox/errors"
	"letterbox/repositories"
	"letterbox/repositories/search"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	events []event.DomainEvent
}

func (c *capturePublisher) Publish(evt event.DomainEvent) {
	c.events = append(c.events, evt)
}

type fixture struct {
	service   *LetterService
	directory IDirectoryService
	publisher *capturePublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	t.Cleanup(func() { _ = writer.Close() })

	log := slog.Default()
	letters := repositories.NewLetterRepository(db, log)
	participants := repositories.NewParticipantRepository(db)
	resolver := NewRecipientResolver(participants, log)
	index := search.NewLetterIndex(writer, log, 50)
	publisher := &capturePublisher{}

	return fixture{
		service:   NewLetterService(letters, participants, resolver, index, publisher, log),
		directory: NewDirectoryService(participants),
		publisher: publisher,
	}
}

func (f fixture) register(t *testing.T, email, name string) domain.Participant {
	t.Helper()
	participant, err := f.directory.Register(email, name)
	require.NoError(t, err)
	return participant
}

func draftFor(email string) domain.Draft {
	return domain.Draft{
		RecipientEmail: email,
		Category:       domain.CategoryAppreciation,
		Subject:        "thank you",
		Content:        "for the soup, and everything else",
	}
}

func Test_Send_Happy_Path(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "Alice")
	bob := f.register(t, "bob@example.com", "Bob")

	letter, err := f.service.Send(context.Background(), domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft:    draftFor(bob.Email),
	})
	req.NoError(err)
	req.Equal(alice.ID, letter.SenderID)
	req.Equal("Alice", letter.SenderName)
	req.Equal(bob.ID, letter.RecipientID)
	req.Equal("Bob", letter.RecipientName)
	req.False(letter.Read)
	req.False(letter.SentAt.IsZero())

	req.Len(f.publisher.events, 1)
	sent, ok := f.publisher.events[0].(event.LetterSent)
	req.True(ok)
	req.Equal(letter, sent.Letter)
}

func Test_Send_Idempotent_Retry(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "Alice")
	bob := f.register(t, "bob@example.com", "Bob")

	cmd := domain.SendLetterCommand{
		SenderID:       alice.ID,
		Draft:          draftFor(bob.Email),
		IdempotencyKey: "retry-1",
	}
	first, err := f.service.Send(context.Background(), cmd)
	req.NoError(err)
	second, err := f.service.Send(context.Background(), cmd)
	req.NoError(err)
	req.Equal(first, second)

	inbox, _, err := f.service.Inbox(context.Background(), bob.ID)
	req.NoError(err)
	req.Len(inbox, 1)
	// The retry must not publish a second event either.
	req.Len(f.publisher.events, 1)
}

func Test_Send_Rejects_Invalid_Draft(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "Alice")
	f.register(t, "bob@example.com", "Bob")

	draft := draftFor("bob@example.com")
	draft.Subject = "   "
	_, err := f.service.Send(context.Background(), domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft:    draft,
	})
	var validationErr *errors.ValidationError
	req.ErrorAs(err, &validationErr)
	req.Equal("Subject", validationErr.Field)
	req.Empty(f.publisher.events)
}

func Test_Send_Unknown_Recipient(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "Alice")

	_, err := f.service.Send(context.Background(), domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft:    draftFor("ghost@example.com"),
	})
	req.ErrorIs(err, errors.ErrRecipientNotFound)
}

func Test_Send_Self_Addressed(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "Alice")

	_, err := f.service.Send(context.Background(), domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft:    draftFor(alice.Email),
	})
	req.ErrorIs(err, errors.ErrSelfAddressed)
}

func Test_Send_Ambiguous_Address_Earliest_Wins(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "Alice")
	first := f.register(t, "shared@example.com", "First")
	f.register(t, "shared@example.com", "Second")

	letter, err := f.service.Send(context.Background(), domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft:    draftFor("shared@example.com"),
	})
	req.NoError(err)
	req.Equal(first.ID, letter.RecipientID)
}

func Test_Open_Marks_Read_Once(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "Alice")
	bob := f.register(t, "bob@example.com", "Bob")

	letter, err := f.service.Send(context.Background(), domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft:    draftFor(bob.Email),
	})
	req.NoError(err)

	opened, err := f.service.Open(context.Background(), domain.OpenLetterCommand{
		CallerID: bob.ID,
		LetterID: letter.ID,
	})
	req.NoError(err)
	req.True(opened.Read)

	// Second open stays silent.
	again, err := f.service.Open(context.Background(), domain.OpenLetterCommand{
		CallerID: bob.ID,
		LetterID: letter.ID,
	})
	req.NoError(err)
	req.Equal(opened, again)

	var reads int
	for _, evt := range f.publisher.events {
		if _, ok := evt.(event.LetterRead); ok {
			reads++
		}
	}
	req.Equal(1, reads)
}

func Test_Open_Denied_To_Sender(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "Alice")
	bob := f.register(t, "bob@example.com", "Bob")

	letter, err := f.service.Send(context.Background(), domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft:    draftFor(bob.Email),
	})
	req.NoError(err)

	_, err = f.service.Open(context.Background(), domain.OpenLetterCommand{
		CallerID: alice.ID,
		LetterID: letter.ID,
	})
	req.ErrorIs(err, errors.ErrUnauthorizedTransition)
}

func Test_Get_Hidden_From_Strangers(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "Alice")
	bob := f.register(t, "bob@example.com", "Bob")
	clara := f.register(t, "clara@example.com", "Clara")

	letter, err := f.service.Send(context.Background(), domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft:    draftFor(bob.Email),
	})
	req.NoError(err)

	for _, caller := range []string{alice.ID, bob.ID} {
		got, err := f.service.Get(context.Background(), domain.OpenLetterCommand{
			CallerID: caller,
			LetterID: letter.ID,
		})
		req.NoError(err)
		req.Equal(letter.ID, got.ID)
	}

	_, err = f.service.Get(context.Background(), domain.OpenLetterCommand{
		CallerID: clara.ID,
		LetterID: letter.ID,
	})
	req.ErrorIs(err, errors.ErrLetterNotFound)
}

func Test_Open_Unknown_Letter(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	bob := f.register(t, "bob@example.com", "Bob")

	_, err := f.service.Open(context.Background(), domain.OpenLetterCommand{
		CallerID: bob.ID,
		LetterID: uuid.New(),
	})
	req.ErrorIs(err, errors.ErrLetterNotFound)
}

func Test_Inbox_Counts_Unread(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "Alice")
	bob := f.register(t, "bob@example.com", "Bob")

	var letters []domain.Letter
	for i := 0; i < 3; i++ {
		letter, err := f.service.Send(context.Background(), domain.SendLetterCommand{
			SenderID: alice.ID,
			Draft:    draftFor(bob.Email),
		})
		req.NoError(err)
		letters = append(letters, letter)
	}
	_, err := f.service.Open(context.Background(), domain.OpenLetterCommand{
		CallerID: bob.ID,
		LetterID: letters[0].ID,
	})
	req.NoError(err)

	inbox, unread, err := f.service.Inbox(context.Background(), bob.ID)
	req.NoError(err)
	req.Len(inbox, 3)
	req.Equal(2, unread)
}

func Test_Search_Roles(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "alice@example.com", "Alice")
	bob := f.register(t, "bob@example.com", "Bob")

	draft := draftFor(bob.Email)
	draft.Content = "the lighthouse keeper waved at us"
	letter, err := f.service.Send(context.Background(), domain.SendLetterCommand{
		SenderID: alice.ID,
		Draft:    draft,
	})
	req.NoError(err)

	received, total, err := f.service.Search(context.Background(), bob.ID, "recipient", "lighthouse")
	req.NoError(err)
	req.Equal(uint64(1), total)
	req.Len(received, 1)
	req.Equal(letter.ID, received[0].ID)

	sent, _, err := f.service.Search(context.Background(), alice.ID, "sender", "lighthouse")
	req.NoError(err)
	req.Len(sent, 1)

	_, _, err = f.service.Search(context.Background(), bob.ID, "owner", "lighthouse")
	req.ErrorIs(err, errors.ErrUnknownRole)
}

func Test_Register_Duplicate_Identity(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.register(t, "alice@example.com", "Alice")

	_, err := f.directory.Register("alice@example.com", "Alice")
	req.ErrorIs(err, errors.ErrParticipantExists)

	// Same address under a different name is a distinct participant.
	_, err = f.directory.Register("alice@example.com", "Alias")
	req.NoError(err)
}
