package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"letterbox/domain"
	"letterbox/domain/event"
	"letterbox/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type chanSink struct {
	snapshots chan []domain.Letter
}

func newChanSink() *chanSink {
	return &chanSink{snapshots: make(chan []domain.Letter, 8)}
}

func (s *chanSink) Consume(ctx context.Context, letters []domain.Letter) error {
	s.snapshots <- letters
	return nil
}

func (s *chanSink) next(t *testing.T) []domain.Letter {
	t.Helper()
	select {
	case letters := <-s.snapshots:
		return letters
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func setupDispatcher(t *testing.T) (*Dispatcher, repositories.ILetterRepository) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	letters := repositories.NewLetterRepository(db, slog.Default())
	return NewDispatcher(slog.Default(), letters, 16), letters
}

func storedLetter(t *testing.T, letters repositories.ILetterRepository, sender, recipient string, at time.Time) domain.Letter {
	t.Helper()
	letter := domain.Letter{
		ID:             uuid.New(),
		SenderID:       sender,
		RecipientID:    recipient,
		RecipientEmail: recipient + "@example.com",
		Category:       domain.CategoryFuture,
		Subject:        "open this later",
		Content:        "a note for the next year",
		SentAt:         at,
	}
	require.NoError(t, letters.Append(letter, ""))
	return letter
}

func Test_Subscribe_Delivers_Initial_Snapshot(t *testing.T) {
	req := require.New(t)
	dispatcher, letters := setupDispatcher(t)
	existing := storedLetter(t, letters, "alice", "bob", time.Now().UTC())

	sink := newChanSink()
	sub := dispatcher.Subscribe(context.Background(), Filter{ParticipantID: "bob", Role: domain.RoleRecipient}, sink)
	defer sub.Cancel()

	snapshot := sink.next(t)
	req.Len(snapshot, 1)
	req.Equal(existing.ID, snapshot[0].ID)
}

func Test_Publish_Refreshes_Matching_Subscribers(t *testing.T) {
	req := require.New(t)
	dispatcher, letters := setupDispatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = dispatcher.Run(ctx) }()

	inbox := newChanSink()
	sent := newChanSink()
	other := newChanSink()
	dispatcher.Subscribe(ctx, Filter{ParticipantID: "bob", Role: domain.RoleRecipient}, inbox)
	dispatcher.Subscribe(ctx, Filter{ParticipantID: "alice", Role: domain.RoleSender}, sent)
	dispatcher.Subscribe(ctx, Filter{ParticipantID: "clara", Role: domain.RoleRecipient}, other)

	// Drain initial snapshots.
	inbox.next(t)
	sent.next(t)
	other.next(t)

	letter := storedLetter(t, letters, "alice", "bob", time.Now().UTC())
	dispatcher.Publish(event.LetterSent{Letter: letter})

	req.Len(inbox.next(t), 1)
	req.Len(sent.next(t), 1)
	// Clara's view is untouched.
	select {
	case <-other.snapshots:
		t.Fatal("unrelated subscriber received a snapshot")
	case <-time.After(100 * time.Millisecond):
	}
}

func Test_Read_Receipt_Reaches_Sender_View(t *testing.T) {
	req := require.New(t)
	dispatcher, letters := setupDispatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = dispatcher.Run(ctx) }()

	letter := storedLetter(t, letters, "alice", "bob", time.Now().UTC())

	sent := newChanSink()
	dispatcher.Subscribe(ctx, Filter{ParticipantID: "alice", Role: domain.RoleSender}, sent)
	first := sent.next(t)
	req.False(first[0].Read)

	updated, err := letters.MarkRead(letter.ID)
	req.NoError(err)
	dispatcher.Publish(event.LetterRead{Letter: updated})

	refreshed := sent.next(t)
	req.True(refreshed[0].Read)
}

func Test_Cancel_Is_Idempotent(t *testing.T) {
	dispatcher, letters := setupDispatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = dispatcher.Run(ctx) }()

	sink := newChanSink()
	sub := dispatcher.Subscribe(ctx, Filter{ParticipantID: "bob", Role: domain.RoleRecipient}, sink)
	sink.next(t)

	sub.Cancel()
	sub.Cancel()

	letter := storedLetter(t, letters, "alice", "bob", time.Now().UTC())
	dispatcher.Publish(event.LetterSent{Letter: letter})

	select {
	case <-sink.snapshots:
		t.Fatal("canceled subscription received a snapshot")
	case <-time.After(100 * time.Millisecond):
	}
}
