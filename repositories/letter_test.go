package repositories

import (
	"log/slog"
	"testing"
	"time"

	"letterbox/domain"
	"letterbox/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testLetter(sender, recipient string, at time.Time) domain.Letter {
	return domain.Letter{
		ID:             uuid.New(),
		SenderID:       sender,
		SenderEmail:    sender + "@example.com",
		SenderName:     "Sender " + sender,
		RecipientID:    recipient,
		RecipientEmail: recipient + "@example.com",
		RecipientName:  "Recipient " + recipient,
		Category:       domain.CategoryDaily,
		Subject:        "about today",
		Content:        "nothing much happened, but I thought of you",
		SentAt:         at,
	}
}

func Test_Append_Then_Get_Roundtrip(t *testing.T) {
	req := require.New(t)
	repository := NewLetterRepository(openTestDB(t), slog.Default())

	letter := testLetter("alice", "bob", time.Now().UTC())
	req.NoError(repository.Append(letter, ""))

	fetched, err := repository.Get(letter.ID)
	req.NoError(err)
	req.Equal(letter, fetched)
}

func Test_Get_Unknown_Letter(t *testing.T) {
	req := require.New(t)
	repository := NewLetterRepository(openTestDB(t), slog.Default())

	_, err := repository.Get(uuid.New())
	req.ErrorIs(err, errors.ErrLetterNotFound)
}

func Test_List_By_Recipient_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewLetterRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	oldest := testLetter("alice", "bob", at)
	middle := testLetter("alice", "bob", at.Add(1*time.Minute))
	newest := testLetter("clara", "bob", at.Add(2*time.Minute))
	other := testLetter("alice", "dave", at.Add(3*time.Minute))
	for _, letter := range []domain.Letter{oldest, middle, newest, other} {
		req.NoError(repository.Append(letter, ""))
	}

	inbox, err := repository.ListByRecipient("bob")
	req.NoError(err)
	req.Equal([]domain.Letter{newest, middle, oldest}, inbox)
}

func Test_List_By_Sender_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewLetterRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	first := testLetter("alice", "bob", at)
	second := testLetter("alice", "dave", at.Add(1*time.Minute))
	foreign := testLetter("clara", "bob", at.Add(2*time.Minute))
	for _, letter := range []domain.Letter{first, second, foreign} {
		req.NoError(repository.Append(letter, ""))
	}

	sent, err := repository.ListBySender("alice")
	req.NoError(err)
	req.Equal([]domain.Letter{second, first}, sent)
}

func Test_List_Ties_Break_By_ID(t *testing.T) {
	req := require.New(t)
	repository := NewLetterRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	a := testLetter("alice", "bob", at)
	b := testLetter("clara", "bob", at)
	for _, letter := range []domain.Letter{a, b} {
		req.NoError(repository.Append(letter, ""))
	}

	inbox, err := repository.ListByRecipient("bob")
	req.NoError(err)
	req.Len(inbox, 2)
	req.Less(inbox[0].ID.String(), inbox[1].ID.String())
}

func Test_Mark_Read_Flips_Flag_Once(t *testing.T) {
	req := require.New(t)
	repository := NewLetterRepository(openTestDB(t), slog.Default())

	letter := testLetter("alice", "bob", time.Now().UTC())
	req.NoError(repository.Append(letter, ""))

	updated, err := repository.MarkRead(letter.ID)
	req.NoError(err)
	req.True(updated.Read)

	// Marking again keeps everything else untouched.
	again, err := repository.MarkRead(letter.ID)
	req.NoError(err)
	req.Equal(updated, again)
}

func Test_Mark_Read_Unknown_Letter(t *testing.T) {
	req := require.New(t)
	repository := NewLetterRepository(openTestDB(t), slog.Default())

	_, err := repository.MarkRead(uuid.New())
	req.ErrorIs(err, errors.ErrLetterNotFound)
}

func Test_Idempotency_Key_Resolves_Original(t *testing.T) {
	req := require.New(t)
	repository := NewLetterRepository(openTestDB(t), slog.Default())

	letter := testLetter("alice", "bob", time.Now().UTC())
	req.NoError(repository.Append(letter, "retry-42"))

	found, ok, err := repository.FindByIdempotencyKey("alice", "retry-42")
	req.NoError(err)
	req.True(ok)
	req.Equal(letter, found)

	// A different sender never sees the key.
	_, ok, err = repository.FindByIdempotencyKey("clara", "retry-42")
	req.NoError(err)
	req.False(ok)
}
