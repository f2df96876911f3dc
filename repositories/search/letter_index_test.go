package search

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"letterbox/domain"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestIndex(t *testing.T) *LetterIndex {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewLetterIndex(writer, slog.Default(), 50)
}

func indexedLetter(sender, recipient, subject, content string) domain.Letter {
	return domain.Letter{
		ID:          uuid.New(),
		SenderID:    sender,
		RecipientID: recipient,
		Category:    domain.CategoryMemory,
		Subject:     subject,
		Content:     content,
		SentAt:      time.Now().UTC(),
	}
}

func Test_Search_By_Content(t *testing.T) {
	req := require.New(t)
	idx := openTestIndex(t)

	match := indexedLetter("alice", "bob", "our trip", "remember the lighthouse at dawn")
	other := indexedLetter("alice", "bob", "groceries", "we are out of coffee again")
	req.NoError(idx.Index(match))
	req.NoError(idx.Index(other))
	req.NoError(idx.Flush())

	ids, total, err := idx.Search(context.Background(), "bob", domain.RoleRecipient, "lighthouse")
	req.NoError(err)
	req.Equal(uint64(1), total)
	req.Equal([]uuid.UUID{match.ID}, ids)
}

func Test_Search_By_Subject(t *testing.T) {
	req := require.New(t)
	idx := openTestIndex(t)

	letter := indexedLetter("alice", "bob", "anniversary plans", "see you saturday")
	req.NoError(idx.Index(letter))
	req.NoError(idx.Flush())

	ids, _, err := idx.Search(context.Background(), "bob", domain.RoleRecipient, "anniversary")
	req.NoError(err)
	req.Equal([]uuid.UUID{letter.ID}, ids)
}

func Test_Search_Does_Not_Leak_Across_Mailboxes(t *testing.T) {
	req := require.New(t)
	idx := openTestIndex(t)

	forBob := indexedLetter("alice", "bob", "secret", "the surprise party is on friday")
	forDave := indexedLetter("alice", "dave", "secret", "the surprise party is cancelled")
	req.NoError(idx.Index(forBob))
	req.NoError(idx.Index(forDave))
	req.NoError(idx.Flush())

	ids, total, err := idx.Search(context.Background(), "bob", domain.RoleRecipient, "surprise")
	req.NoError(err)
	req.Equal(uint64(1), total)
	req.Equal([]uuid.UUID{forBob.ID}, ids)
}

func Test_Search_Sent_Role(t *testing.T) {
	req := require.New(t)
	idx := openTestIndex(t)

	sent := indexedLetter("alice", "bob", "postcard", "greetings from the coast")
	received := indexedLetter("bob", "alice", "postcard", "greetings from the mountains")
	req.NoError(idx.Index(sent))
	req.NoError(idx.Index(received))
	req.NoError(idx.Flush())

	ids, _, err := idx.Search(context.Background(), "alice", domain.RoleSender, "greetings")
	req.NoError(err)
	req.Equal([]uuid.UUID{sent.ID}, ids)
}

func Test_Search_No_Results(t *testing.T) {
	req := require.New(t)
	idx := openTestIndex(t)

	req.NoError(idx.Flush())
	ids, total, err := idx.Search(context.Background(), "bob", domain.RoleRecipient, "nothing")
	req.NoError(err)
	req.Zero(total)
	req.Empty(ids)
}

func Test_Flush_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	idx := openTestIndex(t)

	req.NoError(idx.Flush())
	req.NoError(idx.Flush())
}
