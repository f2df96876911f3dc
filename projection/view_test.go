package projection

import (
	"context"
	"testing"
	"time"

	"letterbox/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func snapshot(read ...bool) []domain.Letter {
	letters := make([]domain.Letter, len(read))
	for i, r := range read {
		letters[i] = domain.Letter{
			ID:          uuid.New(),
			SenderID:    "alice",
			RecipientID: "bob",
			Category:    domain.CategoryDaily,
			Subject:     "hello",
			Content:     "a few words",
			SentAt:      time.Now().UTC(),
			Read:        r,
		}
	}
	return letters
}

func TestInboxView_Consume_ReplacesSnapshot(t *testing.T) {
	view := NewInboxView("bob")
	ctx := context.Background()

	require.NoError(t, view.Consume(ctx, snapshot(false, false, true)))
	require.Len(t, view.Letters(), 3)
	require.Equal(t, 2, view.UnreadCount())

	// A fresh snapshot wins outright, it is not merged in.
	require.NoError(t, view.Consume(ctx, snapshot(true)))
	require.Len(t, view.Letters(), 1)
	require.Equal(t, 0, view.UnreadCount())
}

func TestSentView_Consume_TracksReadReceipts(t *testing.T) {
	view := NewSentView("alice")
	ctx := context.Background()

	require.NoError(t, view.Consume(ctx, snapshot(false, true)))
	require.Len(t, view.Letters(), 2)
	require.Equal(t, 1, view.ReadCount())
}

func TestInboxView_Empty(t *testing.T) {
	view := NewInboxView("bob")
	require.Empty(t, view.Letters())
	require.Zero(t, view.UnreadCount())
}
