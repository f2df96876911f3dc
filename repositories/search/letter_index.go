//go:generate go run go.uber.org/mock/mockgen -source=letter_index.go -destination=../../mocks/mock_letter_index.go -package=mocks
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"letterbox/domain"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/index"
	"github.com/google/uuid"
)

type ILetterIndex interface {
	Index(letter domain.Letter) error
	Flush() error
	Search(ctx context.Context, participantID string, role domain.Role, terms string) ([]uuid.UUID, uint64, error)
}

// LetterIndex mirrors the letter store into a Bluge full-text index.
// Writes are batched; Flush makes them visible to readers.
type LetterIndex struct {
	writer *bluge.Writer
	log    *slog.Logger

	mu    sync.Mutex
	batch *index.Batch
	limit int
}

func NewLetterIndex(writer *bluge.Writer, log *slog.Logger, limit int) *LetterIndex {
	return &LetterIndex{
		writer: writer,
		log:    log,
		batch:  bluge.NewBatch(),
		limit:  limit,
	}
}

// Index queues a letter for indexing. Subject and content are analyzed
// for full-text search; participant IDs are kept as exact keywords so a
// search never leaks across mailboxes.
func (i *LetterIndex) Index(letter domain.Letter) error {
	doc := bluge.NewDocument(letter.ID.String()).
		AddField(bluge.NewTextField("subject", letter.Subject)).
		AddField(bluge.NewTextField("content", letter.Content)).
		AddField(bluge.NewKeywordField("sender_id", letter.SenderID)).
		AddField(bluge.NewKeywordField("recipient_id", letter.RecipientID)).
		AddField(bluge.NewKeywordField("category", string(letter.Category)))

	i.mu.Lock()
	defer i.mu.Unlock()
	i.batch.Update(doc.ID(), doc)
	return nil
}

// Flush applies the pending batch. Safe to call with an empty batch.
func (i *LetterIndex) Flush() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.writer.Batch(i.batch); err != nil {
		return fmt.Errorf("bluge batch failed: %w", err)
	}
	i.batch.Reset()
	return nil
}

// Search returns the IDs of the participant's letters matching the terms,
// best score first, plus the total hit count. The role decides whether the
// inbox or the sent view is searched.
func (i *LetterIndex) Search(ctx context.Context, participantID string, role domain.Role, terms string) ([]uuid.UUID, uint64, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, 0, fmt.Errorf("bluge reader failed: %w", err)
	}
	defer func() { _ = reader.Close() }()

	participantField := "recipient_id"
	if role == domain.RoleSender {
		participantField = "sender_id"
	}

	textQuery := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(terms).SetField("subject")).
		AddShould(bluge.NewMatchQuery(terms).SetField("content")).
		SetMinShould(1)
	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(participantID).SetField(participantField)).
		AddMust(textQuery)

	request := bluge.NewTopNSearch(i.limit, query).WithStandardAggregations()
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, fmt.Errorf("bluge search failed: %w", err)
	}

	var ids []uuid.UUID
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, 0, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if id, parseErr := uuid.Parse(string(value)); parseErr == nil {
					ids = append(ids, id)
				}
			}
			return true
		})
		if err != nil {
			return nil, 0, err
		}
	}
	return ids, iterator.Aggregations().Count(), nil
}
