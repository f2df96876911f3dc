//go:generate go run go.uber.org/mock/mockgen -source=letter.go -destination=../mocks/mock_letter_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"letterbox/domain"
	"letterbox/errors"
	pb "letterbox/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

type ILetterRepository interface {
	Append(letter domain.Letter, idempotencyKey string) error
	Get(id uuid.UUID) (domain.Letter, error)
	FindByIdempotencyKey(senderID, key string) (domain.Letter, bool, error)
	ListByRecipient(recipientID string) ([]domain.Letter, error)
	ListBySender(senderID string) ([]domain.Letter, error)
	MarkRead(id uuid.UUID) (domain.Letter, error)
}

type LetterRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewLetterRepository(db *badger.DB, log *slog.Logger) ILetterRepository {
	return &LetterRepository{db: db, log: log}
}

// Append persists a letter in BadgerDB under its primary key plus two
// view index keys, all in one transaction.
// Index keys are formatted as "{view}:{participant_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two letters
//     arrive at the same nanosecond.
//
// When idempotencyKey is non-empty an "idem" record maps it to the letter ID,
// so a retried send resolves to the original letter instead of a duplicate.
func (r LetterRepository) Append(letter domain.Letter, idempotencyKey string) error {
	bytes, err := proto.Marshal(fromLetter(letter))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	inboxKey := fmt.Sprintf("inbox:%s:%019d:%s", letter.RecipientID, letter.SentAt.UnixNano(), letter.ID)
	sentKey := fmt.Sprintf("sent:%s:%019d:%s", letter.SenderID, letter.SentAt.UnixNano(), letter.ID)

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(primaryKey(letter.ID), bytes); err != nil {
			return err
		}
		if err := txn.Set([]byte(inboxKey), []byte(letter.ID.String())); err != nil {
			return err
		}
		if err := txn.Set([]byte(sentKey), []byte(letter.ID.String())); err != nil {
			return err
		}
		if idempotencyKey != "" {
			idemKey := fmt.Sprintf("idem:%s:%s", letter.SenderID, idempotencyKey)
			return txn.Set([]byte(idemKey), []byte(letter.ID.String()))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return nil
}

// Get retrieves a letter by its primary key.
func (r LetterRepository) Get(id uuid.UUID) (domain.Letter, error) {
	var letterPb pb.Letter
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(primaryKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &letterPb)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Letter{}, errors.ErrLetterNotFound
	}
	if err != nil {
		return domain.Letter{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return toLetter(&letterPb)
}

// FindByIdempotencyKey resolves a previously recorded send to its letter.
// The second return value is false when the key was never seen.
func (r LetterRepository) FindByIdempotencyKey(senderID, key string) (domain.Letter, bool, error) {
	var rawID []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fmt.Sprintf("idem:%s:%s", senderID, key)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			rawID = append([]byte(nil), val...)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Letter{}, false, nil
	}
	if err != nil {
		return domain.Letter{}, false, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	id, err := uuid.Parse(string(rawID))
	if err != nil {
		return domain.Letter{}, false, err
	}
	letter, err := r.Get(id)
	if err != nil {
		return domain.Letter{}, false, err
	}
	return letter, true, nil
}

// ListByRecipient returns every letter addressed to the participant, newest first.
func (r LetterRepository) ListByRecipient(recipientID string) ([]domain.Letter, error) {
	return r.scanView(fmt.Sprintf("inbox:%s:", recipientID))
}

// ListBySender returns every letter the participant sent, newest first.
func (r LetterRepository) ListBySender(senderID string) ([]domain.Letter, error) {
	return r.scanView(fmt.Sprintf("sent:%s:", senderID))
}

// MarkRead flips the read flag of a stored letter and returns the updated copy.
// The read flag is the only mutable part of a letter.
func (r LetterRepository) MarkRead(id uuid.UUID) (domain.Letter, error) {
	var letterPb pb.Letter
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(primaryKey(id))
		if err != nil {
			return err
		}
		if err = item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &letterPb)
		}); err != nil {
			return err
		}
		letterPb.Read = true
		bytes, err := proto.Marshal(&letterPb)
		if err != nil {
			return err
		}
		return txn.Set(primaryKey(id), bytes)
	})
	if err == badger.ErrKeyNotFound {
		return domain.Letter{}, errors.ErrLetterNotFound
	}
	if err != nil {
		return domain.Letter{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return toLetter(&letterPb)
}

// scanView walks a view index in reverse so the padded timestamps come out
// newest first, then resolves each index entry to its primary record.
// Ties on the same nanosecond are re-sorted by letter ID ascending so the
// order is stable across restarts.
func (r LetterRepository) scanView(prefixStr string) ([]domain.Letter, error) {
	var ids []uuid.UUID
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible timestamp, then walk backwards.
		seekKey := append(prefix, []byte("9999999999999999999:~")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				id, err := uuid.Parse(string(val))
				if err != nil {
					return err
				}
				ids = append(ids, id)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}

	letters := make([]domain.Letter, 0, len(ids))
	for _, id := range ids {
		letter, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		letters = append(letters, letter)
	}
	sort.SliceStable(letters, func(i, j int) bool {
		if !letters[i].SentAt.Equal(letters[j].SentAt) {
			return letters[i].SentAt.After(letters[j].SentAt)
		}
		return letters[i].ID.String() < letters[j].ID.String()
	})
	return letters, nil
}

func primaryKey(id uuid.UUID) []byte {
	return []byte("letter:" + id.String())
}

func fromLetter(letter domain.Letter) *pb.Letter {
	return &pb.Letter{
		Id:             letter.ID.String(),
		SenderId:       letter.SenderID,
		SenderEmail:    letter.SenderEmail,
		SenderName:     letter.SenderName,
		RecipientId:    letter.RecipientID,
		RecipientEmail: letter.RecipientEmail,
		RecipientName:  letter.RecipientName,
		Category:       string(letter.Category),
		Subject:        letter.Subject,
		Content:        letter.Content,
		SentAt:         letter.SentAt.UnixNano(),
		Read:           letter.Read,
	}
}

func toLetter(letterPb *pb.Letter) (domain.Letter, error) {
	parsedID, err := uuid.Parse(letterPb.Id)
	if err != nil {
		return domain.Letter{}, err
	}
	return domain.Letter{
		ID:             parsedID,
		SenderID:       letterPb.SenderId,
		SenderEmail:    letterPb.SenderEmail,
		SenderName:     letterPb.SenderName,
		RecipientID:    letterPb.RecipientId,
		RecipientEmail: letterPb.RecipientEmail,
		RecipientName:  letterPb.RecipientName,
		Category:       domain.Category(letterPb.Category),
		Subject:        letterPb.Subject,
		Content:        letterPb.Content,
		SentAt:         time.Unix(0, letterPb.SentAt).UTC(),
		Read:           letterPb.Read,
	}, nil
}
