//go:generate go run go.uber.org/mock/mockgen -source=participant.go -destination=../mocks/mock_participant_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"letterbox/domain"
	"letterbox/errors"
	pb "letterbox/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

type IParticipantRepository interface {
	Create(email, name string) (domain.Participant, error)
	Get(id string) (domain.Participant, error)
	ListByEmail(email string) ([]domain.Participant, error)
}

type ParticipantRepository struct {
	db *badger.DB
}

func NewParticipantRepository(db *badger.DB) IParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Create persists a participant and an email index entry.
// The index key embeds the zero-padded creation timestamp so that a scan
// over one email yields participants in registration order; several
// participants may legitimately share an address.
func (p ParticipantRepository) Create(email, name string) (domain.Participant, error) {
	participant := domain.Participant{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	data, err := proto.Marshal(fromParticipant(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("marshal failed: %w", err)
	}

	emailKey := fmt.Sprintf("pemail:%s:%019d:%s", email, participant.CreatedAt.UnixNano(), participant.ID)
	err = p.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("participant:"+participant.ID), data); err != nil {
			return err
		}
		return txn.Set([]byte(emailKey), []byte(participant.ID))
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return participant, nil
}

// Get retrieves a participant by ID.
func (p ParticipantRepository) Get(id string) (domain.Participant, error) {
	var participantPb pb.Participant
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("participant:" + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &participantPb)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Participant{}, errors.ErrParticipantNotFound
	}
	if err != nil {
		return domain.Participant{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return toParticipant(&participantPb), nil
}

// ListByEmail returns every participant registered under the address,
// oldest registration first.
func (p ParticipantRepository) ListByEmail(email string) ([]domain.Participant, error) {
	var ids []string
	err := p.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("pemail:%s:", email))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				ids = append(ids, string(val))
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

	participants := make([]domain.Participant, 0, len(ids))
	for _, id := range ids {
		participant, err := p.Get(id)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}
	return participants, nil
}

func fromParticipant(participant domain.Participant) *pb.Participant {
	return &pb.Participant{
		Id:        participant.ID,
		Email:     participant.Email,
		Name:      participant.Name,
		CreatedAt: participant.CreatedAt.UnixNano(),
	}
}

func toParticipant(participantPb *pb.Participant) domain.Participant {
	return domain.Participant{
		ID:        participantPb.Id,
		Email:     participantPb.Email,
		Name:      participantPb.Name,
		CreatedAt: time.Unix(0, participantPb.CreatedAt).UTC(),
	}
}
