package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"letterbox/contract"
	"letterbox/domain"
	"letterbox/domain/event"
	"letterbox/errors"
	"letterbox/repositories"
	"letterbox/repositories/search"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ILetterService interface {
	Send(ctx context.Context, cmd domain.SendLetterCommand) (domain.Letter, error)
	Get(ctx context.Context, cmd domain.OpenLetterCommand) (domain.Letter, error)
	Open(ctx context.Context, cmd domain.OpenLetterCommand) (domain.Letter, error)
	Inbox(ctx context.Context, participantID string) ([]domain.Letter, int, error)
	Sent(ctx context.Context, participantID string) ([]domain.Letter, error)
	Search(ctx context.Context, participantID, role, terms string) ([]domain.Letter, uint64, error)
}

// LetterService owns every state transition a letter can go through.
// Repositories stay dumb; the rules live here.
type LetterService struct {
	letters      repositories.ILetterRepository
	participants repositories.IParticipantRepository
	resolver     IRecipientResolver
	index        search.ILetterIndex
	publisher    contract.EventPublisher
	log          *slog.Logger
	now          func() time.Time
}

func NewLetterService(
	letters repositories.ILetterRepository,
	participants repositories.IParticipantRepository,
	resolver IRecipientResolver,
	index search.ILetterIndex,
	publisher contract.EventPublisher,
	log *slog.Logger,
) *LetterService {
	return &LetterService{
		letters:      letters,
		participants: participants,
		resolver:     resolver,
		index:        index,
		publisher:    publisher,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Send validates the draft, resolves the recipient, and appends the
// letter with both participants captured as snapshots. Later profile
// changes never rewrite a stored letter.
func (s *LetterService) Send(ctx context.Context, cmd domain.SendLetterCommand) (domain.Letter, error) {
	if cmd.IdempotencyKey != "" {
		original, found, err := s.letters.FindByIdempotencyKey(cmd.SenderID, cmd.IdempotencyKey)
		if err != nil {
			return domain.Letter{}, err
		}
		if found {
			s.log.Debug("send retried, returning original letter",
				"sender", cmd.SenderID, "letter", original.ID)
			return original, nil
		}
	}

	if err := domain.ValidateDraft(cmd.Draft); err != nil {
		return domain.Letter{}, err
	}

	sender, err := s.participants.Get(cmd.SenderID)
	if err != nil {
		return domain.Letter{}, err
	}
	recipient, err := s.resolver.Resolve(cmd.Draft.RecipientEmail)
	if err != nil {
		return domain.Letter{}, err
	}
	if recipient.ID == sender.ID {
		return domain.Letter{}, errors.ErrSelfAddressed
	}

	letter := domain.Letter{
		ID:             uuid.New(),
		SenderID:       sender.ID,
		SenderEmail:    sender.Email,
		SenderName:     sender.Name,
		RecipientID:    recipient.ID,
		RecipientEmail: recipient.Email,
		RecipientName:  recipient.Name,
		Category:       cmd.Draft.Category,
		Subject:        strings.TrimSpace(cmd.Draft.Subject),
		Content:        cmd.Draft.Content,
		SentAt:         s.now(),
	}
	if err := s.letters.Append(letter, cmd.IdempotencyKey); err != nil {
		return domain.Letter{}, err
	}

	// Indexing is best effort: a search miss is recoverable, a lost
	// letter is not.
	if err := s.index.Index(letter); err != nil {
		s.log.Warn("letter indexing failed", "letter", letter.ID, "error", err)
	} else if err := s.index.Flush(); err != nil {
		s.log.Warn("index flush failed", "letter", letter.ID, "error", err)
	}

	s.publisher.Publish(event.LetterSent{Letter: letter})
	return letter, nil
}

// Get returns a letter to one of its two participants.
// Anyone else learns nothing, not even that the letter exists.
func (s *LetterService) Get(ctx context.Context, cmd domain.OpenLetterCommand) (domain.Letter, error) {
	letter, err := s.letters.Get(cmd.LetterID)
	if err != nil {
		return domain.Letter{}, err
	}
	if cmd.CallerID != letter.SenderID && cmd.CallerID != letter.RecipientID {
		return domain.Letter{}, errors.ErrLetterNotFound
	}
	return letter, nil
}

// Open marks a letter as read on behalf of its recipient. The transition
// only fires once; opening an already-read letter is a harmless no-op.
func (s *LetterService) Open(ctx context.Context, cmd domain.OpenLetterCommand) (domain.Letter, error) {
	letter, err := s.letters.Get(cmd.LetterID)
	if err != nil {
		return domain.Letter{}, err
	}
	if cmd.CallerID != letter.RecipientID {
		return domain.Letter{}, errors.ErrUnauthorizedTransition
	}
	if letter.Read {
		return letter, nil
	}

	updated, err := s.letters.MarkRead(cmd.LetterID)
	if err != nil {
		return domain.Letter{}, err
	}
	// Publish before returning so the sender's view catches up no later
	// than the recipient's.
	s.publisher.Publish(event.LetterRead{Letter: updated})
	return updated, nil
}

// Inbox returns the participant's received letters, newest first, along
// with the number still unread.
func (s *LetterService) Inbox(ctx context.Context, participantID string) ([]domain.Letter, int, error) {
	letters, err := s.letters.ListByRecipient(participantID)
	if err != nil {
		return nil, 0, err
	}
	unread := lo.CountBy(letters, func(letter domain.Letter) bool { return !letter.Read })
	return letters, unread, nil
}

// Sent returns the letters the participant wrote, newest first.
func (s *LetterService) Sent(ctx context.Context, participantID string) ([]domain.Letter, error) {
	return s.letters.ListBySender(participantID)
}

// Search runs a full-text query over one side of the participant's
// correspondence. Hits are resolved back to store records so the caller
// always sees the current read flag.
func (s *LetterService) Search(ctx context.Context, participantID, role, terms string) ([]domain.Letter, uint64, error) {
	searchRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, 0, err
	}

	ids, total, err := s.index.Search(ctx, participantID, searchRole, terms)
	if err != nil {
		return nil, 0, err
	}
	letters := make([]domain.Letter, 0, len(ids))
	for _, id := range ids {
		letter, err := s.letters.Get(id)
		if err != nil {
			// The index may briefly trail the store.
			s.log.Warn("search hit missing from store", "letter", id)
			continue
		}
		letters = append(letters, letter)
	}
	return letters, total, nil
}
