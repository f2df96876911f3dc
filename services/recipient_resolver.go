package services

import (
	"log/slog"

	"letterbox/domain"
	"letterbox/errors"
	"letterbox/repositories"
)

type IRecipientResolver interface {
	Resolve(email string) (domain.Participant, error)
}

// RecipientResolver turns a bare email address into a concrete participant.
type RecipientResolver struct {
	participants repositories.IParticipantRepository
	log          *slog.Logger
}

func NewRecipientResolver(participants repositories.IParticipantRepository, log *slog.Logger) IRecipientResolver {
	return &RecipientResolver{participants: participants, log: log}
}

// Resolve returns the participant registered under the address.
// Several participants may share one address; the earliest registration
// wins so that a given address always resolves the same way.
func (r *RecipientResolver) Resolve(email string) (domain.Participant, error) {
	candidates, err := r.participants.ListByEmail(email)
	if err != nil {
		return domain.Participant{}, err
	}
	if len(candidates) == 0 {
		return domain.Participant{}, errors.ErrRecipientNotFound
	}
	if len(candidates) > 1 {
		r.log.Debug("ambiguous recipient address, using earliest registration",
			"email", email, "candidates", len(candidates))
	}
	return candidates[0], nil
}
