package services

import (
	"strings"

	"letterbox/domain"
	"letterbox/errors"
	"letterbox/repositories"
)

type IDirectoryService interface {
	Register(email, name string) (domain.Participant, error)
	Lookup(id string) (domain.Participant, error)
}

// DirectoryService manages the participant directory the resolver
// reads from.
type DirectoryService struct {
	participants repositories.IParticipantRepository
}

func NewDirectoryService(participants repositories.IParticipantRepository) IDirectoryService {
	return &DirectoryService{participants: participants}
}

// Register adds a participant. An address may be shared across
// participants, but the same email and name pair registers only once.
func (s *DirectoryService) Register(email, name string) (domain.Participant, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)
	if email == "" {
		return domain.Participant{}, &errors.ValidationError{Field: "Email"}
	}
	if name == "" {
		return domain.Participant{}, &errors.ValidationError{Field: "Name"}
	}

	existing, err := s.participants.ListByEmail(email)
	if err != nil {
		return domain.Participant{}, err
	}
	for _, participant := range existing {
		if participant.Name == name {
			return domain.Participant{}, errors.ErrParticipantExists
		}
	}
	return s.participants.Create(email, name)
}

func (s *DirectoryService) Lookup(id string) (domain.Participant, error) {
	return s.participants.Get(id)
}
