package event

import (
	"letterbox/domain"
)

// DomainEvent is a store change that the dispatcher can route to
// subscribers. Routing only needs the two participants involved.
type DomainEvent interface {
	SenderID() string
	RecipientID() string
}

// LetterSent is emitted after a letter has been durably appended.
type LetterSent struct {
	Letter domain.Letter
}

func (e LetterSent) SenderID() string    { return e.Letter.SenderID }
func (e LetterSent) RecipientID() string { return e.Letter.RecipientID }

// LetterRead is emitted after the recipient first opens a letter.
type LetterRead struct {
	Letter domain.Letter
}

func (e LetterRead) SenderID() string    { return e.Letter.SenderID }
func (e LetterRead) RecipientID() string { return e.Letter.RecipientID }
