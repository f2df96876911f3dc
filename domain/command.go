package domain

import "github.com/google/uuid"

// Commands carry the caller's identity explicitly. The exchange never
// reads an ambient "current user".

type SendLetterCommand struct {
	SenderID string
	Draft    Draft
	// IdempotencyKey is generated by the client. Retrying a send with
	// the same key returns the originally stored letter instead of
	// appending a duplicate.
	IdempotencyKey string
}

type OpenLetterCommand struct {
	CallerID string
	LetterID uuid.UUID
}
