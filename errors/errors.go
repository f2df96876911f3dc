package errors

import "fmt"

var (
	ErrRecipientNotFound      = fmt.Errorf("recipient not found")
	ErrLetterNotFound         = fmt.Errorf("letter not found")
	ErrStoreUnavailable       = fmt.Errorf("delivery store unavailable")
	ErrUnauthorizedTransition = fmt.Errorf("only the recipient may mark a letter as read")
	ErrSelfAddressed          = fmt.Errorf("a letter cannot be addressed to its own sender")
	ErrParticipantNotFound    = fmt.Errorf("participant not found")
	ErrParticipantExists      = fmt.Errorf("participant already registered")
	ErrUnknownRole            = fmt.Errorf("unknown subscription role")
	ErrWorkerPanic            = fmt.Errorf("worker panic")
)

// ValidationError reports the first draft field that failed validation.
// Recoverable: the caller fixes the input and retries.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid letter draft: field %q is missing or malformed", e.Field)
}
