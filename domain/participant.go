package domain

import "time"

// Participant is a registered account identity. It is created by the
// account service and only referenced, never mutated, by the exchange.
type Participant struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}
