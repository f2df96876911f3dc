// Package domain contains core concepts of the letter exchange.
// This file defines the Letter record and its category set.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a letter. It must be explicitly chosen by the
// sender; the zero value is not a valid category.
type Category string

const (
	CategoryDaily        Category = "daily"
	CategoryMemory       Category = "memory"
	CategoryFuture       Category = "future"
	CategoryAppreciation Category = "appreciation"
	CategorySurprise     Category = "surprise"
)

// Categories lists every recognized category, in display order.
func Categories() []Category {
	return []Category{
		CategoryDaily,
		CategoryMemory,
		CategoryFuture,
		CategoryAppreciation,
		CategorySurprise,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryDaily, CategoryMemory, CategoryFuture, CategoryAppreciation, CategorySurprise:
		return true
	}
	return false
}

// Letter is one directed message from a sender to a recipient.
//
// Sender and recipient name/email are snapshots captured at send time.
// A later profile change must not alter historical letters. Every field
// except Read is immutable once the letter has been appended to the
// delivery store; Read transitions once from false to true and never
// reverts.
type Letter struct {
	ID             uuid.UUID
	SenderID       string
	SenderName     string
	SenderEmail    string
	RecipientID    string
	RecipientName  string
	RecipientEmail string
	Category       Category
	Subject        string
	Content        string
	SentAt         time.Time // server-assigned, the sole ordering key
	Read           bool
}
