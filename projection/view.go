// Package projection keeps client-side views of a participant's
// correspondence. Views swallow whole snapshots from the dispatcher;
// they never merge, reorder, or emit anything themselves.
package projection

import (
	"context"
	"sync"

	"letterbox/domain"

	"github.com/samber/lo"
)

// InboxView is the received-letters side of a mailbox.
type InboxView struct {
	Owner string

	mu      sync.RWMutex
	letters []domain.Letter
}

func NewInboxView(owner string) *InboxView {
	return &InboxView{Owner: owner}
}

// Consume replaces the view with the latest snapshot.
func (v *InboxView) Consume(ctx context.Context, letters []domain.Letter) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.letters = letters
	return nil
}

func (v *InboxView) Letters() []domain.Letter {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.letters
}

func (v *InboxView) UnreadCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return lo.CountBy(v.letters, func(letter domain.Letter) bool { return !letter.Read })
}

// SentView mirrors the letters the owner has written, including the
// read receipts that arrive when recipients open them.
type SentView struct {
	Owner string

	mu      sync.RWMutex
	letters []domain.Letter
}

func NewSentView(owner string) *SentView {
	return &SentView{Owner: owner}
}

func (v *SentView) Consume(ctx context.Context, letters []domain.Letter) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.letters = letters
	return nil
}

func (v *SentView) Letters() []domain.Letter {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.letters
}

// ReadCount reports how many of the owner's letters have been opened.
func (v *SentView) ReadCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return lo.CountBy(v.letters, func(letter domain.Letter) bool { return letter.Read })
}
