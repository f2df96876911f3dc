// Package runtime routes store changes to live subscribers.
// The dispatcher owns the subscription registry and the delivery loop;
// it never interprets letters, it only re-queries and pushes snapshots.
package runtime

import (
	"context"
	"log/slog"
	"sync"

	"letterbox/contract"
	"letterbox/domain"
	"letterbox/domain/event"
	"letterbox/repositories"
)

// Filter names the view a subscriber wants to follow: one participant,
// one side of their correspondence.
type Filter struct {
	ParticipantID string
	Role          domain.Role
}

// Subscription is a live attachment of a sink to a filter.
type Subscription struct {
	dispatcher *Dispatcher
	filter     Filter
	sink       contract.LetterSink
	cancel     sync.Once
}

// Cancel detaches the subscription. Idempotent; canceling twice is a no-op.
func (s *Subscription) Cancel() {
	s.cancel.Do(func() {
		s.dispatcher.remove(s)
	})
}

// Dispatcher fans store-change events out to subscribed sinks.
//
// Delivery is snapshot-based: on every relevant event the dispatcher
// re-queries the store and hands each matching sink the full, freshly
// ordered result set. Deliveries run serially inside the Run loop, so a
// sink can never observe snapshots out of order.
type Dispatcher struct {
	log     *slog.Logger
	letters repositories.ILetterRepository
	events  chan event.DomainEvent

	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func NewDispatcher(log *slog.Logger, letters repositories.ILetterRepository, bufferSize int) *Dispatcher {
	return &Dispatcher{
		log:     log,
		letters: letters,
		events:  make(chan event.DomainEvent, bufferSize),
		subs:    make(map[*Subscription]struct{}),
	}
}

// Subscribe attaches a sink and immediately delivers the current
// snapshot, so a new subscriber never starts from an empty view.
func (d *Dispatcher) Subscribe(ctx context.Context, filter Filter, sink contract.LetterSink) *Subscription {
	sub := &Subscription{dispatcher: d, filter: filter, sink: sink}
	d.mu.Lock()
	d.subs[sub] = struct{}{}
	d.mu.Unlock()

	d.deliverTo(ctx, sub)
	return sub
}

func (d *Dispatcher) remove(sub *Subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.subs, sub)
}

// Publish queues an event for delivery. Blocks only on channel admission.
func (d *Dispatcher) Publish(evt event.DomainEvent) {
	d.events <- evt
}

// Run drains the event channel until the context is canceled.
// Implements contract.Worker so it can live under the supervisor.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-d.events:
			d.dispatch(ctx, evt)
		case <-ctx.Done():
			d.log.Debug("Context done, stopping dispatcher")
			return nil
		}
	}
}

// dispatch finds the subscriptions an event concerns and refreshes each
// one. Both events touch exactly two mailboxes: the recipient's inbox
// and the sender's sent view.
func (d *Dispatcher) dispatch(ctx context.Context, evt event.DomainEvent) {
	d.mu.RLock()
	var matched []*Subscription
	for sub := range d.subs {
		if d.matches(sub.filter, evt) {
			matched = append(matched, sub)
		}
	}
	d.mu.RUnlock()

	for _, sub := range matched {
		d.deliverTo(ctx, sub)
	}
}

func (d *Dispatcher) matches(filter Filter, evt event.DomainEvent) bool {
	switch filter.Role {
	case domain.RoleRecipient:
		return filter.ParticipantID == evt.RecipientID()
	case domain.RoleSender:
		return filter.ParticipantID == evt.SenderID()
	default:
		return false
	}
}

// deliverTo re-queries the store for one subscription and pushes the
// snapshot. Failures are logged and skipped; the store stays the source
// of truth and the next event retries naturally.
func (d *Dispatcher) deliverTo(ctx context.Context, sub *Subscription) {
	var letters []domain.Letter
	var err error
	switch sub.filter.Role {
	case domain.RoleRecipient:
		letters, err = d.letters.ListByRecipient(sub.filter.ParticipantID)
	case domain.RoleSender:
		letters, err = d.letters.ListBySender(sub.filter.ParticipantID)
	}
	if err != nil {
		d.log.Warn("snapshot query failed",
			"participant", sub.filter.ParticipantID, "role", sub.filter.Role, "error", err)
		return
	}
	if err := sub.sink.Consume(ctx, letters); err != nil {
		d.log.Warn("sink rejected snapshot",
			"participant", sub.filter.ParticipantID, "role", sub.filter.Role, "error", err)
	}
}
