//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"letterbox/domain"
	"letterbox/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself.
// Can be silly, focused.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventPublisher hands a domain event to whoever fans it out.
// Publishing must not block the caller beyond channel admission.
type EventPublisher interface {
	Publish(evt event.DomainEvent)
}

// LetterSink receives the full, freshly-ordered result set for a
// subscription every time the delivery store changes. Snapshots, not
// diffs: the dispatcher never asks consumers to merge.
type LetterSink interface {
	Consume(ctx context.Context, letters []domain.Letter) error
}
