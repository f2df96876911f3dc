// Package sink bridges the dispatcher to transport-specific consumers.
package sink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"letterbox/domain"
)

// GrpcSink buffers snapshots between the dispatcher and one gRPC stream.
// The dispatcher must never block on a slow client; a consumer that
// cannot keep up within the delivery timeout is treated as gone.
type GrpcSink struct {
	Snapshots chan []domain.Letter
	log       *slog.Logger
	timeout   time.Duration
}

func NewGrpcSink(log *slog.Logger, bufferSize int, timeout time.Duration) *GrpcSink {
	return &GrpcSink{
		Snapshots: make(chan []domain.Letter, bufferSize),
		log:       log,
		timeout:   timeout,
	}
}

func (s *GrpcSink) Consume(ctx context.Context, letters []domain.Letter) error {
	select {
	case s.Snapshots <- letters:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.timeout):
		return fmt.Errorf("delivery timeout after %s, dropping snapshot", s.timeout)
	}
}
