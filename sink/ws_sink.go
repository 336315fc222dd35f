// Package sink provides per-connection EventSink implementations.
package sink

import (
	"context"

	"streamchat/domain/event"
	"streamchat/errors"
)

// ConnectionSink buffers outbound events for one connection. The transport's
// write pump drains Events; Consume is called by the coordinator's fan-out
// and never blocks past the delivery context.
type ConnectionSink struct {
	Events chan event.DomainEvent
}

func NewConnectionSink(bufferSize int) *ConnectionSink {
	return &ConnectionSink{Events: make(chan event.DomainEvent, bufferSize)}
}

// Consume hands the event to the connection's writer. A full buffer reports
// backpressure instead of blocking: the coordinator logs and skips this
// recipient so the other recipients are unaffected.
func (s *ConnectionSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrSinkBackpressure
	}
}
