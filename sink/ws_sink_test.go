package sink

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"streamchat/domain/event"
	"streamchat/errors"
)

func TestConnectionSink_Buffers_Events_In_Order(t *testing.T) {
	req := require.New(t)
	s := NewConnectionSink(4)
	ctx := context.Background()

	first := event.ChatMessage{Username: "alice", Message: "one"}
	second := event.ChatMessage{Username: "alice", Message: "two"}

	req.NoError(s.Consume(ctx, first))
	req.NoError(s.Consume(ctx, second))

	req.Equal(first, <-s.Events)
	req.Equal(second, <-s.Events)
}

func TestConnectionSink_Full_Buffer_Reports_Backpressure(t *testing.T) {
	req := require.New(t)
	s := NewConnectionSink(1)
	ctx := context.Background()

	req.NoError(s.Consume(ctx, event.UserList{Users: []string{"alice"}}))

	// When the buffer is full and nobody drains it
	err := s.Consume(ctx, event.UserList{Users: []string{"alice", "bob"}})

	// Then Consume returns immediately instead of blocking
	req.ErrorIs(err, errors.ErrSinkBackpressure)
}

func TestConnectionSink_Honors_Canceled_Context(t *testing.T) {
	req := require.New(t)
	s := NewConnectionSink(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.Consume(ctx, event.ChatMessage{Message: "late"})
	}()

	select {
	case err := <-done:
		// A canceled context or a free buffer slot both return promptly;
		// either way Consume must not hang.
		_ = err
	case <-time.After(200 * time.Millisecond):
		req.Fail("Consume should never block")
	}
}
