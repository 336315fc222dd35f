package runtime

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"streamchat/cipher"
	"streamchat/domain/event"
)

type noopSink struct{}

func (noopSink) Consume(context.Context, event.DomainEvent) error { return nil }

func TestRegistry_Connect_Then_Join(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connID := uuid.NewString()

	// Given no live session
	req.Zero(registry.Size())

	// When a connection registers and joins
	registry.Connect(connID, cipher.GenerateKey(), noopSink{})
	req.True(registry.Join(connID, "alice"))

	// Then the session is visible with its name
	req.Equal(1, registry.Size())
	name, joined := registry.DisplayName(connID)
	req.True(joined)
	req.Equal("alice", name)
	req.Equal([]string{"alice"}, registry.Roster())
}

func TestRegistry_Connected_But_Not_Joined_Has_No_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connID := uuid.NewString()

	registry.Connect(connID, cipher.GenerateKey(), noopSink{})

	// Then the connection is live but not part of the roster
	req.Equal(1, registry.Size())
	_, joined := registry.DisplayName(connID)
	req.False(joined)
	req.Empty(registry.Roster())
	req.Empty(registry.JoinedSinks())

	// And its sink is still reachable for targeted replies
	_, ok := registry.SinkFor(connID)
	req.True(ok)
}

func TestRegistry_Join_Unknown_Connection_Is_Refused(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// When a join races a completed disconnect
	req.False(registry.Join(uuid.NewString(), "ghost"))

	req.Zero(registry.Size())
}

func TestRegistry_Duplicate_Display_Names_Are_Permitted(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conn1 := uuid.NewString()
	conn2 := uuid.NewString()

	registry.Connect(conn1, cipher.GenerateKey(), noopSink{})
	registry.Connect(conn2, cipher.GenerateKey(), noopSink{})
	req.True(registry.Join(conn1, "alice"))
	req.True(registry.Join(conn2, "alice"))

	req.Equal([]string{"alice", "alice"}, registry.Roster())
}

func TestRegistry_Disconnect_Removes_Session_And_Key_Atomically(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connID := uuid.NewString()

	registry.Connect(connID, cipher.GenerateKey(), noopSink{})
	registry.Join(connID, "alice")

	// When the connection goes away
	name, joined := registry.Disconnect(connID)

	// Then nothing of the session remains
	req.True(joined)
	req.Equal("alice", name)
	req.Zero(registry.Size())
	req.Empty(registry.Roster())
	_, ok := registry.SinkFor(connID)
	req.False(ok)

	// And a second disconnect is a harmless no-op
	_, joined = registry.Disconnect(connID)
	req.False(joined)
}

func TestRegistry_Disconnect_Of_Never_Joined_Reports_Not_Joined(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connID := uuid.NewString()

	registry.Connect(connID, cipher.GenerateKey(), noopSink{})

	_, joined := registry.Disconnect(connID)

	req.False(joined)
	req.Zero(registry.Size())
}

func TestRegistry_JoinedSinks_Excludes_Requested_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conn1 := uuid.NewString()
	conn2 := uuid.NewString()

	registry.Connect(conn1, cipher.GenerateKey(), noopSink{})
	registry.Connect(conn2, cipher.GenerateKey(), noopSink{})
	registry.Join(conn1, "alice")
	registry.Join(conn2, "bob")

	req.Len(registry.JoinedSinks(), 2)
	req.Len(registry.JoinedSinks(conn1), 1)
	req.Empty(registry.JoinedSinks(conn1, conn2))
}

func TestRegistry_Concurrent_Joins_Lose_Nothing(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	const joiners = 100

	// When many connections connect and join concurrently
	var wg sync.WaitGroup
	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			connID := uuid.NewString()
			registry.Connect(connID, cipher.GenerateKey(), noopSink{})
			registry.Join(connID, fmt.Sprintf("user-%d", i))
		}(i)
	}
	wg.Wait()

	// Then no entry is lost or duplicated
	req.Equal(joiners, registry.Size())
	req.Len(registry.Roster(), joiners)
	req.Len(registry.JoinedSinks(), joiners)
}

func TestRegistry_Concurrent_Join_And_Disconnect_Stay_Consistent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	const conns = 50

	ids := make([]string, conns)
	for i := range ids {
		ids[i] = uuid.NewString()
		registry.Connect(ids[i], cipher.GenerateKey(), noopSink{})
	}

	// When joins and disconnects race for the same connections
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(2)
		go func(id string, i int) {
			defer wg.Done()
			registry.Join(id, fmt.Sprintf("user-%d", i))
		}(id, i)
		go func(id string) {
			defer wg.Done()
			registry.Disconnect(id)
		}(id)
	}
	wg.Wait()

	// Then every surviving entry is fully formed and every removed one is gone
	req.Equal(len(registry.Roster()), len(registry.JoinedSinks()))
	req.LessOrEqual(registry.Size(), conns)
}
