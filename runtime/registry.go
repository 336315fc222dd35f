// Package runtime owns the live session state and the broadcast pipeline.
// It orchestrates the relay without containing transport or wire concerns.
package runtime

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"streamchat/contract"
)

// session is everything the registry knows about one live connection.
// Keeping the display name, the per-connection session key, and the sink in a
// single record under one lock makes connect and disconnect atomic with
// respect to observers: no reader can see a session without its key during
// teardown.
type session struct {
	displayName string
	joined      bool
	sessionKey  []byte
	sink        contract.EventSink
}

// Registry maps connection ids to sessions. All methods are safe for
// concurrent use; snapshots are taken under the read lock so no lock is held
// during delivery or encryption.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*session)}
}

// Connect registers a connected-but-not-yet-joined session. Idempotent: a
// second connect for the same id keeps the existing record.
func (r *Registry) Connect(connID string, sessionKey []byte, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[connID]; ok {
		return
	}
	r.sessions[connID] = &session{sessionKey: sessionKey, sink: sink}
}

// Join records the display name and marks the session joined. It returns
// false when the connection is unknown, which happens when a disconnect
// raced the join; callers treat that as a no-op.
func (r *Registry) Join(connID, displayName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connID]
	if !ok {
		return false
	}
	s.displayName = displayName
	s.joined = true
	return true
}

// DisplayName returns the name of a joined connection. A connected but not
// joined session yields false.
func (r *Registry) DisplayName(connID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[connID]
	if !ok || !s.joined {
		return "", false
	}
	return s.displayName, true
}

// Disconnect removes the session and its key atomically and reports whether
// the connection had joined. Idempotent: a second disconnect returns false.
func (r *Registry) Disconnect(connID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connID]
	if !ok {
		return "", false
	}
	delete(r.sessions, connID)
	return s.displayName, s.joined
}

// Roster returns the display names of all joined connections, sorted for
// deterministic snapshots. Duplicate names are preserved.
func (r *Registry) Roster() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sessions))
	for _, s := range r.sessions {
		if s.joined {
			names = append(names, s.displayName)
		}
	}
	sort.Strings(names)
	return names
}

// JoinedSinks snapshots the sinks of all joined connections, minus the
// excluded connection ids (used to skip the sender of an announcement).
func (r *Registry) JoinedSinks(except ...string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sinks := make([]contract.EventSink, 0, len(r.sessions))
	for id, s := range r.sessions {
		if !s.joined || lo.Contains(except, id) {
			continue
		}
		sinks = append(sinks, s.sink)
	}
	return sinks
}

// SinkFor returns the sink of any connected session, joined or not.
func (r *Registry) SinkFor(connID string) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[connID]
	if !ok {
		return nil, false
	}
	return s.sink, true
}

// Size reports the number of live sessions, joined or not.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
