// Package observability aggregates relay counters for the telemetry worker.
package observability

import (
	"sync/atomic"
	"time"
)

// Stats is a point-in-time snapshot of the relay counters.
type Stats struct {
	Connections      uint64 `json:"connections"`
	Joins            uint64 `json:"joins"`
	Disconnects      uint64 `json:"disconnects"`
	MessagesRelayed  uint64 `json:"messages_relayed"`
	AttachmentBytes  uint64 `json:"attachment_bytes"`
	CryptoFallbacks  uint64 `json:"crypto_fallbacks"`
	CensorHits       uint64 `json:"censor_hits"`
	DroppedDelivery  uint64 `json:"dropped_delivery"`
	CollectedAt      time.Time
}

// Monitor collects counters from concurrently running handlers.
// All counters are atomic; Monitor requires no external locking.
type Monitor struct {
	connections     uint64
	joins           uint64
	disconnects     uint64
	messagesRelayed uint64
	attachmentBytes uint64
	cryptoFallbacks uint64
	censorHits      uint64
	droppedDelivery uint64
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) IncrConnections() { atomic.AddUint64(&m.connections, 1) }

func (m *Monitor) IncrJoins() { atomic.AddUint64(&m.joins, 1) }

func (m *Monitor) IncrDisconnects() { atomic.AddUint64(&m.disconnects, 1) }

func (m *Monitor) IncrMessagesRelayed() { atomic.AddUint64(&m.messagesRelayed, 1) }

// AddAttachmentBytes accounts for the encrypted attachment payload size.
func (m *Monitor) AddAttachmentBytes(n uint64) { atomic.AddUint64(&m.attachmentBytes, n) }

// IncrCryptoFallbacks counts fail-open passes where the cipher returned
// its input unchanged.
func (m *Monitor) IncrCryptoFallbacks() { atomic.AddUint64(&m.cryptoFallbacks, 1) }

func (m *Monitor) AddCensorHits(n uint64) { atomic.AddUint64(&m.censorHits, n) }

func (m *Monitor) IncrDroppedDelivery() { atomic.AddUint64(&m.droppedDelivery, 1) }

// Snapshot returns a consistent-enough view for logging. Counters are read
// individually; exact cross-counter consistency is not needed for telemetry.
func (m *Monitor) Snapshot() Stats {
	return Stats{
		Connections:     atomic.LoadUint64(&m.connections),
		Joins:           atomic.LoadUint64(&m.joins),
		Disconnects:     atomic.LoadUint64(&m.disconnects),
		MessagesRelayed: atomic.LoadUint64(&m.messagesRelayed),
		AttachmentBytes: atomic.LoadUint64(&m.attachmentBytes),
		CryptoFallbacks: atomic.LoadUint64(&m.cryptoFallbacks),
		CensorHits:      atomic.LoadUint64(&m.censorHits),
		DroppedDelivery: atomic.LoadUint64(&m.droppedDelivery),
		CollectedAt:     time.Now().UTC(),
	}
}
