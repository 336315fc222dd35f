// Package ws is the transport boundary: it upgrades HTTP requests to
// WebSocket connections and shuttles JSON event frames between the socket and
// the coordinator. It carries no relay logic of its own.
package ws

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"streamchat/contract"
	"streamchat/sink"
)

// Handler upgrades incoming requests and owns the per-connection plumbing.
type Handler struct {
	log        *slog.Logger
	coord      contract.ICoordinator
	upgrader   websocket.Upgrader
	bufferSize int
}

func NewHandler(log *slog.Logger, coord contract.ICoordinator, bufferSize int) *Handler {
	return &Handler{
		log:   log,
		coord: coord,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The original service relays for browsers on any origin;
			// CORS policy is the deployment's concern, not the relay's.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		bufferSize: bufferSize,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	socket, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	conn := newConnection(h.log, h.coord, socket, uuid.NewString(), sink.NewConnectionSink(h.bufferSize))
	conn.run(r.Context())
}
