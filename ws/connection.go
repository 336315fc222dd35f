package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"streamchat/contract"
	"streamchat/domain"
	"streamchat/sink"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 << 20 // attachments arrive base64-inflated
)

// Frame is the wire envelope in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// connection ties one socket to one coordinator session. The read loop runs
// on the ServeHTTP goroutine so the connection's own events are processed in
// arrival order; the write pump drains the sink on a second goroutine.
type connection struct {
	log    *slog.Logger
	coord  contract.ICoordinator
	socket *websocket.Conn
	connID string
	sink   *sink.ConnectionSink
}

func newConnection(log *slog.Logger, coord contract.ICoordinator,
	socket *websocket.Conn, connID string, connSink *sink.ConnectionSink) *connection {
	return &connection{log: log, coord: coord, socket: socket, connID: connID, sink: connSink}
}

// run registers the connection, pumps frames until the peer goes away, and
// guarantees exactly one Disconnect on the way out.
func (c *connection) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.coord.Connect(ctx, c.connID, c.sink)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		c.writePump(ctx)
	}()

	c.readLoop(ctx)

	c.coord.Disconnect(ctx, c.connID)
	cancel()
	_ = c.socket.Close()
	<-writerDone
}

// readLoop dispatches inbound frames to the coordinator. Malformed frames and
// unknown event names are logged and skipped; the loop only ends when the
// socket does.
func (c *connection) readLoop(ctx context.Context) {
	c.socket.SetReadLimit(maxMessageSize)
	_ = c.socket.SetReadDeadline(time.Now().Add(pongWait))
	c.socket.SetPongHandler(func(string) error {
		return c.socket.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("websocket read failed", "conn_id", c.connID, "error", err)
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(payload, &frame); err != nil {
			c.log.Warn("malformed frame skipped", "conn_id", c.connID, "error", err)
			continue
		}
		c.dispatch(ctx, frame)
	}
}

func (c *connection) dispatch(ctx context.Context, frame Frame) {
	switch frame.Event {
	case "join":
		var cmd domain.JoinCommand
		if c.decode(frame, &cmd) {
			c.coord.Join(ctx, c.connID, cmd)
		}
	case "chat_message":
		var cmd domain.PostMessageCommand
		if c.decode(frame, &cmd) {
			c.coord.Message(ctx, c.connID, cmd)
		}
	case "decrypt_request":
		var cmd domain.DecryptRequestCommand
		if c.decode(frame, &cmd) {
			c.coord.DecryptRequest(ctx, c.connID, cmd)
		}
	default:
		c.log.Debug("unknown event skipped", "conn_id", c.connID, "event", frame.Event)
	}
}

func (c *connection) decode(frame Frame, cmd any) bool {
	if len(frame.Data) == 0 {
		return true
	}
	if err := json.Unmarshal(frame.Data, cmd); err != nil {
		c.log.Warn("malformed payload skipped",
			"conn_id", c.connID, "event", frame.Event, "error", err)
		return false
	}
	return true
}

// writePump serializes all socket writes: outbound events from the sink and
// the keepalive pings.
func (c *connection) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-c.sink.Events:
			data, err := json.Marshal(evt)
			if err != nil {
				c.log.Error("event marshal failed", "conn_id", c.connID, "error", err)
				continue
			}
			_ = c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteJSON(Frame{Event: evt.EventName(), Data: data}); err != nil {
				c.log.Warn("websocket write failed", "conn_id", c.connID, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
