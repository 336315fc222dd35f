package runtime

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/gabriel-vasile/mimetype"

	"streamchat/cipher"
	"streamchat/contract"
	"streamchat/domain"
	"streamchat/domain/event"
	"streamchat/errors"
	"streamchat/moderation"
	"streamchat/observability"
)

// Coordinator drives the connection lifecycle and the encrypt-then-broadcast
// pipeline. Each inbound transport event maps to exactly one method; failure
// in one handler never reaches other connections.
//
// Per-connection ordering is the transport's responsibility: the coordinator
// serializes nothing across connections and holds no lock across encryption
// or delivery.
type Coordinator struct {
	log              *slog.Logger
	registry         contract.IRegistry
	cipher           contract.ICipher
	moderator        moderation.Moderator
	monitor          *observability.Monitor
	deliveryTimeout  time.Duration
	maxContentLength int
}

func NewCoordinator(log *slog.Logger, registry contract.IRegistry,
	cipherSvc contract.ICipher, moderator moderation.Moderator,
	monitor *observability.Monitor,
	deliveryTimeout time.Duration, maxContentLength int) *Coordinator {
	return &Coordinator{
		log:              log,
		registry:         registry,
		cipher:           cipherSvc,
		moderator:        moderator,
		monitor:          monitor,
		deliveryTimeout:  deliveryTimeout,
		maxContentLength: maxContentLength,
	}
}

// Connect registers a fresh connection and allocates its session key.
// The key is held for the lifetime of the connection and discarded on
// disconnect; all encryption currently uses the master key.
func (c *Coordinator) Connect(ctx context.Context, connID string, sink contract.EventSink) {
	c.registry.Connect(connID, cipher.GenerateKey(), sink)
	c.monitor.IncrConnections()
	c.log.Info("client connected", "conn_id", connID)
}

// Join records the display name and announces the newcomer. The emission
// order is fixed: private welcome, then the join announcement to everyone
// else, then the roster snapshot to all joined connections including the
// joiner. An empty username is a documented no-op, not an error.
func (c *Coordinator) Join(ctx context.Context, connID string, cmd domain.JoinCommand) {
	if cmd.Username == "" {
		c.log.Debug("join without username ignored", "conn_id", connID)
		return
	}
	if !c.registry.Join(connID, cmd.Username) {
		// Disconnect raced the join; nothing to announce.
		c.log.Debug("join for unknown connection ignored", "conn_id", connID)
		return
	}
	c.monitor.IncrJoins()
	c.log.Info("user joined", "user", cmd.Username, "conn_id", connID)

	c.emitTo(ctx, connID, systemMessage(
		fmt.Sprintf("Welcome to the encrypted group chat, %s!", cmd.Username)))
	c.broadcast(ctx, systemMessage(
		fmt.Sprintf("%s has joined the chat", cmd.Username)), connID)
	c.broadcast(ctx, event.UserList{Users: c.registry.Roster()})
}

// Message relays a chat message from a joined sender to every joined
// connection, the sender included. A message from a connection that never
// joined is silently dropped. A processing fault (oversized body, malformed
// attachment) is reported privately to the sender and nothing is broadcast.
func (c *Coordinator) Message(ctx context.Context, connID string, cmd domain.PostMessageCommand) {
	senderName, ok := c.registry.DisplayName(connID)
	if !ok {
		c.log.Debug("message from unjoined connection dropped", "conn_id", connID)
		return
	}

	msg, err := c.prepareMessage(senderName, cmd)
	if err != nil {
		c.log.Error("message processing failed", "user", senderName, "error", err)
		c.emitTo(ctx, connID, systemMessage("Error: Failed to encrypt message"))
		return
	}

	c.broadcast(ctx, msg)
	c.monitor.IncrMessagesRelayed()
}

// prepareMessage censors and encrypts the body, then encrypts the attachment
// when present. It is the only fallible stage of the message path.
func (c *Coordinator) prepareMessage(senderName string, cmd domain.PostMessageCommand) (event.ChatMessage, error) {
	if c.maxContentLength > 0 && len(cmd.Message) > c.maxContentLength {
		return event.ChatMessage{}, fmt.Errorf("%w: %d bytes", errors.ErrMessageTooLong, len(cmd.Message))
	}

	body := cmd.Message
	if body != "" {
		censored, hits := c.moderator.Censor(body)
		if len(hits) > 0 {
			info := whatlanggo.Detect(body)
			c.log.Warn("censored message content",
				"user", senderName,
				"lang", info.Lang.Iso6391(),
				"hits", len(hits))
			c.monitor.AddCensorHits(uint64(len(hits)))
			body = censored
		}
		body = c.cipher.EncryptText(body)
	}

	msg := event.ChatMessage{
		Username:  senderName,
		Message:   body,
		Encrypted: true,
		Timestamp: cmd.Timestamp,
	}
	if msg.Timestamp == "" {
		msg.Timestamp = domain.Timestamp(time.Now())
	}

	if cmd.HasAttachment() {
		raw, err := base64.StdEncoding.DecodeString(cmd.FileData)
		if err != nil {
			return event.ChatMessage{}, fmt.Errorf("%w: %v", errors.ErrMalformedFileData, err)
		}
		fileType := cmd.FileType
		if fileType == "" {
			fileType = mimetype.Detect(raw).String()
		}
		msg.FileData = c.cipher.EncryptBlob(cmd.FileData)
		msg.FileType = fileType
		msg.FileName = cmd.FileName
		c.monitor.AddAttachmentBytes(uint64(len(msg.FileData)))
	}

	return msg, nil
}

// DecryptRequest decrypts a payload for the requester only. Allowed from any
// connected state, joined or not. Faults are swallowed: the requester gets no
// response and must apply its own timeout.
func (c *Coordinator) DecryptRequest(ctx context.Context, connID string, cmd domain.DecryptRequestCommand) {
	sink, ok := c.registry.SinkFor(connID)
	if !ok {
		c.log.Debug("decrypt request from unknown connection ignored", "conn_id", connID)
		return
	}
	decrypted := c.cipher.DecryptText(cmd.EncryptedMessage)
	c.deliver(ctx, sink, event.DecryptedMessage{Decrypted: decrypted})
}

// Disconnect removes the session and its key atomically. A joined connection
// is announced to the remaining members followed by a roster snapshot; a
// connection that never joined leaves silently. Safe to call concurrently
// with an in-flight join or message for the same connection.
func (c *Coordinator) Disconnect(ctx context.Context, connID string) {
	displayName, joined := c.registry.Disconnect(connID)
	c.monitor.IncrDisconnects()
	if !joined {
		c.log.Info("client disconnected", "conn_id", connID)
		return
	}
	c.log.Info("user disconnected", "user", displayName, "conn_id", connID)

	c.broadcast(ctx, systemMessage(fmt.Sprintf("%s has left the chat", displayName)))
	c.broadcast(ctx, event.UserList{Users: c.registry.Roster()})
}

// broadcast delivers one event to every joined connection except the excluded
// ids. Recipients are served concurrently and a failing recipient is skipped,
// never blocking the others. broadcast returns once every delivery attempt
// finished, preserving per-sink ordering across successive broadcasts.
func (c *Coordinator) broadcast(ctx context.Context, evt event.DomainEvent, except ...string) {
	sinks := c.registry.JoinedSinks(except...)
	if len(sinks) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, s := range sinks {
		wg.Add(1)
		go func(s contract.EventSink) {
			defer wg.Done()
			c.deliver(ctx, s, evt)
		}(s)
	}
	wg.Wait()
}

// emitTo targets a single connection. Unknown connections are ignored.
func (c *Coordinator) emitTo(ctx context.Context, connID string, evt event.DomainEvent) {
	sink, ok := c.registry.SinkFor(connID)
	if !ok {
		return
	}
	c.deliver(ctx, sink, evt)
}

// deliver isolates a single recipient: a full buffer or canceled context is
// logged and counted, not propagated.
func (c *Coordinator) deliver(ctx context.Context, sink contract.EventSink, evt event.DomainEvent) {
	deliveryCtx, cancel := context.WithTimeout(ctx, c.deliveryTimeout)
	defer cancel()

	if err := sink.Consume(deliveryCtx, evt); err != nil {
		c.monitor.IncrDroppedDelivery()
		c.log.Warn("delivery skipped", "event", evt.EventName(), "error", err)
	}
}

func systemMessage(text string) event.ChatMessage {
	return event.ChatMessage{
		Username:  domain.SystemUsername,
		Message:   text,
		Encrypted: false,
		Timestamp: domain.Timestamp(time.Now()),
	}
}
