package test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"streamchat/cipher"
	"streamchat/domain"
	"streamchat/domain/event"
	"streamchat/internal"
	"streamchat/moderation"
	"streamchat/observability"
	"streamchat/runtime"
	"streamchat/ws"
)

// dial opens a client socket against the test server.
func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	socket, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { socket.Close() })
	return socket
}

func emit(t *testing.T, socket *websocket.Conn, name string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, socket.WriteJSON(ws.Frame{Event: name, Data: data}))
}

func readFrame(t *testing.T, socket *websocket.Conn) ws.Frame {
	t.Helper()
	require.NoError(t, socket.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame ws.Frame
	require.NoError(t, socket.ReadJSON(&frame))
	return frame
}

func asChatMessage(t *testing.T, frame ws.Frame) event.ChatMessage {
	t.Helper()
	require.Equal(t, "chat_message", frame.Event)
	var msg event.ChatMessage
	require.NoError(t, json.Unmarshal(frame.Data, &msg))
	return msg
}

func asUserList(t *testing.T, frame ws.Frame) event.UserList {
	t.Helper()
	require.Equal(t, "user_list", frame.Event)
	var list event.UserList
	require.NoError(t, json.Unmarshal(frame.Data, &list))
	return list
}

func Test_Scenario(t *testing.T) {
	req := require.New(t)
	log := internal.GetLoggerFromString("ERROR")
	monitor := observability.NewMonitor()

	// 1. Wire the full relay the way cmd/server does.
	cipherSvc, err := cipher.New(log, monitor, cipher.GenerateKey())
	req.NoError(err)

	censored, err := runtime.NewCensoredLoader().LoadAll()
	req.NoError(err)
	moderator, err := moderation.NewModerator(censored.Words, '*')
	req.NoError(err)

	registry := runtime.NewRegistry()
	coordinator := runtime.NewCoordinator(log, registry, cipherSvc, moderator, monitor,
		time.Second, 4096)

	server := httptest.NewServer(ws.NewHandler(log, coordinator, 64))
	t.Cleanup(server.Close)

	// 2. Alice joins an empty room.
	alice := dial(t, server)
	emit(t, alice, "join", domain.JoinCommand{Username: "alice"})

	welcome := asChatMessage(t, readFrame(t, alice))
	req.Equal(domain.SystemUsername, welcome.Username)
	req.Contains(welcome.Message, "Welcome to the encrypted group chat, alice!")
	req.Equal([]string{"alice"}, asUserList(t, readFrame(t, alice)).Users)

	// 3. Bob joins: he gets his welcome and roster, alice gets the
	// announcement and the same roster, never bob's welcome.
	bob := dial(t, server)
	emit(t, bob, "join", domain.JoinCommand{Username: "bob"})

	bobWelcome := asChatMessage(t, readFrame(t, bob))
	req.Contains(bobWelcome.Message, "Welcome to the encrypted group chat, bob!")
	req.ElementsMatch([]string{"alice", "bob"}, asUserList(t, readFrame(t, bob)).Users)

	announce := asChatMessage(t, readFrame(t, alice))
	req.Equal("bob has joined the chat", announce.Message)
	req.ElementsMatch([]string{"alice", "bob"}, asUserList(t, readFrame(t, alice)).Users)

	// 4. Alice posts a message; both sides receive the encrypted payload.
	emit(t, alice, "chat_message", domain.PostMessageCommand{Message: "hello bob"})

	aliceCopy := asChatMessage(t, readFrame(t, alice))
	bobCopy := asChatMessage(t, readFrame(t, bob))
	for _, msg := range []event.ChatMessage{aliceCopy, bobCopy} {
		req.Equal("alice", msg.Username)
		req.True(msg.Encrypted)
		req.NotEqual("hello bob", msg.Message)
		req.NotEmpty(msg.Timestamp)
	}
	req.Equal(aliceCopy.Message, bobCopy.Message)

	// 5. Bob asks the relay to decrypt what he received; only he gets the answer.
	emit(t, bob, "decrypt_request", domain.DecryptRequestCommand{EncryptedMessage: bobCopy.Message})

	frame := readFrame(t, bob)
	req.Equal("decrypted_message", frame.Event)
	var decrypted event.DecryptedMessage
	req.NoError(json.Unmarshal(frame.Data, &decrypted))
	req.Equal("hello bob", decrypted.Decrypted)

	// 6. Bob leaves; alice sees the departure and the shrunken roster.
	req.NoError(bob.Close())

	left := asChatMessage(t, readFrame(t, alice))
	req.Equal("bob has left the chat", left.Message)
	req.Equal([]string{"alice"}, asUserList(t, readFrame(t, alice)).Users)

	// 7. Counters reflect the exchange.
	stats := monitor.Snapshot()
	req.Equal(uint64(2), stats.Connections)
	req.Equal(uint64(2), stats.Joins)
	req.Equal(uint64(1), stats.MessagesRelayed)
}
