// Command client is a small terminal client for the StreamChat relay,
// useful for poking at a running server without a browser.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"

	"streamchat/domain"
	"streamchat/domain/event"
	"streamchat/ws"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerURL string `envconfig:"CHAT_SERVER_URL" default:"ws://localhost:8000/ws"`
	Username  string `envconfig:"CHAT_USERNAME"`
	// CHAT_COLOURS enables colorized output for better readability
	Colours bool `envconfig:"CHAT_COLOURS" default:"true"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Load configuration from environment variables.
	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	color.Enable = config.Colours

	stdin := bufio.NewScanner(os.Stdin)
	username := config.Username
	for username == "" {
		fmt.Print("Display name: ")
		if !stdin.Scan() {
			return exitOK, nil
		}
		username = strings.TrimSpace(stdin.Text())
	}

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Connect and join.
	socket, _, err := websocket.DefaultDialer.DialContext(ctx, config.ServerURL, nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to %s: %w", config.ServerURL, err)
	}
	defer socket.Close()

	if err := emit(socket, "join", domain.JoinCommand{Username: username}); err != nil {
		return exitRuntime, err
	}

	// 4. Render server events until the socket or the context closes.
	done := make(chan struct{})
	go func() {
		defer close(done)
		renderLoop(socket)
	}()

	go func() {
		<-ctx.Done()
		_ = socket.Close()
	}()

	// 5. Read stdin: plain lines are chat messages, /decrypt asks the server
	// to decrypt a payload, /quit leaves.
	for stdin.Scan() {
		line := strings.TrimSpace(stdin.Text())
		switch {
		case line == "":
			continue
		case line == "/quit":
			_ = socket.Close()
			<-done
			return exitOK, nil
		case strings.HasPrefix(line, "/decrypt "):
			payload := strings.TrimPrefix(line, "/decrypt ")
			if err := emit(socket, "decrypt_request", domain.DecryptRequestCommand{EncryptedMessage: payload}); err != nil {
				return exitRuntime, err
			}
		default:
			if err := emit(socket, "chat_message", domain.PostMessageCommand{Message: line}); err != nil {
				return exitRuntime, err
			}
		}
	}

	<-done
	return exitOK, nil
}

func emit(socket *websocket.Conn, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return socket.WriteJSON(ws.Frame{Event: name, Data: data})
}

func renderLoop(socket *websocket.Conn) {
	for {
		var frame ws.Frame
		if err := socket.ReadJSON(&frame); err != nil {
			return
		}

		switch frame.Event {
		case "chat_message":
			var msg event.ChatMessage
			if json.Unmarshal(frame.Data, &msg) != nil {
				continue
			}
			renderMessage(msg)
		case "user_list":
			var list event.UserList
			if json.Unmarshal(frame.Data, &list) != nil {
				continue
			}
			renderRoster(list.Users)
		case "decrypted_message":
			var decrypted event.DecryptedMessage
			if json.Unmarshal(frame.Data, &decrypted) != nil {
				continue
			}
			color.Green.Printf("decrypted: %s\n", decrypted.Decrypted)
		}
	}
}

func renderMessage(msg event.ChatMessage) {
	switch {
	case msg.Username == domain.SystemUsername:
		color.Yellow.Printf("[%s] %s\n", msg.Timestamp, msg.Message)
	case msg.Encrypted:
		// Encrypted payloads stay opaque; use /decrypt <payload> to read one.
		color.Cyan.Printf("[%s] %s: %s\n", msg.Timestamp, msg.Username, msg.Message)
	default:
		fmt.Printf("[%s] %s: %s\n", msg.Timestamp, msg.Username, msg.Message)
	}
	if msg.FileName != "" {
		color.Magenta.Printf("  attachment: %s (%s)\n", msg.FileName, msg.FileType)
	}
}

func renderRoster(users []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Online users"})
	for _, user := range users {
		table.Append([]string{user})
	}
	table.Render()
}
