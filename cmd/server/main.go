package main

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"streamchat/cipher"
	"streamchat/internal"
	"streamchat/moderation"
	"streamchat/observability"
	"streamchat/runtime"
	"streamchat/runtime/workers"
	"streamchat/ws"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

//go:embed templates/chat.html
var chatPage []byte

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so defers execute before the process exits.
func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config validation: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := internal.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Cipher service with the process-wide master key
	monitor := observability.NewMonitor()
	masterKey := cipher.LoadMasterKey(logger, config.EncryptionKey)
	cipherSvc, err := cipher.New(logger, monitor, masterKey)
	if err != nil {
		return exitRuntime, err
	}

	// 3. Moderation from the embedded wordlists
	data, err := runtime.NewCensoredLoader().LoadAll()
	if err != nil {
		return exitRuntime, fmt.Errorf("censored wordlists: %w", err)
	}
	logger.Info(fmt.Sprintf("%d censored words loaded [%s]",
		len(data.Words), strings.Join(data.Languages, ",")))

	moderator, err := moderation.NewModerator(data.Words, charReplacement)
	if err != nil {
		return exitRuntime, fmt.Errorf("moderation automaton: %w", err)
	}

	// 4. Session registry & broadcast coordinator
	registry := runtime.NewRegistry()
	coordinator := runtime.NewCoordinator(logger, registry, cipherSvc, moderator,
		monitor, config.DeliveryTimeout, config.MaxContentLength)

	// 5. HTTP surface: websocket endpoint, uploads dir, chat page
	uploadsDir := filepath.Clean(config.UploadsDir)
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return exitRuntime, fmt.Errorf("uploads dir: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", ws.NewHandler(logger, coordinator, config.ConnectionBufferSize))
	mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(chatPage)
	})

	server := &http.Server{Addr: config.Addr(), Handler: mux}

	// 6. Supervised workers
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	supervisor.Add(workers.NewHTTPServerWorker(logger, server, config.ShutdownTimeout))
	supervisor.Add(workers.NewTelemetryWorker(logger, monitor, config.MetricInterval))

	logger.Info("StreamChat relay starting", "addr", config.Addr())
	supervisor.Run(ctx)

	logger.Info("StreamChat relay stopped")
	return exitOK, nil
}
