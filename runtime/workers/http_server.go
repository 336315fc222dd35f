package workers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// HTTPServerWorker runs the HTTP/WebSocket listener under the supervisor and
// drains it when the supervised context is canceled.
type HTTPServerWorker struct {
	log             *slog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewHTTPServerWorker(log *slog.Logger, server *http.Server,
	shutdownTimeout time.Duration) *HTTPServerWorker {
	return &HTTPServerWorker{log: log, server: server, shutdownTimeout: shutdownTimeout}
}

func (w *HTTPServerWorker) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- w.server.ListenAndServe()
	}()
	w.log.Info("http server listening", "addr", w.server.Addr)

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()
		if err := w.server.Shutdown(shutdownCtx); err != nil {
			w.log.Warn("http shutdown incomplete", "error", err)
		}
		return nil
	}
}
