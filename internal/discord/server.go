package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const healthReadHeaderTimeout = 5 * time.Second

// HTTPServer exposes the bot's health endpoint
type HTTPServer struct {
	server    *http.Server
	connected func() bool
	ready     ReadyFunc
}

// NewHTTPServer creates the health server for bot. ready may be nil.
func NewHTTPServer(port string, bot *Bot, ready ReadyFunc) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: healthReadHeaderTimeout,
		},
		connected: bot.Connected,
		ready:     ready,
	}

	mux.HandleFunc("GET /healthz", srv.HandleHealth)
	return srv
}

// Start serves in the background
func (s *HTTPServer) Start() {
	go func() {
		slog.Info(LogMsgHealthServer, "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgHealthServerFailed, "error", err)
		}
	}()
}

// Stop shuts the server down
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
