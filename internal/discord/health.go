package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	CatalogReady     bool      `json:"catalog_ready"`
}

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
)

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandNano atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandNano.Store(time.Now().UnixNano())
}

func lastCommandTime() time.Time {
	n := lastCommandNano.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// HandleHealth reports gateway connectivity and catalog readiness
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.connected()
	catalogReady := h.ready == nil || h.ready(r.Context()) == nil

	health := HealthStatus{
		Status:           healthStatusHealthy,
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		LastCommandTime:  lastCommandTime(),
		CatalogReady:     catalogReady,
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !catalogReady {
		health.Status = healthStatusDegraded
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	// Headers are already sent, nothing useful to do with an encode error
	_ = json.NewEncoder(w).Encode(health)
}

// ReadyFunc reports whether the services behind the bot can answer
type ReadyFunc func(ctx context.Context) error
