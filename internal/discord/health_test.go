package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	notReady := func(context.Context) error { return errors.New("catalog not loaded") }

	tests := []struct {
		name        string
		connected   bool
		ready       ReadyFunc
		wantCode    int
		wantStatus  string
		wantCatalog bool
	}{
		{"healthy", true, nil, http.StatusOK, healthStatusHealthy, true},
		{"disconnected", false, nil, http.StatusServiceUnavailable, healthStatusDegraded, true},
		{"catalog missing", true, notReady, http.StatusServiceUnavailable, healthStatusDegraded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := &HTTPServer{
				connected: func() bool { return tt.connected },
				ready:     tt.ready,
			}

			rec := httptest.NewRecorder()
			srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			var health HealthStatus
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
			assert.Equal(t, tt.wantStatus, health.Status)
			assert.Equal(t, tt.connected, health.Connected)
			assert.Equal(t, tt.wantCatalog, health.CatalogReady)
			assert.NotEmpty(t, health.Uptime)
		})
	}
}

func TestNewHTTPServer_Routes(t *testing.T) {
	bot, err := New(Config{Token: "test-token"}, &Deps{})
	require.NoError(t, err)

	srv := NewHTTPServer("0", bot, nil)

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	// A bot that never opened the gateway is not connected
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
