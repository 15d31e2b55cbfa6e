package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContainerLogsLimitClamped(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		wantLimit string
	}{
		{name: "default", args: map[string]any{"source": "database"}, wantLimit: "100"},
		{name: "explicit", args: map[string]any{"source": "database", "limit": 50}, wantLimit: "50"},
		{name: "clamped high", args: map[string]any{"source": "database", "limit": 5000}, wantLimit: "1000"},
		{name: "clamped low", args: map[string]any{"source": "database", "limit": -3}, wantLimit: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit string
			backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotLimit = r.URL.Query().Get("limit")
				w.Write([]byte(`{"success":true,"data":{"lines":[]}}`))
			}))
			defer backend.Close()

			registry := newTestRegistry(t, backend.URL)
			result, err := registry.handleGetContainerLogs(context.Background(), callToolRequest(tt.args))
			require.NoError(t, err)
			assert.False(t, result.IsError)
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}

func TestGetContainerLogsRequiresAPIKey(t *testing.T) {
	registry := NewRegistry(Config{APIBaseURL: "http://localhost:0"}, logr.Discard())

	result, err := registry.handleGetContainerLogs(context.Background(),
		callToolRequest(map[string]any{"source": "database"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, missingAPIKeyMsg, resultText(t, result))
}
