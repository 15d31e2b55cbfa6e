package tools

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client"
	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
	"github.com/stackbase-dev/stackbase-mcp/pkg/usage"
)

// fakeBackend serves a health endpoint reporting the given version.
func fakeBackend(t *testing.T, version string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			fmt.Fprintf(w, `{"success":true,"data":{"status":"ok","version":%q,"service":"stackbase"}}`, version)
			return
		}
		http.NotFound(w, r)
	}))
}

func newTestRegistry(t *testing.T, backendURL string, options ...RegistryOption) *Registry {
	t.Helper()
	cfg := Config{APIKey: "sk-test", APIBaseURL: backendURL}
	options = append([]RegistryOption{WithClients(client.New(backendURL, client.WithAPIKey("sk-test")))}, options...)
	return NewRegistry(cfg, logr.Discard(), options...)
}

func TestRegisterAllVersionGating(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		wantCount int
	}{
		{name: "old backend hides gated tools", version: "1.0.0", wantCount: 15},
		{name: "schedule tools appear at their minimum", version: "1.1.1", wantCount: 17},
		{name: "full surface on recent backend", version: "1.5.0", wantCount: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := fakeBackend(t, tt.version)
			defer backend.Close()

			registry := newTestRegistry(t, backend.URL)
			mcpServer := server.NewMCPServer("test", "0.0.0")

			summary, err := registry.RegisterAll(context.Background(), mcpServer)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, summary.ToolCount)
			assert.Equal(t, tt.version, summary.BackendVersion)
		})
	}
}

func TestRegisterAllUnreachableBackendSkipsGatedTools(t *testing.T) {
	backend := fakeBackend(t, "1.5.0")
	backend.Close()

	registry := newTestRegistry(t, backend.URL)
	mcpServer := server.NewMCPServer("test", "0.0.0")

	summary, err := registry.RegisterAll(context.Background(), mcpServer)
	require.NoError(t, err)
	assert.Equal(t, 15, summary.ToolCount)
	assert.Empty(t, summary.BackendVersion)
}

func TestRegisterAllRejectsDuplicateNames(t *testing.T) {
	backend := fakeBackend(t, "1.5.0")
	defer backend.Close()

	registry := newTestRegistry(t, backend.URL)
	mcpServer := server.NewMCPServer("test", "0.0.0")

	_, err := registry.RegisterAll(context.Background(), mcpServer)
	require.NoError(t, err)

	// A second pass sees every name as already registered.
	_, err = registry.RegisterAll(context.Background(), mcpServer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate tool name")
}

func TestToolNamesCarryRequirements(t *testing.T) {
	registry := newTestRegistry(t, "http://localhost:0")

	byName := map[string]ToolInfo{}
	for _, info := range registry.ToolNames() {
		byName[info.Name] = info
	}

	assert.Len(t, byName, 18)
	assert.Equal(t, "1.1.1", byName["upsert-schedule"].MinVersion)
	assert.Equal(t, "1.1.1", byName["delete-schedule"].MinVersion)
	assert.Equal(t, "1.4.7", byName["create-deployment"].MinVersion)
	assert.Empty(t, byName["run-raw-sql"].MinVersion)
}

type failingPoster struct{}

func (failingPoster) Post(ctx context.Context, event api.UsageEvent) error {
	return errors.New("usage endpoint down")
}

func TestWrapTrackingFailureDoesNotAlterResult(t *testing.T) {
	registry := newTestRegistry(t, "http://localhost:0",
		WithTracker(usage.NewTracker(failingPoster{}, logr.Discard())))

	inner := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("query ok"), nil
	}

	result, err := registry.wrap("run-raw-sql", "1.2.0", inner)(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "query ok", text.Text)
}

func TestWrapPropagatesHandlerError(t *testing.T) {
	registry := newTestRegistry(t, "http://localhost:0")

	boom := errors.New("boom")
	inner := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, boom
	}

	result, err := registry.wrap("run-raw-sql", "1.2.0", inner)(context.Background(), mcp.CallToolRequest{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, boom)
}

func TestVersionRequirementSatisfiedBy(t *testing.T) {
	req := VersionRequirement{MinVersion: "1.1.1"}
	assert.False(t, req.SatisfiedBy("1.1.0"))
	assert.True(t, req.SatisfiedBy("1.1.1"))
	assert.True(t, req.SatisfiedBy("1.2.0"))

	bounded := VersionRequirement{MinVersion: "1.0.0", MaxVersion: "2.0.0"}
	assert.True(t, bounded.SatisfiedBy("2.0.0"))
	assert.False(t, bounded.SatisfiedBy("2.0.1"))
}
