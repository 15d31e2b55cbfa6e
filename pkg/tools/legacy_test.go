package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorateLegacyContextAppendsInstructions(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/docs/instructions", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":"Always call fetch-docs first."}`))
	}))
	defer backend.Close()

	registry := newTestRegistry(t, backend.URL)

	result := registry.decorateLegacyContext(context.Background(), "1.1.6", mcp.NewToolResultText("done"))
	require.Len(t, result.Content, 2)

	text, ok := result.Content[1].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, legacyContextBanner)
	assert.Contains(t, text.Text, "Always call fetch-docs first.")
}

func TestWrapDecoratesErrorResults(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/docs/instructions", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":"Always call fetch-docs first."}`))
	}))
	defer backend.Close()

	registry := newTestRegistry(t, backend.URL)

	inner := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultError("query failed"), nil
	}

	result, err := registry.wrap("run-raw-sql", "1.0.0", inner)(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 2)

	text, ok := result.Content[1].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, legacyContextBanner)
}

func TestDecorateLegacyContextInactiveOnCurrentBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer backend.Close()

	registry := newTestRegistry(t, backend.URL)

	for _, version := range []string{"1.1.7", "1.2.0", "2.0.0"} {
		result := registry.decorateLegacyContext(context.Background(), version, mcp.NewToolResultText("done"))
		assert.Len(t, result.Content, 1, "version %s", version)
	}
}

func TestDecorateLegacyContextFetchFailureLeavesResultUntouched(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer backend.Close()

	registry := newTestRegistry(t, backend.URL)

	original := mcp.NewToolResultText("done")
	result := registry.decorateLegacyContext(context.Background(), "1.0.0", original)
	assert.Same(t, original, result)
	assert.Len(t, result.Content, 1)
}

func TestDecorateLegacyContextUnknownVersion(t *testing.T) {
	registry := newTestRegistry(t, "http://localhost:0")

	original := mcp.NewToolResultText("done")
	result := registry.decorateLegacyContext(context.Background(), "", original)
	assert.Same(t, original, result)
}
