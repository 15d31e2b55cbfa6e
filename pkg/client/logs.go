package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Logs defines the container log operations
type Logs interface {
	Get(ctx context.Context, source string, limit int, apiKey string) (json.RawMessage, error)
}

type logsClient struct {
	client *BaseClient
}

// NewLogsClient creates a new logs client
func NewLogsClient(client *BaseClient) Logs {
	return &logsClient{client: client}
}

// Get fetches recent log lines for one container source. Older backends serve
// logs under /api/logs/analytics; a 404 on the current path falls back there.
func (c *logsClient) Get(ctx context.Context, source string, limit int, apiKey string) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/logs/%s?limit=%d", url.PathEscape(source), limit)
	resp, err := c.client.Get(ctx, path, apiKey)
	if IsNotFound(err) {
		legacy := fmt.Sprintf("/api/logs/analytics/%s?limit=%d", url.PathEscape(source), limit)
		resp, err = c.client.Get(ctx, legacy, apiKey)
	}
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}
