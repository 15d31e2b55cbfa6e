package client

import (
	"context"
	"io"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// Usage defines the usage telemetry operations
type Usage interface {
	Post(ctx context.Context, event api.UsageEvent) error
}

type usageClient struct {
	client *BaseClient
}

// NewUsageClient creates a new usage client
func NewUsageClient(client *BaseClient) Usage {
	return &usageClient{client: client}
}

// Post reports one tool invocation. The backend treats each event as an
// idempotent counter increment; the response body is irrelevant.
func (c *usageClient) Post(ctx context.Context, event api.UsageEvent) error {
	resp, err := c.client.Post(ctx, "/api/usage/mcp", event, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
