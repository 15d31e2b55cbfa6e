package client

import (
	"context"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// Health defines the health-related operations
type Health interface {
	Get(ctx context.Context) (*api.HealthResponse, error)
}

// healthClient handles health-related requests
type healthClient struct {
	client *BaseClient
}

// NewHealthClient creates a new health client
func NewHealthClient(client *BaseClient) Health {
	return &healthClient{client: client}
}

// Get probes the backend and returns its reported status and version.
// The health endpoint is unauthenticated.
func (c *healthClient) Get(ctx context.Context) (*api.HealthResponse, error) {
	resp, err := c.client.Get(ctx, "/api/health", "")
	if err != nil {
		return nil, err
	}

	var health api.HealthResponse
	if err := UnwrapInto(resp, &health); err != nil {
		return nil, err
	}

	return &health, nil
}
