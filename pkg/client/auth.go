package client

import (
	"context"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// Auth defines the auth token operations
type Auth interface {
	GetAnonKey(ctx context.Context, apiKey string) (*api.AnonKeyResponse, error)
}

type authClient struct {
	client *BaseClient
}

// NewAuthClient creates a new auth client
func NewAuthClient(client *BaseClient) Auth {
	return &authClient{client: client}
}

// GetAnonKey issues an anonymous access token for the project.
func (c *authClient) GetAnonKey(ctx context.Context, apiKey string) (*api.AnonKeyResponse, error) {
	resp, err := c.client.Post(ctx, "/api/auth/tokens/anon", nil, apiKey)
	if err != nil {
		return nil, err
	}

	var key api.AnonKeyResponse
	if err := UnwrapInto(resp, &key); err != nil {
		return nil, err
	}

	return &key, nil
}
