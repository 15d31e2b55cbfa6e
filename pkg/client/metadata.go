package client

import (
	"context"
	"encoding/json"
)

// Metadata defines the backend metadata operations
type Metadata interface {
	Get(ctx context.Context, apiKey string) (json.RawMessage, error)
}

type metadataClient struct {
	client *BaseClient
}

// NewMetadataClient creates a new metadata client
func NewMetadataClient(client *BaseClient) Metadata {
	return &metadataClient{client: client}
}

// Get returns the backend's project metadata: tables, buckets, functions and
// auth configuration in one document.
func (c *metadataClient) Get(ctx context.Context, apiKey string) (json.RawMessage, error) {
	resp, err := c.client.Get(ctx, "/api/metadata", apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}
