package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// Functions defines the edge function operations
type Functions interface {
	Create(ctx context.Context, req api.FunctionRequest, apiKey string) (json.RawMessage, error)
	Get(ctx context.Context, slug string, apiKey string) (*api.Function, error)
	Update(ctx context.Context, slug string, req api.FunctionRequest, apiKey string) (json.RawMessage, error)
	Delete(ctx context.Context, slug string, apiKey string) (json.RawMessage, error)
}

type functionsClient struct {
	client *BaseClient
}

// NewFunctionsClient creates a new functions client
func NewFunctionsClient(client *BaseClient) Functions {
	return &functionsClient{client: client}
}

func (c *functionsClient) Create(ctx context.Context, req api.FunctionRequest, apiKey string) (json.RawMessage, error) {
	resp, err := c.client.Post(ctx, "/api/functions", req, apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}

func (c *functionsClient) Get(ctx context.Context, slug string, apiKey string) (*api.Function, error) {
	resp, err := c.client.Get(ctx, c.slugPath(slug), apiKey)
	if err != nil {
		return nil, err
	}

	var fn api.Function
	if err := UnwrapInto(resp, &fn); err != nil {
		return nil, err
	}
	return &fn, nil
}

func (c *functionsClient) Update(ctx context.Context, slug string, req api.FunctionRequest, apiKey string) (json.RawMessage, error) {
	resp, err := c.client.Patch(ctx, c.slugPath(slug), req, apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}

func (c *functionsClient) Delete(ctx context.Context, slug string, apiKey string) (json.RawMessage, error) {
	resp, err := c.client.Delete(ctx, c.slugPath(slug), apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}

func (c *functionsClient) slugPath(slug string) string {
	return fmt.Sprintf("/api/functions/%s", url.PathEscape(slug))
}
