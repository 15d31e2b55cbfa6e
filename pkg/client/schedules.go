package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// Schedules defines the cron schedule operations
type Schedules interface {
	Upsert(ctx context.Context, req api.ScheduleRequest, apiKey string) (json.RawMessage, error)
	Delete(ctx context.Context, name string, apiKey string) (json.RawMessage, error)
}

type schedulesClient struct {
	client *BaseClient
}

// NewSchedulesClient creates a new schedules client
func NewSchedulesClient(client *BaseClient) Schedules {
	return &schedulesClient{client: client}
}

func (c *schedulesClient) Upsert(ctx context.Context, req api.ScheduleRequest, apiKey string) (json.RawMessage, error) {
	resp, err := c.client.Post(ctx, "/api/schedules/upsert", req, apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}

func (c *schedulesClient) Delete(ctx context.Context, name string, apiKey string) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/schedules/%s", url.PathEscape(name))
	resp, err := c.client.Delete(ctx, path, apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}
