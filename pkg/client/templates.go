package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// Templates defines the project template operations
type Templates interface {
	Get(ctx context.Context, frame string) (*api.Template, error)
}

type templatesClient struct {
	client *BaseClient
}

// NewTemplatesClient creates a new templates client
func NewTemplatesClient(client *BaseClient) Templates {
	return &templatesClient{client: client}
}

// Get returns the template descriptor for a frontend framework.
func (c *templatesClient) Get(ctx context.Context, frame string) (*api.Template, error) {
	path := fmt.Sprintf("/api/templates/%s", url.PathEscape(frame))
	resp, err := c.client.Get(ctx, path, "")
	if err != nil {
		return nil, err
	}

	var tpl api.Template
	if err := UnwrapInto(resp, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}
