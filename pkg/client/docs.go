package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Docs defines the documentation operations
type Docs interface {
	Fetch(ctx context.Context, docType string) (string, error)
}

type docsClient struct {
	client *BaseClient
}

// NewDocsClient creates a new docs client
func NewDocsClient(client *BaseClient) Docs {
	return &docsClient{client: client}
}

// Fetch retrieves one documentation article by type (for example
// "instructions", "database", "storage"). Docs are public.
func (c *docsClient) Fetch(ctx context.Context, docType string) (string, error) {
	path := fmt.Sprintf("/api/docs/%s", url.PathEscape(docType))
	resp, err := c.client.Get(ctx, path, "")
	if err != nil {
		return "", err
	}

	data, err := Unwrap(resp)
	if err != nil {
		return "", err
	}
	return docText(data), nil
}

// docText renders the doc payload as plain text. The backend returns either a
// bare markdown string or an object with a content field.
func docText(data json.RawMessage) string {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	var doc struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &doc); err == nil && doc.Content != "" {
		return doc.Content
	}
	return string(data)
}
