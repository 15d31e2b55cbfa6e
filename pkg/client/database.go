package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// Database defines the database operations
type Database interface {
	RunQuery(ctx context.Context, req api.QueryRequest, apiKey string) (json.RawMessage, error)
	GetTableSchema(ctx context.Context, tableName string, apiKey string) (json.RawMessage, error)
	BulkUpsert(ctx context.Context, table, upsertKey, fileName string, file io.Reader, apiKey string) (json.RawMessage, error)
}

type databaseClient struct {
	client *BaseClient
}

// NewDatabaseClient creates a new database client
func NewDatabaseClient(client *BaseClient) Database {
	return &databaseClient{client: client}
}

// RunQuery executes a raw SQL statement against the project database.
func (c *databaseClient) RunQuery(ctx context.Context, req api.QueryRequest, apiKey string) (json.RawMessage, error) {
	resp, err := c.client.Post(ctx, "/api/database/query", req, apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}

// GetTableSchema fetches the column definitions of one table.
func (c *databaseClient) GetTableSchema(ctx context.Context, tableName string, apiKey string) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/database/tables/%s/schema", url.PathEscape(tableName))
	resp, err := c.client.Get(ctx, path, apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}

// BulkUpsert streams a local data file (CSV or JSON) to the backend, which
// inserts or updates rows keyed on upsertKey.
func (c *databaseClient) BulkUpsert(ctx context.Context, table, upsertKey, fileName string, file io.Reader, apiKey string) (json.RawMessage, error) {
	fields := map[string]string{"table": table}
	if upsertKey != "" {
		fields["upsertKey"] = upsertKey
	}
	resp, err := c.client.PostMultipart(ctx, "/api/database/bulk-upsert", fields, &MultipartFile{
		Field:    "file",
		Name:     fileName,
		Contents: file,
	}, apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}
