package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// Storage defines the storage bucket operations
type Storage interface {
	CreateBucket(ctx context.Context, req api.CreateBucketRequest, apiKey string) (json.RawMessage, error)
	ListBuckets(ctx context.Context, apiKey string) ([]api.Bucket, error)
	DeleteBucket(ctx context.Context, bucketName string, apiKey string) (json.RawMessage, error)
}

type storageClient struct {
	client *BaseClient
}

// NewStorageClient creates a new storage client
func NewStorageClient(client *BaseClient) Storage {
	return &storageClient{client: client}
}

func (c *storageClient) CreateBucket(ctx context.Context, req api.CreateBucketRequest, apiKey string) (json.RawMessage, error) {
	resp, err := c.client.Post(ctx, "/api/storage/buckets", req, apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}

func (c *storageClient) ListBuckets(ctx context.Context, apiKey string) ([]api.Bucket, error) {
	resp, err := c.client.Get(ctx, "/api/storage/buckets", apiKey)
	if err != nil {
		return nil, err
	}

	var buckets []api.Bucket
	if err := UnwrapInto(resp, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (c *storageClient) DeleteBucket(ctx context.Context, bucketName string, apiKey string) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/storage/buckets/%s", url.PathEscape(bucketName))
	resp, err := c.client.Delete(ctx, path, apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}
