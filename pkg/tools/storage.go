package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

func (r *Registry) storageTools() []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("create-bucket",
				mcp.WithDescription("Create a storage bucket"),
				mcp.WithString("bucketName", mcp.Required(), mcp.Description("Name of the bucket to create")),
				mcp.WithBoolean("isPublic", mcp.Description("Whether objects in the bucket are publicly readable")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleCreateBucket,
		},
		{
			tool: mcp.NewTool("list-buckets",
				mcp.WithDescription("List all storage buckets"),
			),
			handler: r.handleListBuckets,
		},
		{
			tool: mcp.NewTool("delete-bucket",
				mcp.WithDescription("Delete a storage bucket and its contents"),
				mcp.WithString("bucketName", mcp.Required(), mcp.Description("Name of the bucket to delete")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleDeleteBucket,
		},
	}
}

func (r *Registry) handleCreateBucket(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bucketName, err := request.RequireString("bucketName")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	data, err := r.clientsFor(ctx).Storage.CreateBucket(ctx, api.CreateBucketRequest{
		BucketName: bucketName,
		IsPublic:   request.GetBool("isPublic", false),
	}, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create bucket %s: %v", bucketName, err)), nil
	}
	return jsonResult(fmt.Sprintf("Created bucket %s", bucketName), data), nil
}

func (r *Registry) handleListBuckets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !r.hasAPIKey(ctx, "") {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	buckets, err := r.clientsFor(ctx).Storage.ListBuckets(ctx, "")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list buckets: %v", err)), nil
	}
	if len(buckets) == 0 {
		return mcp.NewToolResultText("No storage buckets exist."), nil
	}

	pretty, err := json.MarshalIndent(buckets, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to render bucket list: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Storage buckets:\n%s", pretty)), nil
}

func (r *Registry) handleDeleteBucket(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bucketName, err := request.RequireString("bucketName")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	data, err := r.clientsFor(ctx).Storage.DeleteBucket(ctx, bucketName, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete bucket %s: %v", bucketName, err)), nil
	}
	return jsonResult(fmt.Sprintf("Deleted bucket %s", bucketName), data), nil
}
