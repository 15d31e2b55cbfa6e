package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (r *Registry) metadataTools() []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("get-backend-metadata",
				mcp.WithDescription("Get the project's backend metadata: tables, buckets, functions and auth configuration"),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleGetBackendMetadata,
		},
	}
}

func (r *Registry) handleGetBackendMetadata(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	data, err := r.clientsFor(ctx).Metadata.Get(ctx, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get backend metadata: %v", err)), nil
	}
	return jsonResult("Backend metadata", data), nil
}
