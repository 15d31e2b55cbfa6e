package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 1000
)

func (r *Registry) logTools() []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("get-container-logs",
				mcp.WithDescription("Fetch recent log lines from one backend container"),
				mcp.WithString("source", mcp.Required(), mcp.Description("The container source (for example database, functions, storage)")),
				mcp.WithNumber("limit", mcp.Description("Maximum number of lines, 1-1000 (default 100)")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleGetContainerLogs,
		},
	}
}

func (r *Registry) handleGetContainerLogs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	limit := request.GetInt("limit", defaultLogLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}

	data, err := r.clientsFor(ctx).Logs.Get(ctx, source, limit, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get logs for %s: %v", source, err)), nil
	}
	return jsonResult(fmt.Sprintf("Logs for %s", source), data), nil
}
