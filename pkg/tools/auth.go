package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (r *Registry) authTools() []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("get-anon-key",
				mcp.WithDescription("Issue an anonymous access token for client-side use against the backend"),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleGetAnonKey,
		},
	}
}

func (r *Registry) handleGetAnonKey(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	key, err := r.clientsFor(ctx).Auth.GetAnonKey(ctx, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get anon key: %v", err)), nil
	}

	text := fmt.Sprintf("Anonymous key: %s", key.AnonKey)
	if key.ExpiresAt != "" {
		text += fmt.Sprintf("\nExpires at: %s", key.ExpiresAt)
	}
	return mcp.NewToolResultText(text), nil
}
