package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (r *Registry) docsTools() []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("fetch-docs",
				mcp.WithDescription("Fetch a Stackbase documentation article. Start with docType 'instructions' to learn how to drive the backend."),
				mcp.WithString("docType", mcp.Required(), mcp.Description("The article to fetch (instructions, database, storage, auth, functions, deployments)")),
			),
			handler: r.handleFetchDocs,
		},
	}
}

func (r *Registry) handleFetchDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docType, err := request.RequireString("docType")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := r.clientsFor(ctx).Docs.Fetch(ctx, docType)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch %s docs: %v", docType, err)), nil
	}
	return mcp.NewToolResultText(doc), nil
}
