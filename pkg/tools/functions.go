package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

func (r *Registry) functionTools() []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("create-function",
				mcp.WithDescription("Create an edge function from inline code or a local file"),
				mcp.WithString("slug", mcp.Required(), mcp.Description("URL-safe identifier for the function")),
				mcp.WithString("name", mcp.Description("Human-readable function name")),
				mcp.WithString("description", mcp.Description("What the function does")),
				mcp.WithString("code", mcp.Description("Function source, inline")),
				mcp.WithString("filePath", mcp.Description("Local path of the function source; alternative to code")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleCreateFunction,
		},
		{
			tool: mcp.NewTool("get-function",
				mcp.WithDescription("Get an edge function's metadata and status"),
				mcp.WithString("slug", mcp.Required(), mcp.Description("The function to look up")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleGetFunction,
		},
		{
			tool: mcp.NewTool("update-function",
				mcp.WithDescription("Update an edge function's code or metadata"),
				mcp.WithString("slug", mcp.Required(), mcp.Description("The function to update")),
				mcp.WithString("name", mcp.Description("New human-readable name")),
				mcp.WithString("description", mcp.Description("New description")),
				mcp.WithString("code", mcp.Description("New function source, inline")),
				mcp.WithString("filePath", mcp.Description("Local path of the new source; alternative to code")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleUpdateFunction,
		},
		{
			tool: mcp.NewTool("delete-function",
				mcp.WithDescription("Delete an edge function"),
				mcp.WithString("slug", mcp.Required(), mcp.Description("The function to delete")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleDeleteFunction,
		},
	}
}

// functionCode resolves the source for create/update: inline code wins, then
// a local file. Returns an error message suitable for the agent.
func functionCode(request mcp.CallToolRequest, required bool) (string, string) {
	if code := request.GetString("code", ""); code != "" {
		return code, ""
	}
	if filePath := request.GetString("filePath", ""); filePath != "" {
		contents, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Sprintf("Failed to read function source %s: %v", filePath, err)
		}
		return string(contents), ""
	}
	if required {
		return "", "Either code or filePath must be provided"
	}
	return "", ""
}

func (r *Registry) handleCreateFunction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	code, errMsg := functionCode(request, true)
	if errMsg != "" {
		return mcp.NewToolResultError(errMsg), nil
	}

	data, err := r.clientsFor(ctx).Functions.Create(ctx, api.FunctionRequest{
		Slug:        slug,
		Name:        request.GetString("name", ""),
		Description: request.GetString("description", ""),
		Code:        code,
	}, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create function %s: %v", slug, err)), nil
	}
	return jsonResult(fmt.Sprintf("Created function %s", slug), data), nil
}

func (r *Registry) handleGetFunction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	fn, err := r.clientsFor(ctx).Functions.Get(ctx, slug, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get function %s: %v", slug, err)), nil
	}

	pretty, err := json.MarshalIndent(fn, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to render function %s: %v", slug, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Function %s:\n%s", slug, pretty)), nil
}

func (r *Registry) handleUpdateFunction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	code, errMsg := functionCode(request, false)
	if errMsg != "" {
		return mcp.NewToolResultError(errMsg), nil
	}

	data, err := r.clientsFor(ctx).Functions.Update(ctx, slug, api.FunctionRequest{
		Name:        request.GetString("name", ""),
		Description: request.GetString("description", ""),
		Code:        code,
	}, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update function %s: %v", slug, err)), nil
	}
	return jsonResult(fmt.Sprintf("Updated function %s", slug), data), nil
}

func (r *Registry) handleDeleteFunction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	data, err := r.clientsFor(ctx).Functions.Delete(ctx, slug, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete function %s: %v", slug, err)), nil
	}
	return jsonResult(fmt.Sprintf("Deleted function %s", slug), data), nil
}
