package tools

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stackbase-dev/stackbase-mcp/pkg/archive"
	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

func (r *Registry) deployTools() []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("create-deployment",
				mcp.WithDescription("Package a local source directory and deploy it to the backend's hosting"),
				mcp.WithString("sourceDirectory", mcp.Required(), mcp.Description("Absolute path of the directory to deploy")),
				mcp.WithString("projectName", mcp.Description("Project name shown in the dashboard")),
				mcp.WithString("framework", mcp.Description("Framework hint for the build (for example nextjs, vite, static)")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleCreateDeployment,
		},
	}
}

func (r *Registry) handleCreateDeployment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sourceDirectory, err := request.RequireString("sourceDirectory")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	// Reject relative paths before touching the network: the server's
	// working directory is not the agent's.
	if !filepath.IsAbs(sourceDirectory) {
		return mcp.NewToolResultError(fmt.Sprintf(
			"sourceDirectory must be an absolute path, got %q. Resolve the project directory to an absolute path and retry.",
			sourceDirectory)), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	zipped, err := archive.ZipDirectory(sourceDirectory)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to package %s: %v", sourceDirectory, err)), nil
	}

	clients := r.clientsFor(ctx)
	dep, err := clients.Deployments.Create(ctx, api.CreateDeploymentRequest{
		ProjectName: request.GetString("projectName", ""),
		Framework:   request.GetString("framework", ""),
	}, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create deployment: %v", err)), nil
	}

	if err := clients.Deployments.UploadArchive(ctx, dep, zipped); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to upload deployment %s: %v", dep.ID, err)), nil
	}

	data, err := clients.Deployments.Start(ctx, dep.ID, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to start deployment %s: %v", dep.ID, err)), nil
	}
	return jsonResult(fmt.Sprintf("Deployment %s started", dep.ID), data), nil
}
