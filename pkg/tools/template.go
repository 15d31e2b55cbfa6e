package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (r *Registry) templateTools() []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("download-template",
				mcp.WithDescription("Get the starter template for a frontend framework and the commands to scaffold it"),
				mcp.WithString("frame", mcp.Required(), mcp.Description("The framework (for example react, nextjs, vue)")),
				mcp.WithString("projectName", mcp.Description("Directory name for the scaffolded project")),
			),
			handler: r.handleDownloadTemplate,
		},
	}
}

func (r *Registry) handleDownloadTemplate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	frame, err := request.RequireString("frame")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	projectName := request.GetString("projectName", "")
	if projectName == "" {
		projectName = fmt.Sprintf("%s-app", frame)
	}

	tpl, err := r.clientsFor(ctx).Templates.Get(ctx, frame)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get template for %s: %v", frame, err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Template for %s:\n", frame)
	fmt.Fprintf(&b, "Repository: %s\n", tpl.RepoURL)
	clone := fmt.Sprintf("git clone --depth 1 %s %s", tpl.RepoURL, projectName)
	if tpl.Branch != "" {
		clone = fmt.Sprintf("git clone --depth 1 -b %s %s %s", tpl.Branch, tpl.RepoURL, projectName)
	}
	fmt.Fprintf(&b, "Scaffold with:\n  %s\n", clone)
	if tpl.Notes != "" {
		fmt.Fprintf(&b, "\n%s\n", tpl.Notes)
	}
	return mcp.NewToolResultText(b.String()), nil
}
