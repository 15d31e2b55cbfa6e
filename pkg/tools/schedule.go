package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

func (r *Registry) scheduleTools() []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("upsert-schedule",
				mcp.WithDescription("Create or replace a cron schedule for an edge function"),
				mcp.WithString("name", mcp.Required(), mcp.Description("Unique schedule name")),
				mcp.WithString("cron", mcp.Required(), mcp.Description("Cron expression, five fields")),
				mcp.WithString("functionSlug", mcp.Description("The edge function the schedule triggers")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleUpsertSchedule,
		},
		{
			tool: mcp.NewTool("delete-schedule",
				mcp.WithDescription("Delete a cron schedule"),
				mcp.WithString("name", mcp.Required(), mcp.Description("The schedule to delete")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleDeleteSchedule,
		},
	}
}

func (r *Registry) handleUpsertSchedule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cron, err := request.RequireString("cron")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	data, err := r.clientsFor(ctx).Schedules.Upsert(ctx, api.ScheduleRequest{
		Name:         name,
		Cron:         cron,
		FunctionSlug: request.GetString("functionSlug", ""),
	}, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to upsert schedule %s: %v", name, err)), nil
	}
	return jsonResult(fmt.Sprintf("Upserted schedule %s", name), data), nil
}

func (r *Registry) handleDeleteSchedule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	data, err := r.clientsFor(ctx).Schedules.Delete(ctx, name, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete schedule %s: %v", name, err)), nil
	}
	return jsonResult(fmt.Sprintf("Deleted schedule %s", name), data), nil
}
