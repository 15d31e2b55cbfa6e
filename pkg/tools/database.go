package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

func (r *Registry) databaseTools() []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("get-table-schema",
				mcp.WithDescription("Get the column definitions of one database table"),
				mcp.WithString("tableName", mcp.Required(), mcp.Description("The table to describe")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleGetTableSchema,
		},
		{
			tool: mcp.NewTool("run-raw-sql",
				mcp.WithDescription("Run a raw SQL statement against the project database"),
				mcp.WithString("query", mcp.Required(), mcp.Description("The SQL statement to execute")),
				mcp.WithArray("params", mcp.Description("Positional parameters for the statement")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleRunRawSQL,
		},
		{
			tool: mcp.NewTool("bulk-upsert",
				mcp.WithDescription("Upload a local CSV or JSON file and upsert its rows into a table"),
				mcp.WithString("table", mcp.Required(), mcp.Description("The target table")),
				mcp.WithString("filePath", mcp.Required(), mcp.Description("Local path of the data file to upload")),
				mcp.WithString("upsertKey", mcp.Description("Column used to match existing rows; rows without a match are inserted")),
				mcp.WithString("apiKey", mcp.Description("API key override for this call")),
			),
			handler: r.handleBulkUpsert,
		},
	}
}

func (r *Registry) handleGetTableSchema(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tableName, err := request.RequireString("tableName")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	data, err := r.clientsFor(ctx).Database.GetTableSchema(ctx, tableName, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get schema for table %s: %v", tableName, err)), nil
	}
	return jsonResult(fmt.Sprintf("Schema for table %s", tableName), data), nil
}

func (r *Registry) handleRunRawSQL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	var params []any
	if raw, ok := request.GetArguments()["params"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return mcp.NewToolResultError("params must be an array"), nil
		}
		params = list
	}

	data, err := r.clientsFor(ctx).Database.RunQuery(ctx, api.QueryRequest{
		Query:  query,
		Params: params,
	}, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Query failed: %v", err)), nil
	}
	return jsonResult("Query result", data), nil
}

func (r *Registry) handleBulkUpsert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table, err := request.RequireString("table")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	filePath, err := request.RequireString("filePath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	upsertKey := request.GetString("upsertKey", "")
	apiKey := request.GetString("apiKey", "")
	if !r.hasAPIKey(ctx, apiKey) {
		return mcp.NewToolResultError(missingAPIKeyMsg), nil
	}

	f, err := os.Open(filePath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read data file %s: %v", filePath, err)), nil
	}
	defer f.Close()

	data, err := r.clientsFor(ctx).Database.BulkUpsert(ctx, table, upsertKey, filepath.Base(filePath), f, apiKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Bulk upsert into %s failed: %v", table, err)), nil
	}
	return jsonResult(fmt.Sprintf("Bulk upsert into %s", table), data), nil
}
