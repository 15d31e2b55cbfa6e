package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stackbase-dev/stackbase-mcp/pkg/backendver"
)

// Backends older than this expect the agent to be handed the usage
// instructions with every tool result; newer ones serve them through the
// fetch-docs tool instead and the shim stays off.
const legacyContextMaxVersion = "1.1.7"

const legacyContextBanner = "Backend usage instructions (compatibility mode for older backends):"

// decorateLegacyContext appends the backend's instructions document to a tool
// result, error results included, when talking to a pre-1.1.7 backend. Any
// failure leaves the original result untouched.
func (r *Registry) decorateLegacyContext(ctx context.Context, backendVersion string, result *mcp.CallToolResult) *mcp.CallToolResult {
	if result == nil || backendVersion == "" {
		return result
	}
	if !backendver.LessThan(backendVersion, legacyContextMaxVersion) {
		return result
	}

	instructions, err := r.clientsFor(ctx).Docs.Fetch(ctx, "instructions")
	if err != nil {
		r.log.V(1).Info("legacy context fetch failed", "error", err.Error())
		return result
	}
	if instructions == "" {
		return result
	}

	result.Content = append(result.Content, mcp.NewTextContent(legacyContextBanner+"\n\n"+instructions))
	return result
}
