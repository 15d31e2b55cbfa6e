package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const missingAPIKeyMsg = "API key is required. Pass the apiKey argument or set the API_KEY environment variable."

// jsonResult renders an operation outcome for the agent: the backend's own
// message when it supplied one, otherwise the label plus pretty-printed data.
func jsonResult(label string, data json.RawMessage) *mcp.CallToolResult {
	if msg := messageField(data); msg != "" {
		return mcp.NewToolResultText(fmt.Sprintf("%s: %s", label, msg))
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s:\n%s", label, prettyJSON(data)))
}

func prettyJSON(data json.RawMessage) string {
	if len(data) == 0 {
		return "(no data)"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	return buf.String()
}

func messageField(data json.RawMessage) string {
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return ""
	}
	return obj.Message
}
