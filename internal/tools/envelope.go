package tools

import (
	"encoding/json"
	"fmt"

	mcp "github.com/mark3labs/mcp-go/mcp"

	"github.com/clustereye/mcp-kubernetes/internal/k8s"
)

// NewJSONResult marshals payload with two-space indentation into a text
// result.
func NewJSONResult(payload any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to serialize result: %w", err), nil)
	}
	return mcp.NewToolResultText(string(data))
}

// NewErrorResult builds the failure envelope for a tool call. The envelope
// always carries the error message under "error"; a status code is added
// when the failure originated from the cluster API, and fields echoes back
// whatever identifying arguments were in scope. Failures are returned as
// tool results, never as protocol faults.
func NewErrorResult(err error, fields map[string]any) *mcp.CallToolResult {
	envelope := map[string]any{"error": err.Error()}
	if code := k8s.StatusCode(err); code != 0 {
		envelope["status_code"] = code
	}
	for key, value := range fields {
		envelope[key] = value
	}

	data, mErr := json.MarshalIndent(envelope, "", "  ")
	if mErr != nil {
		data = []byte(fmt.Sprintf(`{"error": %q}`, err.Error()))
	}
	return mcp.NewToolResultText(string(data))
}
