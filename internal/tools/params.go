// Package tools provides shared utilities for MCP tool implementations:
// argument extraction, the shared context parameter, and the JSON result and
// error envelopes every tool returns.
package tools

import (
	"strings"

	mcp "github.com/mark3labs/mcp-go/mcp"
)

// WithContextParam returns the optional kubeconfig context parameter shared
// by the cluster-facing tools.
func WithContextParam() mcp.ToolOption {
	return mcp.WithString("context",
		mcp.Description("Kubernetes context to use (optional, uses the current context if not specified)"),
	)
}

// StringArg returns the named string argument with surrounding whitespace
// trimmed. A missing or non-string argument yields "".
func StringArg(args map[string]any, key string) string {
	value, _ := args[key].(string)
	return strings.TrimSpace(value)
}

// BoolArg returns the named boolean argument, false when absent.
func BoolArg(args map[string]any, key string) bool {
	value, _ := args[key].(bool)
	return value
}

// NumberArg returns the named numeric argument. JSON numbers arrive as
// float64; integer types are accepted for callers that construct requests
// directly.
func NumberArg(args map[string]any, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
