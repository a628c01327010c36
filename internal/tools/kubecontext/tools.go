// Package kubecontext implements the kubeconfig context MCP tools: listing,
// inspecting and selecting contexts.
package kubecontext

import (
	"context"

	mcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/clustereye/mcp-kubernetes/internal/server"
)

// RegisterContextTools registers all kubeconfig context tools with the MCP
// server.
func RegisterContextTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getContextsTool := mcp.NewTool("get_available_contexts",
		mcp.WithTitleAnnotation("Get Available Contexts"),
		mcp.WithDescription("Get the list of contexts available in the kubeconfig"),
		mcp.WithBoolean("probe",
			mcp.Description("Probe each context for reachability (optional, default false)"),
		),
	)

	s.AddTool(getContextsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetAvailableContexts(ctx, request, sc)
	})

	getCurrentContextTool := mcp.NewTool("get_current_context",
		mcp.WithTitleAnnotation("Get Current Context"),
		mcp.WithDescription("Get the name of the currently active kubeconfig context"),
	)

	s.AddTool(getCurrentContextTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetCurrentContext(ctx, request, sc)
	})

	setDefaultContextTool := mcp.NewTool("set_default_context",
		mcp.WithTitleAnnotation("Set Default Context"),
		mcp.WithDescription("Set the default kubeconfig context used by subsequent tool calls"),
		mcp.WithString("context",
			mcp.Required(),
			mcp.Description("Name of the context to set as default"),
		),
	)

	s.AddTool(setDefaultContextTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSetDefaultContext(ctx, request, sc)
	})

	switchContextTool := mcp.NewTool("switch_context",
		mcp.WithTitleAnnotation("Switch Context"),
		mcp.WithDescription("Switch the active kubeconfig context after verifying connectivity"),
		mcp.WithString("context",
			mcp.Required(),
			mcp.Description("Name of the context to switch to"),
		),
	)

	s.AddTool(switchContextTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSwitchContext(ctx, request, sc)
	})

	return nil
}
