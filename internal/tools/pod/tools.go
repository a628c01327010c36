// Package pod implements the pod MCP tools: listing, detailed inspection and
// log retrieval.
package pod

import (
	"context"

	mcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/clustereye/mcp-kubernetes/internal/server"
	"github.com/clustereye/mcp-kubernetes/internal/tools"
)

// RegisterPodTools registers all pod tools with the MCP server.
func RegisterPodTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getPodsTool := mcp.NewTool("get_pods",
		mcp.WithTitleAnnotation("Get Pods"),
		mcp.WithDescription("Get the list of pods in the Kubernetes cluster with aggregate statistics"),
		tools.WithContextParam(),
		mcp.WithString("namespace",
			mcp.Description("Namespace to filter pods (optional, all namespaces if not specified)"),
		),
	)

	s.AddTool(getPodsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetPods(ctx, request, sc)
	})

	getPodDetailsTool := mcp.NewTool("get_pod_details",
		mcp.WithTitleAnnotation("Get Pod Details"),
		mcp.WithDescription("Get detailed information about a specific pod: metadata, spec, status and recent events"),
		tools.WithContextParam(),
		mcp.WithString("pod_name",
			mcp.Required(),
			mcp.Description("Name of the pod"),
		),
		mcp.WithString("namespace",
			mcp.Required(),
			mcp.Description("Namespace of the pod"),
		),
		mcp.WithString("environment",
			mcp.Description("Environment label echoed back in the response (optional)"),
		),
	)

	s.AddTool(getPodDetailsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetPodDetails(ctx, request, sc)
	})

	getLogsTool := mcp.NewTool("get_logs",
		mcp.WithTitleAnnotation("Get Pod Logs"),
		mcp.WithDescription("Get the logs of a specific pod"),
		tools.WithContextParam(),
		mcp.WithString("pod_name",
			mcp.Required(),
			mcp.Description("Name of the pod"),
		),
		mcp.WithString("namespace",
			mcp.Required(),
			mcp.Description("Namespace of the pod"),
		),
		mcp.WithString("environment",
			mcp.Description("Environment label of the pod (optional, informational)"),
		),
		mcp.WithString("container",
			mcp.Description("Specific container to read logs from (optional)"),
		),
		mcp.WithBoolean("previous",
			mcp.Description("Read logs from the previous container instance (optional, default false)"),
		),
		mcp.WithNumber("tail_lines",
			mcp.Description("Number of trailing lines to return (optional, default 100)"),
		),
	)

	s.AddTool(getLogsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetLogs(ctx, request, sc)
	})

	return nil
}
