// Package node implements the node MCP tool.
package node

import (
	"context"

	mcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/clustereye/mcp-kubernetes/internal/server"
	"github.com/clustereye/mcp-kubernetes/internal/tools"
)

// RegisterNodeTools registers all node tools with the MCP server.
func RegisterNodeTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getNodesTool := mcp.NewTool("get_nodes",
		mcp.WithTitleAnnotation("Get Nodes"),
		mcp.WithDescription("Get the list of nodes in the Kubernetes cluster with a capacity summary"),
		tools.WithContextParam(),
	)

	s.AddTool(getNodesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetNodes(ctx, request, sc)
	})

	return nil
}
