// Package deployment implements the deployment MCP tools: listing, scaling
// and rolling restarts.
package deployment

import (
	"context"

	mcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/clustereye/mcp-kubernetes/internal/server"
	"github.com/clustereye/mcp-kubernetes/internal/tools"
)

// RegisterDeploymentTools registers all deployment tools with the MCP server.
func RegisterDeploymentTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getDeploymentsTool := mcp.NewTool("get_deployments",
		mcp.WithTitleAnnotation("Get Deployments"),
		mcp.WithDescription("Get the list of deployments in the Kubernetes cluster"),
		tools.WithContextParam(),
		mcp.WithString("namespace",
			mcp.Description("Namespace to filter deployments (optional, all namespaces if not specified)"),
		),
	)

	s.AddTool(getDeploymentsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetDeployments(ctx, request, sc)
	})

	scaleDeploymentTool := mcp.NewTool("scale_deployment",
		mcp.WithTitleAnnotation("Scale Deployment"),
		mcp.WithDescription("Scale a deployment in the Kubernetes cluster"),
		mcp.WithString("namespace",
			mcp.Required(),
			mcp.Description("Namespace of the deployment"),
		),
		mcp.WithString("deployment_name",
			mcp.Required(),
			mcp.Description("Name of the deployment to scale"),
		),
		mcp.WithNumber("replicas",
			mcp.Required(),
			mcp.Description("Desired number of replicas (must be >= 0)"),
		),
	)

	s.AddTool(scaleDeploymentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleScaleDeployment(ctx, request, sc)
	})

	rolloutDeploymentTool := mcp.NewTool("rollout_deployment",
		mcp.WithTitleAnnotation("Rollout Deployment"),
		mcp.WithDescription("Perform a rolling restart of a deployment in the Kubernetes cluster"),
		mcp.WithString("namespace",
			mcp.Required(),
			mcp.Description("Namespace of the deployment"),
		),
		mcp.WithString("deployment_name",
			mcp.Required(),
			mcp.Description("Name of the deployment to restart"),
		),
	)

	s.AddTool(rolloutDeploymentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRolloutDeployment(ctx, request, sc)
	})

	return nil
}
