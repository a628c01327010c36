package node

import (
	"context"

	mcp "github.com/mark3labs/mcp-go/mcp"

	"github.com/clustereye/mcp-kubernetes/internal/extract"
	"github.com/clustereye/mcp-kubernetes/internal/logging"
	"github.com/clustereye/mcp-kubernetes/internal/server"
	"github.com/clustereye/mcp-kubernetes/internal/tools"
)

// nodeListResponse is the success envelope of get_nodes.
type nodeListResponse struct {
	TotalNodes int                    `json:"total_nodes"`
	Nodes      []extract.NodeRecord   `json:"nodes"`
	Summary    extract.ClusterSummary `json:"summary"`
}

func handleGetNodes(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	kubeContext := tools.StringArg(args, "context")

	logger := logging.WithTool(sc.Logger(), "get_nodes")
	logger.Info("listing nodes", logging.KubeContext(kubeContext))

	nodes, err := sc.K8sClient().ListNodes(ctx, kubeContext)
	if err != nil {
		logger.Error("failed to list nodes", logging.Err(err))
		return tools.NewErrorResult(err, nil), nil
	}

	records := make([]extract.NodeRecord, 0, len(nodes))
	for i := range nodes {
		records = append(records, extract.NodeFrom(&nodes[i]))
	}

	return tools.NewJSONResult(nodeListResponse{
		TotalNodes: len(records),
		Nodes:      records,
		Summary:    extract.SummarizeNodes(records),
	}), nil
}
