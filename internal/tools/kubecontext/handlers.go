package kubecontext

import (
	"context"

	mcp "github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/clustereye/mcp-kubernetes/internal/k8s"
	"github.com/clustereye/mcp-kubernetes/internal/logging"
	"github.com/clustereye/mcp-kubernetes/internal/server"
	"github.com/clustereye/mcp-kubernetes/internal/tools"
)

// probeConcurrency bounds the parallel connectivity checks so a kubeconfig
// with many dead clusters does not fan out unbounded dials.
const probeConcurrency = 4

// contextListResponse is the success envelope of get_available_contexts.
// Contexts holds plain names, or contextStatus entries when probing.
type contextListResponse struct {
	TotalContexts  int     `json:"total_contexts"`
	CurrentContext *string `json:"current_context"`
	Contexts       any     `json:"contexts"`
}

// contextStatus is one entry of the probed context listing.
type contextStatus struct {
	Name      string `json:"name"`
	IsCurrent bool   `json:"is_current"`
	Reachable bool   `json:"reachable"`
}

// currentContextResponse is the success envelope of get_current_context.
type currentContextResponse struct {
	CurrentContext *string `json:"current_context"`
}

// selectContextResponse is the outcome envelope of set_default_context and
// switch_context.
type selectContextResponse struct {
	Success         bool    `json:"success"`
	Context         string  `json:"context"`
	PreviousContext *string `json:"previous_context"`
}

func handleGetAvailableContexts(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	probe := tools.BoolArg(args, "probe")

	logger := logging.WithTool(sc.Logger(), "get_available_contexts")

	client := sc.K8sClient()
	names := client.ListContexts()
	current := client.CurrentContext()
	logger.Info("listing contexts", "count", len(names), "probe", probe)

	response := contextListResponse{
		TotalContexts:  len(names),
		CurrentContext: strOrNil(current),
	}

	if !probe {
		if names == nil {
			names = []string{}
		}
		response.Contexts = names
		return tools.NewJSONResult(response), nil
	}

	statuses := make([]contextStatus, len(names))

	g, probeCtx := errgroup.WithContext(ctx)
	g.SetLimit(probeConcurrency)
	for i, name := range names {
		g.Go(func() error {
			statuses[i] = contextStatus{
				Name:      name,
				IsCurrent: name == current,
				Reachable: client.TestConnection(probeCtx, name),
			}
			return nil
		})
	}
	// Probe goroutines never return an error; unreachable clusters show up
	// as reachable=false.
	_ = g.Wait()

	response.Contexts = statuses
	return tools.NewJSONResult(response), nil
}

func handleGetCurrentContext(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	logger := logging.WithTool(sc.Logger(), "get_current_context")

	current := sc.K8sClient().CurrentContext()
	logger.Info("reading current context", logging.KubeContext(current))

	return tools.NewJSONResult(currentContextResponse{
		CurrentContext: strOrNil(current),
	}), nil
}

func handleSetDefaultContext(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	name := tools.StringArg(args, "context")

	logger := logging.WithTool(sc.Logger(), "set_default_context")

	if name == "" {
		err := k8s.NewValidationError("context is required")
		logger.Error("invalid arguments", logging.Err(err))
		return tools.NewErrorResult(err, nil), nil
	}

	client := sc.K8sClient()
	previous := client.CurrentContext()

	ok := client.SetDefaultContext(ctx, name)
	if ok {
		logger.Info("default context set", logging.KubeContext(name))
	} else {
		logger.Warn("failed to set default context", logging.KubeContext(name))
	}

	return tools.NewJSONResult(selectContextResponse{
		Success:         ok,
		Context:         name,
		PreviousContext: strOrNil(previous),
	}), nil
}

func handleSwitchContext(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	name := tools.StringArg(args, "context")

	logger := logging.WithTool(sc.Logger(), "switch_context")

	if name == "" {
		err := k8s.NewValidationError("context is required")
		logger.Error("invalid arguments", logging.Err(err))
		return tools.NewErrorResult(err, nil), nil
	}

	client := sc.K8sClient()
	previous := client.CurrentContext()

	ok := client.SwitchContext(ctx, name)
	if ok {
		logger.Info("switched context", logging.KubeContext(name))
	} else {
		logger.Warn("failed to switch context", logging.KubeContext(name))
	}

	return tools.NewJSONResult(selectContextResponse{
		Success:         ok,
		Context:         name,
		PreviousContext: strOrNil(previous),
	}), nil
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
