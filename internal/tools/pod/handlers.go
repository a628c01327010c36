package pod

import (
	"context"
	"strings"
	"time"

	mcp "github.com/mark3labs/mcp-go/mcp"

	"github.com/clustereye/mcp-kubernetes/internal/extract"
	"github.com/clustereye/mcp-kubernetes/internal/k8s"
	"github.com/clustereye/mcp-kubernetes/internal/logging"
	"github.com/clustereye/mcp-kubernetes/internal/server"
	"github.com/clustereye/mcp-kubernetes/internal/tools"
)

// podListResponse is the success envelope of get_pods. Statistics is typed
// any so an empty cluster serializes as an empty object rather than zeroed
// counters.
type podListResponse struct {
	TotalPods  int                  `json:"total_pods"`
	Namespace  string               `json:"namespace"`
	Statistics any                  `json:"statistics"`
	Pods       []extract.PodSummary `json:"pods"`
}

// logsResponse is the success envelope of get_logs.
type logsResponse struct {
	PodName    string  `json:"pod_name"`
	Namespace  string  `json:"namespace"`
	Container  *string `json:"container"`
	LinesCount int     `json:"lines_count"`
	Logs       string  `json:"logs"`
}

func handleGetPods(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	namespace := tools.StringArg(args, "namespace")
	kubeContext := tools.StringArg(args, "context")

	logger := logging.WithTool(sc.Logger(), "get_pods")
	logger.Info("listing pods", logging.Namespace(namespace), logging.KubeContext(kubeContext))

	pods, err := sc.K8sClient().ListPods(ctx, kubeContext, namespace)
	if err != nil {
		logger.Error("failed to list pods", logging.Err(err))
		return tools.NewErrorResult(err, map[string]any{"namespace": namespace}), nil
	}

	now := time.Now().UTC()
	summaries := make([]extract.PodSummary, 0, len(pods))
	for i := range pods {
		summaries = append(summaries, extract.PodSummaryFrom(&pods[i], now))
	}

	var statistics any = struct{}{}
	if len(summaries) > 0 {
		statistics = extract.SummarizePods(summaries)
	}

	echo := namespace
	if echo == "" {
		echo = "all"
	}

	return tools.NewJSONResult(podListResponse{
		TotalPods:  len(summaries),
		Namespace:  echo,
		Statistics: statistics,
		Pods:       summaries,
	}), nil
}

func handleGetPodDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	podName := tools.StringArg(args, "pod_name")
	namespace := tools.StringArg(args, "namespace")
	kubeContext := tools.StringArg(args, "context")
	environment := tools.StringArg(args, "environment")

	logger := logging.WithTool(sc.Logger(), "get_pod_details")

	if podName == "" || namespace == "" {
		err := k8s.NewValidationError("pod_name and namespace are required")
		logger.Error("invalid arguments", logging.Err(err))
		return tools.NewErrorResult(err, nil), nil
	}

	logger.Info("reading pod details",
		logging.Pod(podName), logging.Namespace(namespace), logging.KubeContext(kubeContext))

	client := sc.K8sClient()

	pod, err := client.GetPod(ctx, kubeContext, namespace, podName)
	if err != nil {
		logger.Error("failed to read pod", logging.Pod(podName), logging.Err(err))
		return tools.NewErrorResult(err, map[string]any{
			"pod_name":  podName,
			"namespace": namespace,
		}), nil
	}

	// Events are best effort: a pod without readable events still has a
	// useful detail view.
	events, err := client.ListPodEvents(ctx, kubeContext, namespace, podName)
	if err != nil {
		logger.Warn("failed to list pod events", logging.Pod(podName), logging.Err(err))
		events = nil
	}

	return tools.NewJSONResult(extract.PodDetailFrom(pod, events, environment)), nil
}

func handleGetLogs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	podName := tools.StringArg(args, "pod_name")
	namespace := tools.StringArg(args, "namespace")
	kubeContext := tools.StringArg(args, "context")
	container := tools.StringArg(args, "container")
	previous := tools.BoolArg(args, "previous")

	logger := logging.WithTool(sc.Logger(), "get_logs")

	if podName == "" || namespace == "" {
		err := k8s.NewValidationError("pod_name and namespace are required")
		logger.Error("invalid arguments", logging.Err(err))
		return tools.NewErrorResult(err, nil), nil
	}

	tailLines := int64(k8s.DefaultTailLines)
	if raw, ok := tools.NumberArg(args, "tail_lines"); ok {
		tailLines = int64(raw)
	}

	logger.Info("reading pod logs",
		logging.Pod(podName), logging.Namespace(namespace), logging.KubeContext(kubeContext),
		"container", container, "previous", previous, "tail_lines", tailLines)

	logs, err := sc.K8sClient().GetLogs(ctx, kubeContext, namespace, podName, k8s.LogOptions{
		Container: container,
		Previous:  previous,
		TailLines: tailLines,
	})
	if err != nil {
		logger.Error("failed to read pod logs", logging.Pod(podName), logging.Err(err))
		return tools.NewErrorResult(err, map[string]any{
			"pod_name":  podName,
			"namespace": namespace,
		}), nil
	}

	linesCount := 0
	if logs != "" {
		linesCount = len(strings.Split(strings.TrimRight(logs, "\n"), "\n"))
	}

	var containerEcho *string
	if container != "" {
		containerEcho = &container
	}

	return tools.NewJSONResult(logsResponse{
		PodName:    podName,
		Namespace:  namespace,
		Container:  containerEcho,
		LinesCount: linesCount,
		Logs:       logs,
	}), nil
}
