package deployment

import (
	"context"
	"fmt"
	"time"

	mcp "github.com/mark3labs/mcp-go/mcp"

	"github.com/clustereye/mcp-kubernetes/internal/extract"
	"github.com/clustereye/mcp-kubernetes/internal/k8s"
	"github.com/clustereye/mcp-kubernetes/internal/logging"
	"github.com/clustereye/mcp-kubernetes/internal/server"
	"github.com/clustereye/mcp-kubernetes/internal/tools"
)

// deploymentListResponse is the success envelope of get_deployments.
type deploymentListResponse struct {
	TotalDeployments int                        `json:"total_deployments"`
	Namespace        string                     `json:"namespace"`
	Deployments      []extract.DeploymentRecord `json:"deployments"`
}

// scaleResponse is the success envelope of scale_deployment.
type scaleResponse struct {
	Message          string `json:"message"`
	Namespace        string `json:"namespace"`
	DeploymentName   string `json:"deployment_name"`
	PreviousReplicas int32  `json:"previous_replicas"`
	NewReplicas      int32  `json:"new_replicas"`
	Timestamp        string `json:"timestamp"`
}

// rolloutResponse is the success envelope of rollout_deployment.
type rolloutResponse struct {
	Message         string `json:"message"`
	Namespace       string `json:"namespace"`
	DeploymentName  string `json:"deployment_name"`
	RestartedAt     string `json:"restarted_at"`
	CurrentReplicas int32  `json:"current_replicas"`
}

// readReplicas reads the deployment and reports its desired replica count.
// Both mutating handlers use it so a missing deployment fails on the read,
// distinctly from a failed patch.
func readReplicas(ctx context.Context, client k8s.Client, namespace, name string) (int32, error) {
	current, err := client.GetDeployment(ctx, "", namespace, name)
	if err != nil {
		return 0, err
	}
	if current.Spec.Replicas == nil {
		return 0, nil
	}
	return *current.Spec.Replicas, nil
}

func handleGetDeployments(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	namespace := tools.StringArg(args, "namespace")
	kubeContext := tools.StringArg(args, "context")

	logger := logging.WithTool(sc.Logger(), "get_deployments")
	logger.Info("listing deployments", logging.Namespace(namespace), logging.KubeContext(kubeContext))

	deployments, err := sc.K8sClient().ListDeployments(ctx, kubeContext, namespace)
	if err != nil {
		logger.Error("failed to list deployments", logging.Err(err))
		return tools.NewErrorResult(err, map[string]any{"namespace": namespace}), nil
	}

	records := make([]extract.DeploymentRecord, 0, len(deployments))
	for i := range deployments {
		records = append(records, extract.DeploymentFrom(&deployments[i]))
	}

	echo := namespace
	if echo == "" {
		echo = "all"
	}

	return tools.NewJSONResult(deploymentListResponse{
		TotalDeployments: len(records),
		Namespace:        echo,
		Deployments:      records,
	}), nil
}

func handleScaleDeployment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	namespace := tools.StringArg(args, "namespace")
	name := tools.StringArg(args, "deployment_name")

	logger := logging.WithTool(sc.Logger(), "scale_deployment")

	if namespace == "" || name == "" {
		err := k8s.NewValidationError("namespace and deployment_name are required")
		logger.Error("invalid arguments", logging.Err(err))
		return tools.NewErrorResult(err, nil), nil
	}

	replicasRaw, ok := tools.NumberArg(args, "replicas")
	if !ok {
		err := k8s.NewValidationError("replicas is required")
		logger.Error("invalid arguments", logging.Err(err))
		return tools.NewErrorResult(err, nil), nil
	}
	if replicasRaw < 0 {
		err := k8s.NewValidationError("replicas must be greater than or equal to 0")
		logger.Error("invalid arguments", logging.Err(err))
		return tools.NewErrorResult(err, nil), nil
	}
	replicas := int32(replicasRaw)

	client := sc.K8sClient()

	// Read-before-write so the response reports the replica delta.
	previous, err := readReplicas(ctx, client, namespace, name)
	if err != nil {
		logger.Error("failed to read deployment", logging.Deployment(name), logging.Namespace(namespace), logging.Err(err))
		return tools.NewErrorResult(err, map[string]any{
			"namespace":       namespace,
			"deployment_name": name,
		}), nil
	}

	logger.Info("scaling deployment",
		logging.Deployment(name), logging.Namespace(namespace),
		"from", previous, "to", replicas)

	if err := client.ScaleDeployment(ctx, "", namespace, name, replicas); err != nil {
		logger.Error("failed to scale deployment", logging.Deployment(name), logging.Err(err))
		return tools.NewErrorResult(err, map[string]any{
			"namespace":       namespace,
			"deployment_name": name,
		}), nil
	}

	return tools.NewJSONResult(scaleResponse{
		Message:          fmt.Sprintf("Deployment '%s' scaled successfully", name),
		Namespace:        namespace,
		DeploymentName:   name,
		PreviousReplicas: previous,
		NewReplicas:      replicas,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	}), nil
}

func handleRolloutDeployment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	namespace := tools.StringArg(args, "namespace")
	name := tools.StringArg(args, "deployment_name")

	logger := logging.WithTool(sc.Logger(), "rollout_deployment")

	if namespace == "" || name == "" {
		err := k8s.NewValidationError("namespace and deployment_name are required")
		logger.Error("invalid arguments", logging.Err(err))
		return tools.NewErrorResult(err, nil), nil
	}

	client := sc.K8sClient()

	replicas, err := readReplicas(ctx, client, namespace, name)
	if err != nil {
		logger.Error("failed to read deployment", logging.Deployment(name), logging.Namespace(namespace), logging.Err(err))
		return tools.NewErrorResult(err, map[string]any{
			"namespace":       namespace,
			"deployment_name": name,
		}), nil
	}

	logger.Info("restarting deployment", logging.Deployment(name), logging.Namespace(namespace))

	restartedAt, err := client.RolloutDeployment(ctx, "", namespace, name)
	if err != nil {
		logger.Error("failed to restart deployment", logging.Deployment(name), logging.Err(err))
		return tools.NewErrorResult(err, map[string]any{
			"namespace":       namespace,
			"deployment_name": name,
		}), nil
	}

	return tools.NewJSONResult(rolloutResponse{
		Message:         fmt.Sprintf("Rollout completed successfully for deployment '%s'", name),
		Namespace:       namespace,
		DeploymentName:  name,
		RestartedAt:     restartedAt,
		CurrentReplicas: replicas,
	}), nil
}
