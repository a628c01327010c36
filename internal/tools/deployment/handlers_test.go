package deployment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	mcp "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/clustereye/mcp-kubernetes/internal/server"
	"github.com/clustereye/mcp-kubernetes/internal/tools/tooltest"
)

func newTestContext(t *testing.T, client *tooltest.FakeClient) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background(),
		server.WithK8sClient(client),
		server.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	return sc
}

func decodeResult(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent in result, got %T", result.Content[0])

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(textContent.Text), &payload))
	return payload
}

func requestWith(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func int32Ptr(v int32) *int32 { return &v }

func testDeployment(name, namespace string, replicas int32) appsv1.Deployment {
	return appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: int32Ptr(replicas),
		},
	}
}

func TestHandleGetDeployments(t *testing.T) {
	client := &tooltest.FakeClient{
		ListDeploymentsFn: func(ctx context.Context, kubeContext, namespace string) ([]appsv1.Deployment, error) {
			assert.Equal(t, "prod-cluster", kubeContext)
			assert.Equal(t, "", namespace)
			return []appsv1.Deployment{
				testDeployment("api", "default", 3),
				testDeployment("worker", "jobs", 1),
			}, nil
		},
	}
	sc := newTestContext(t, client)

	result, err := handleGetDeployments(context.Background(), requestWith(map[string]any{
		"context": "prod-cluster",
	}), sc)
	require.NoError(t, err)

	payload := decodeResult(t, result)
	assert.Equal(t, float64(2), payload["total_deployments"])
	assert.Equal(t, "all", payload["namespace"])

	deployments, ok := payload["deployments"].([]any)
	require.True(t, ok)
	require.Len(t, deployments, 2)
	first := deployments[0].(map[string]any)
	assert.Equal(t, "api", first["name"])
	assert.Equal(t, "default", first["namespace"])
	replicas := first["replicas"].(map[string]any)
	assert.Equal(t, float64(3), replicas["desired"])
}

func TestHandleGetDeploymentsError(t *testing.T) {
	client := &tooltest.FakeClient{
		ListDeploymentsFn: func(ctx context.Context, kubeContext, namespace string) ([]appsv1.Deployment, error) {
			return nil, errors.New("connection refused")
		},
	}
	sc := newTestContext(t, client)

	result, err := handleGetDeployments(context.Background(), requestWith(map[string]any{
		"namespace": "default",
	}), sc)
	require.NoError(t, err)

	payload := decodeResult(t, result)
	assert.Contains(t, payload["error"], "connection refused")
	assert.Equal(t, "default", payload["namespace"])
}

func TestHandleScaleDeployment(t *testing.T) {
	var scaledTo int32
	client := &tooltest.FakeClient{
		GetDeploymentFn: func(ctx context.Context, kubeContext, namespace, name string) (*appsv1.Deployment, error) {
			d := testDeployment(name, namespace, 2)
			return &d, nil
		},
		ScaleDeploymentFn: func(ctx context.Context, kubeContext, namespace, name string, replicas int32) error {
			scaledTo = replicas
			return nil
		},
	}
	sc := newTestContext(t, client)

	result, err := handleScaleDeployment(context.Background(), requestWith(map[string]any{
		"namespace":       "default",
		"deployment_name": "api",
		"replicas":        float64(5),
	}), sc)
	require.NoError(t, err)

	payload := decodeResult(t, result)
	assert.Equal(t, "Deployment 'api' scaled successfully", payload["message"])
	assert.Equal(t, "default", payload["namespace"])
	assert.Equal(t, "api", payload["deployment_name"])
	assert.Equal(t, float64(2), payload["previous_replicas"])
	assert.Equal(t, float64(5), payload["new_replicas"])
	assert.NotEmpty(t, payload["timestamp"])
	assert.Equal(t, int32(5), scaledTo)
	assert.Equal(t, []string{"GetDeployment", "ScaleDeployment"}, client.Calls)
}

func TestHandleScaleDeploymentRejectsNegativeReplicas(t *testing.T) {
	client := &tooltest.FakeClient{}
	sc := newTestContext(t, client)

	result, err := handleScaleDeployment(context.Background(), requestWith(map[string]any{
		"namespace":       "default",
		"deployment_name": "api",
		"replicas":        float64(-1),
	}), sc)
	require.NoError(t, err)

	payload := decodeResult(t, result)
	assert.Contains(t, payload["error"], "greater than or equal to 0")
	assert.Empty(t, client.Calls, "no cluster call expected for invalid arguments")
}

func TestHandleScaleDeploymentMissingArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{
			name: "missing namespace",
			args: map[string]any{"deployment_name": "api", "replicas": float64(1)},
			want: "namespace and deployment_name are required",
		},
		{
			name: "missing replicas",
			args: map[string]any{"namespace": "default", "deployment_name": "api"},
			want: "replicas is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &tooltest.FakeClient{}
			sc := newTestContext(t, client)

			result, err := handleScaleDeployment(context.Background(), requestWith(tt.args), sc)
			require.NoError(t, err)

			payload := decodeResult(t, result)
			assert.Contains(t, payload["error"], tt.want)
			assert.Empty(t, client.Calls)
		})
	}
}

func TestHandleScaleDeploymentReadFailure(t *testing.T) {
	client := &tooltest.FakeClient{
		GetDeploymentFn: func(ctx context.Context, kubeContext, namespace, name string) (*appsv1.Deployment, error) {
			return nil, errors.New("deployments.apps \"api\" not found")
		},
	}
	sc := newTestContext(t, client)

	result, err := handleScaleDeployment(context.Background(), requestWith(map[string]any{
		"namespace":       "default",
		"deployment_name": "api",
		"replicas":        float64(3),
	}), sc)
	require.NoError(t, err)

	payload := decodeResult(t, result)
	assert.Contains(t, payload["error"], "not found")
	assert.Equal(t, "default", payload["namespace"])
	assert.Equal(t, "api", payload["deployment_name"])
	assert.Equal(t, []string{"GetDeployment"}, client.Calls, "scale must not run after a failed read")
}

func TestHandleRolloutDeployment(t *testing.T) {
	client := &tooltest.FakeClient{
		GetDeploymentFn: func(ctx context.Context, kubeContext, namespace, name string) (*appsv1.Deployment, error) {
			d := testDeployment(name, namespace, 4)
			return &d, nil
		},
		RolloutDeploymentFn: func(ctx context.Context, kubeContext, namespace, name string) (string, error) {
			return "2026-08-31T10:00:00Z", nil
		},
	}
	sc := newTestContext(t, client)

	result, err := handleRolloutDeployment(context.Background(), requestWith(map[string]any{
		"namespace":       "default",
		"deployment_name": "api",
	}), sc)
	require.NoError(t, err)

	payload := decodeResult(t, result)
	assert.Equal(t, "Rollout completed successfully for deployment 'api'", payload["message"])
	assert.Equal(t, "2026-08-31T10:00:00Z", payload["restarted_at"])
	assert.Equal(t, float64(4), payload["current_replicas"])
}

func TestHandleRolloutDeploymentMissingArgs(t *testing.T) {
	client := &tooltest.FakeClient{}
	sc := newTestContext(t, client)

	result, err := handleRolloutDeployment(context.Background(), requestWith(map[string]any{
		"namespace": "default",
	}), sc)
	require.NoError(t, err)

	payload := decodeResult(t, result)
	assert.Contains(t, payload["error"], "required")
	assert.Empty(t, client.Calls)
}
