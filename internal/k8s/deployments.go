package k8s

import (
	"context"
	"fmt"
	"strings"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
)

// DeploymentManager implementation.

// ListDeployments lists deployments in the namespace; an empty (or blank)
// namespace lists across all namespaces.
func (c *clusterClient) ListDeployments(ctx context.Context, kubeContext, namespace string) ([]appsv1.Deployment, error) {
	clientset, err := c.connect(kubeContext)
	if err != nil {
		return nil, err
	}

	namespace = strings.TrimSpace(namespace)
	deployments, err := clientset.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classifyAPIError(err, "deployments", namespace, "")
	}

	c.logger.Debug("listed deployments", "namespace", namespace, "count", len(deployments.Items))
	return deployments.Items, nil
}

// GetDeployment reads a single deployment.
func (c *clusterClient) GetDeployment(ctx context.Context, kubeContext, namespace, name string) (*appsv1.Deployment, error) {
	clientset, err := c.connect(kubeContext)
	if err != nil {
		return nil, err
	}

	deployment, err := clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, classifyAPIError(err, "deployment", namespace, name)
	}
	return deployment, nil
}

// ScaleDeployment patches only the replica count of the deployment.
func (c *clusterClient) ScaleDeployment(ctx context.Context, kubeContext, namespace, name string, replicas int32) error {
	clientset, err := c.connect(kubeContext)
	if err != nil {
		return err
	}

	patch := fmt.Sprintf(`{"spec":{"replicas":%d}}`, replicas)
	_, err = clientset.AppsV1().Deployments(namespace).Patch(
		ctx, name, types.MergePatchType, []byte(patch), metav1.PatchOptions{})
	if err != nil {
		return classifyAPIError(err, "deployment", namespace, name)
	}

	c.logger.Info("deployment scaled", "namespace", namespace, "deployment", name, "replicas", replicas)
	return nil
}

// RolloutDeployment forces a rolling restart by patching the pod-template
// restartedAt annotation with the current UTC time. The written timestamp is
// returned so callers can echo it.
func (c *clusterClient) RolloutDeployment(ctx context.Context, kubeContext, namespace, name string) (string, error) {
	clientset, err := c.connect(kubeContext)
	if err != nil {
		return "", err
	}

	restartedAt := time.Now().UTC().Format(time.RFC3339)
	patch := fmt.Sprintf(
		`{"spec":{"template":{"metadata":{"annotations":{%q:%q}}}}}`,
		RestartedAtAnnotation, restartedAt)

	_, err = clientset.AppsV1().Deployments(namespace).Patch(
		ctx, name, types.StrategicMergePatchType, []byte(patch), metav1.PatchOptions{})
	if err != nil {
		return "", classifyAPIError(err, "deployment", namespace, name)
	}

	c.logger.Info("deployment rollout triggered",
		"namespace", namespace, "deployment", name, "restarted_at", restartedAt)
	return restartedAt, nil
}
