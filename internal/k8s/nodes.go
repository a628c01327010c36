package k8s

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ListNodes lists all cluster nodes.
func (c *clusterClient) ListNodes(ctx context.Context, kubeContext string) ([]corev1.Node, error) {
	clientset, err := c.connect(kubeContext)
	if err != nil {
		return nil, err
	}

	nodes, err := clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classifyAPIError(err, "nodes", "", "")
	}

	c.logger.Debug("listed nodes", "count", len(nodes.Items))
	return nodes.Items, nil
}
