package k8s

import (
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PodManager implementation.

// ListPods lists pods in the namespace; an empty (or blank) namespace lists
// across all namespaces.
func (c *clusterClient) ListPods(ctx context.Context, kubeContext, namespace string) ([]corev1.Pod, error) {
	clientset, err := c.connect(kubeContext)
	if err != nil {
		return nil, err
	}

	namespace = strings.TrimSpace(namespace)
	pods, err := clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classifyAPIError(err, "pods", namespace, "")
	}

	c.logger.Debug("listed pods", "namespace", namespace, "count", len(pods.Items))
	return pods.Items, nil
}

// GetPod reads a single pod.
func (c *clusterClient) GetPod(ctx context.Context, kubeContext, namespace, name string) (*corev1.Pod, error) {
	clientset, err := c.connect(kubeContext)
	if err != nil {
		return nil, err
	}

	pod, err := clientset.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, classifyAPIError(err, "pod", namespace, name)
	}
	return pod, nil
}

// ListPodEvents lists the namespace events whose involved object is the named
// pod, using a server-side field selector.
func (c *clusterClient) ListPodEvents(ctx context.Context, kubeContext, namespace, podName string) ([]corev1.Event, error) {
	clientset, err := c.connect(kubeContext)
	if err != nil {
		return nil, err
	}

	events, err := clientset.CoreV1().Events(namespace).List(ctx, metav1.ListOptions{
		FieldSelector: fmt.Sprintf("involvedObject.name=%s", podName),
	})
	if err != nil {
		return nil, classifyAPIError(err, "events", namespace, podName)
	}
	return events.Items, nil
}

// GetLogs retrieves container logs as raw text. A non-positive TailLines is
// coerced to the default rather than rejected.
func (c *clusterClient) GetLogs(ctx context.Context, kubeContext, namespace, podName string, opts LogOptions) (string, error) {
	clientset, err := c.connect(kubeContext)
	if err != nil {
		return "", err
	}

	tailLines := opts.TailLines
	if tailLines <= 0 {
		c.logger.Warn("non-positive tail_lines, using default",
			"requested", opts.TailLines, "default", DefaultTailLines)
		tailLines = DefaultTailLines
	}

	logOpts := &corev1.PodLogOptions{
		Container: opts.Container,
		Previous:  opts.Previous,
		TailLines: &tailLines,
	}

	raw, err := clientset.CoreV1().Pods(namespace).GetLogs(podName, logOpts).Do(ctx).Raw()
	if err != nil {
		return "", classifyAPIError(err, "pod", namespace, podName)
	}
	return string(raw), nil
}
