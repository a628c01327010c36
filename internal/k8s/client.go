package k8s

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
)

// Client defines the Kubernetes operations needed by the MCP tools. Every
// method accepts the kubeconfig context to use; an empty context means the
// store's current context (or in-cluster credentials when available).
type Client interface {
	ContextManager
	NodeReader
	PodManager
	DeploymentManager
}

// ContextManager handles kubeconfig context operations. The boolean
// operations never return an error: failures are logged and reported as
// false, because callers only branch on the outcome.
type ContextManager interface {
	// ListContexts returns the context names from the kubeconfig, sorted.
	// An unreadable kubeconfig yields an empty slice, not an error.
	ListContexts() []string

	// CurrentContext returns the kubeconfig's active context name, or ""
	// when it cannot be determined.
	CurrentContext() string

	// SetDefaultContext persists name as the kubeconfig's active context via
	// an external kubectl invocation, then re-reads the store and verifies
	// the change took effect.
	SetDefaultContext(ctx context.Context, name string) bool

	// SwitchContext validates that name exists, reloads the connection under
	// it and confirms reachability with a bounded node listing.
	SwitchContext(ctx context.Context, name string) bool

	// TestConnection loads a connection for the named context and performs
	// one minimal read call.
	TestConnection(ctx context.Context, contextName string) bool
}

// NodeReader lists cluster nodes.
type NodeReader interface {
	ListNodes(ctx context.Context, kubeContext string) ([]corev1.Node, error)
}

// PodManager handles pod reads: listings, single-pod detail, related events
// and container logs.
type PodManager interface {
	// ListPods lists pods in the namespace; an empty namespace means all
	// namespaces.
	ListPods(ctx context.Context, kubeContext, namespace string) ([]corev1.Pod, error)

	// GetPod reads a single pod.
	GetPod(ctx context.Context, kubeContext, namespace, name string) (*corev1.Pod, error)

	// ListPodEvents lists the events whose involved object is the named pod.
	ListPodEvents(ctx context.Context, kubeContext, namespace, podName string) ([]corev1.Event, error)

	// GetLogs retrieves container logs as raw text.
	GetLogs(ctx context.Context, kubeContext, namespace, podName string, opts LogOptions) (string, error)
}

// DeploymentManager handles deployment reads and the two supported mutations.
type DeploymentManager interface {
	// ListDeployments lists deployments in the namespace; an empty namespace
	// means all namespaces.
	ListDeployments(ctx context.Context, kubeContext, namespace string) ([]appsv1.Deployment, error)

	// GetDeployment reads a single deployment. A missing deployment is
	// reported as a NotFoundError.
	GetDeployment(ctx context.Context, kubeContext, namespace, name string) (*appsv1.Deployment, error)

	// ScaleDeployment patches only the replica count of the deployment.
	ScaleDeployment(ctx context.Context, kubeContext, namespace, name string, replicas int32) error

	// RolloutDeployment patches the pod-template restartedAt annotation with
	// the current UTC time to force a rolling restart, returning the
	// timestamp that was written.
	RolloutDeployment(ctx context.Context, kubeContext, namespace, name string) (string, error)
}

// LogOptions configures log retrieval.
type LogOptions struct {
	// Container selects a container in multi-container pods. Optional.
	Container string

	// Previous requests logs from the previous container instance.
	Previous bool

	// TailLines limits output to the final N lines. Non-positive values are
	// coerced to DefaultTailLines by the client.
	TailLines int64
}
