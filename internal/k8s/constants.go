package k8s

import "time"

const (
	// DefaultTimeout bounds every cluster API call so an unreachable cluster
	// cannot block a tool invocation indefinitely.
	DefaultTimeout = 30 * time.Second

	// Default rate limits applied to every rest.Config.
	DefaultQPSLimit   = 20.0
	DefaultBurstLimit = 30

	// DefaultTailLines is used when a caller supplies a non-positive
	// tail_lines value for log retrieval.
	DefaultTailLines = 100

	// RestartedAtAnnotation is the pod-template annotation patched by
	// RolloutDeployment to force a rolling restart. It is the same annotation
	// kubectl writes for `rollout restart`.
	RestartedAtAnnotation = "kubectl.kubernetes.io/restartedAt"

	// kubectlCommand is the external mechanism used to persist the default
	// context. The kubeconfig bytes are never edited by this process.
	kubectlCommand = "kubectl"
)
