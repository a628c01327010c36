package k8s

import (
	"context"
	"slices"
	"sort"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/clustereye/mcp-kubernetes/internal/logging"
)

// ContextManager implementation. The kubeconfig is the source of truth for
// every operation here; it is re-read on each call rather than cached so that
// concurrent edits by kubectl or other tools are observed.

// ListContexts returns the context names from the kubeconfig, sorted. An
// unreadable kubeconfig yields an empty slice.
func (c *clusterClient) ListContexts() []string {
	raw, err := c.rawConfig()
	if err != nil {
		c.logger.Error("failed to list kubeconfig contexts", "error", err)
		return []string{}
	}

	names := make([]string, 0, len(raw.Contexts))
	for name := range raw.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurrentContext returns the kubeconfig's active context name, or "" when the
// store is unreadable or has no active entry.
func (c *clusterClient) CurrentContext() string {
	raw, err := c.rawConfig()
	if err != nil {
		c.logger.Error("failed to read current context", "error", err)
		return ""
	}
	return raw.CurrentContext
}

// SetDefaultContext persists name as the active kubeconfig context. The store
// is mutated only through kubectl as a subprocess, then re-read to verify the
// change took effect. Any mismatch reports false rather than an error: the
// store is an external file this process does not fully control.
func (c *clusterClient) SetDefaultContext(ctx context.Context, name string) bool {
	if !slices.Contains(c.ListContexts(), name) {
		c.logger.Error("context does not exist in kubeconfig", "context", name)
		return false
	}

	if err := c.runKubectl("config", "use-context", name); err != nil {
		c.logger.Error("failed to set default context", "context", name, "error", err)
		return false
	}

	if current := c.CurrentContext(); current != name {
		c.logger.Error("context change did not take effect",
			"expected", name, "actual", current)
		return false
	}

	c.logger.Info("default context set", "context", name)
	return true
}

// SwitchContext validates that name exists, reloads the connection under it
// and confirms the cluster is reachable before reporting success.
func (c *clusterClient) SwitchContext(ctx context.Context, name string) bool {
	if !slices.Contains(c.ListContexts(), name) {
		c.logger.Error("context does not exist in kubeconfig", "context", name)
		return false
	}

	if !c.TestConnection(ctx, name) {
		c.logger.Error("failed to connect using context", "context", name)
		return false
	}

	c.setDefaultContextName(name)
	c.logger.Info("switched context", "context", name)
	return true
}

// TestConnection loads a connection for the named context and performs one
// bounded node listing. It never returns an error: failures are logged and
// reported as false.
func (c *clusterClient) TestConnection(ctx context.Context, contextName string) bool {
	clientset, err := c.connect(contextName)
	if err != nil {
		// Connection errors may embed the API server address.
		c.logger.Error("connection test failed", "context", contextName, logging.SanitizedErr(err))
		return false
	}

	nodes, err := clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{Limit: 1})
	if err != nil {
		c.logger.Error("connection test failed", "context", contextName, logging.SanitizedErr(err))
		return false
	}

	c.logger.Info("connection test succeeded",
		"context", contextName, "visible_nodes", len(nodes.Items))
	return true
}
