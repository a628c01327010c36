package k8s

import (
	"fmt"
	"log/slog"
	"os/exec"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

// ClientConfig holds configuration for the cluster client.
type ClientConfig struct {
	// KubeconfigPath overrides the default kubeconfig location. When empty,
	// clientcmd's default loading rules apply (KUBECONFIG, ~/.kube/config).
	KubeconfigPath string

	// Context selects the kubeconfig context used when a call does not name
	// one. Empty means the store's current context.
	Context string

	// Performance settings applied to every rest.Config. Zero values fall
	// back to the package defaults.
	QPSLimit   float32
	BurstLimit int

	// Logger used for operation and failure logging. Required.
	Logger *slog.Logger
}

// clusterClient implements Client. It deliberately holds no clientset or
// kubeconfig cache: the kubeconfig is an externally-owned file that may be
// edited concurrently, so it is re-read on every connection and listing.
type clusterClient struct {
	config *ClientConfig
	logger *slog.Logger

	// mu guards config.Context: SwitchContext mutates it while concurrent
	// tool calls read it on the connect path.
	mu sync.RWMutex

	// Seams for tests. connect builds a clientset for a context name;
	// runKubectl invokes the external kubectl binary.
	connect    func(contextName string) (kubernetes.Interface, error)
	runKubectl func(args ...string) error
}

// NewClient creates a cluster client from the given configuration.
func NewClient(config *ClientConfig) (Client, error) {
	if config == nil {
		return nil, fmt.Errorf("client configuration is required")
	}
	if config.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if config.QPSLimit == 0 {
		config.QPSLimit = DefaultQPSLimit
	}
	if config.BurstLimit == 0 {
		config.BurstLimit = DefaultBurstLimit
	}

	c := &clusterClient{
		config: config,
		logger: config.Logger,
	}
	c.connect = c.buildClientset
	c.runKubectl = func(args ...string) error {
		out, err := exec.Command(kubectlCommand, args...).CombinedOutput()
		if err != nil {
			return fmt.Errorf("%s %v: %w: %s", kubectlCommand, args, err, out)
		}
		return nil
	}
	return c, nil
}

// restConfig resolves a connection configuration, trying in-cluster service
// account credentials first and falling back to the kubeconfig with the named
// (or current) context. Only when both paths fail does it return a
// ConnectivityError carrying both causes.
func (c *clusterClient) restConfig(contextName string) (*rest.Config, error) {
	inClusterCfg, inClusterErr := rest.InClusterConfig()
	if inClusterErr == nil {
		c.logger.Debug("using in-cluster credentials")
		c.applySettings(inClusterCfg)
		return inClusterCfg, nil
	}

	if contextName == "" {
		contextName = c.defaultContext()
	}

	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if c.config.KubeconfigPath != "" {
		loadingRules.ExplicitPath = c.config.KubeconfigPath
	}

	cfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules,
		&clientcmd.ConfigOverrides{CurrentContext: contextName},
	).ClientConfig()
	if err != nil {
		return nil, &ConnectivityError{InClusterErr: inClusterErr, KubeconfigErr: err}
	}

	c.logger.Debug("using kubeconfig credentials", "context", contextName)
	c.applySettings(cfg)
	return cfg, nil
}

// defaultContext returns the context used when a call names none.
func (c *clusterClient) defaultContext() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.Context
}

func (c *clusterClient) setDefaultContextName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config.Context = name
}

func (c *clusterClient) applySettings(cfg *rest.Config) {
	cfg.QPS = c.config.QPSLimit
	cfg.Burst = c.config.BurstLimit
	cfg.Timeout = DefaultTimeout
}

// buildClientset is the default connect seam: resolve a rest.Config and turn
// it into a typed clientset.
func (c *clusterClient) buildClientset(contextName string) (kubernetes.Interface, error) {
	cfg, err := c.restConfig(contextName)
	if err != nil {
		return nil, err
	}
	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset for context %q: %w", contextName, err)
	}
	return clientset, nil
}

// rawConfig re-reads the kubeconfig from disk. Each call sees the current
// bytes of the store, including edits made by other processes.
func (c *clusterClient) rawConfig() (*clientcmdapi.Config, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if c.config.KubeconfigPath != "" {
		loadingRules.ExplicitPath = c.config.KubeconfigPath
	}

	raw, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules,
		&clientcmd.ConfigOverrides{},
	).RawConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read kubeconfig: %w", err)
	}
	return &raw, nil
}
