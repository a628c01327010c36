package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/clustereye/mcp-kubernetes/internal/k8s"
	"github.com/clustereye/mcp-kubernetes/internal/logging"
	"github.com/clustereye/mcp-kubernetes/internal/server"
	"github.com/clustereye/mcp-kubernetes/internal/tools/deployment"
	"github.com/clustereye/mcp-kubernetes/internal/tools/kubecontext"
	"github.com/clustereye/mcp-kubernetes/internal/tools/node"
	"github.com/clustereye/mcp-kubernetes/internal/tools/pod"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

// envServerName overrides the advertised MCP server name.
const envServerName = "MCP_SERVER_NAME"

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var (
		kubeconfigPath string
		kubeContext    string
		qpsLimit       float32
		burstLimit     int

		transport       string
		httpAddr        string
		sseEndpoint     string
		messageEndpoint string
		httpEndpoint    string

		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP Kubernetes server",
		Long: `Start the MCP Kubernetes server and listen for MCP protocol messages.

The server exposes tools for inspecting deployments, pods and nodes, reading
pod logs, scaling and restarting deployments, and managing kubeconfig
contexts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(serveConfig{
				KubeconfigPath:  kubeconfigPath,
				KubeContext:     kubeContext,
				QPSLimit:        qpsLimit,
				BurstLimit:      burstLimit,
				Transport:       transport,
				HTTPAddr:        httpAddr,
				SSEEndpoint:     sseEndpoint,
				MessageEndpoint: messageEndpoint,
				HTTPEndpoint:    httpEndpoint,
				LogLevel:        logLevel,
				LogFormat:       logFormat,
			})
		},
	}

	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path to the kubeconfig file (default: standard loading rules)")
	cmd.Flags().StringVar(&kubeContext, "context", "", "Kubeconfig context used when a tool call names none")
	cmd.Flags().Float32Var(&qpsLimit, "qps-limit", k8s.DefaultQPSLimit, "Kubernetes API client QPS limit")
	cmd.Flags().IntVar(&burstLimit, "burst-limit", k8s.DefaultBurstLimit, "Kubernetes API client burst limit")

	cmd.Flags().StringVar(&transport, "transport", transportStdio, "Transport type: stdio, sse or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP listen address for sse and streamable-http transports")
	cmd.Flags().StringVar(&sseEndpoint, "sse-endpoint", "/sse", "SSE endpoint path (sse transport)")
	cmd.Flags().StringVar(&messageEndpoint, "message-endpoint", "/message", "Message endpoint path (sse transport)")
	cmd.Flags().StringVar(&httpEndpoint, "http-endpoint", "/mcp", "MCP endpoint path (streamable-http transport)")

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	return cmd
}

// serveConfig carries the resolved serve command flags.
type serveConfig struct {
	KubeconfigPath string
	KubeContext    string
	QPSLimit       float32
	BurstLimit     int

	Transport       string
	HTTPAddr        string
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	LogLevel  string
	LogFormat string
}

func runServe(config serveConfig) error {
	// Logs go to stderr: in stdio mode stdout carries the protocol stream.
	logger := logging.New(config.LogLevel, config.LogFormat, os.Stderr)

	serverName := "mcp-kubernetes"
	if name := os.Getenv(envServerName); name != "" {
		serverName = name
	}

	client, err := k8s.NewClient(&k8s.ClientConfig{
		KubeconfigPath: config.KubeconfigPath,
		Context:        config.KubeContext,
		QPSLimit:       config.QPSLimit,
		BurstLimit:     config.BurstLimit,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverConfig := server.NewDefaultConfig()
	serverConfig.ServerName = serverName
	serverConfig.Version = rootCmd.Version
	serverConfig.KubeConfigPath = config.KubeconfigPath
	serverConfig.DefaultContext = config.KubeContext
	serverConfig.LogLevel = config.LogLevel
	serverConfig.LogFormat = config.LogFormat

	serverContext, err := server.NewServerContext(shutdownCtx,
		server.WithK8sClient(client),
		server.WithLogger(logger),
		server.WithConfig(serverConfig),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil && config.Transport != transportStdio {
			logger.Error("error during server context shutdown", logging.Err(err))
		}
	}()

	// Startup connectivity check. A dead cluster is reported but does not
	// prevent startup: context tools still work and the cluster may come
	// back.
	if client.TestConnection(shutdownCtx, config.KubeContext) {
		logger.Info("connected to cluster", logging.KubeContext(config.KubeContext))
	} else {
		logger.Warn("cluster unreachable at startup", logging.KubeContext(config.KubeContext))
	}

	mcpSrv := mcpserver.NewMCPServer(serverName, rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
	)

	if err := deployment.RegisterDeploymentTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register deployment tools: %w", err)
	}
	if err := pod.RegisterPodTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register pod tools: %w", err)
	}
	if err := node.RegisterNodeTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register node tools: %w", err)
	}
	if err := kubecontext.RegisterContextTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register context tools: %w", err)
	}

	switch config.Transport {
	case transportStdio:
		// No startup banner: stdout is the protocol stream.
		return runStdioServer(mcpSrv)
	case transportSSE:
		logger.Info("starting MCP server", logging.KeyTransport, config.Transport, "addr", config.HTTPAddr)
		return runSSEServer(shutdownCtx, mcpSrv, logger, config.HTTPAddr, config.SSEEndpoint, config.MessageEndpoint)
	case transportStreamableHTTP:
		logger.Info("starting MCP server", logging.KeyTransport, config.Transport, "addr", config.HTTPAddr)
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, serverContext, logger, config.HTTPAddr, config.HTTPEndpoint)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: %s, %s, %s)",
			config.Transport, transportStdio, transportSSE, transportStreamableHTTP)
	}
}
