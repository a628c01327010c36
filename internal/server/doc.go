// Package server provides the ServerContext abstraction used to wire the
// MCP server together.
//
// ServerContext carries the Kubernetes client, logger and configuration
// behind one dependency-injection point, configured with functional options:
//
//	sc, err := server.NewServerContext(ctx,
//	    server.WithK8sClient(client),
//	    server.WithLogger(logger),
//	    server.WithConfig(cfg),
//	)
//
// The package also provides the liveness and readiness handlers served by
// the HTTP transports.
package server
