// Package cmd provides the command-line interface for mcp-kubernetes.
//
// The CLI is Cobra-based with these subcommands:
//   - serve: starts the MCP server (default when no subcommand is provided)
//   - version: displays the application version
//
// The serve command supports three transports:
//   - stdio: standard input/output (default), for command-line MCP clients
//   - sse: Server-Sent Events over HTTP
//   - streamable-http: streamable HTTP transport with health probes and
//     Prometheus metrics
//
// Examples:
//
//	mcp-kubernetes                                   # serve over stdio
//	mcp-kubernetes serve --transport sse --http-addr :8080
//	mcp-kubernetes serve --transport streamable-http --http-addr :9000
//	mcp-kubernetes serve --kubeconfig ~/.kube/config --context prod
package cmd
