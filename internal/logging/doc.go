// Package logging provides structured logging utilities for the
// mcp-kubernetes application.
//
// It centralizes attribute naming and logger construction so log entries
// stay consistent across the codebase, and sanitizes API server addresses
// before they reach log output.
//
// Create the root logger once and attach standard attributes per operation:
//
//	logger := logging.New("info", "text", os.Stderr)
//	toolLog := logging.WithTool(logger, "get_pods")
//	toolLog.Info("listing pods", logging.Namespace("default"))
package logging
