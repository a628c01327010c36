// Package middleware provides HTTP middleware for the MCP Kubernetes server.
// The middleware covers request metrics and other cross-cutting concerns of
// the HTTP transports.
package middleware
