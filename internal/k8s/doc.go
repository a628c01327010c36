// Package k8s provides the cluster client used by the MCP tools.
//
// The Client interface is split into focused concerns:
//
//   - ContextManager: kubeconfig context enumeration, switching and
//     persistence (via kubectl as a subprocess), plus connectivity probes
//   - NodeReader: node listings
//   - PodManager: pod listings, single-pod reads, related events and logs
//   - DeploymentManager: deployment listings, reads, scale and rollout
//
// Connection loading tries in-cluster service account credentials first and
// falls back to the kubeconfig; the kubeconfig is re-read on every call so
// concurrent external edits are always observed. Every rest.Config carries a
// fixed request timeout so no tool call can block indefinitely.
//
// Cluster API failures are classified into a small taxonomy (ValidationError,
// NotFoundError, PermissionError, ConnectivityError, APIError) that the tool
// layer renders into JSON error envelopes.
package k8s
