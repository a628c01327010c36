// Package extract contains the pure transformation functions that map raw
// Kubernetes API objects into the flat, stable records returned by the MCP
// tools. Extractors perform no I/O and are total: absent optional fields
// become documented defaults (empty map, 0, "" or null) instead of errors.
package extract

import (
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// timestamp renders a metav1.Time as RFC3339, or nil when unset.
func timestamp(t *metav1.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// strOrNil returns a pointer to s, or nil when s is empty. Used for fields
// the output contract renders as null when absent.
func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// orEmpty returns m, or an initialized empty map when m is nil, so the JSON
// output is {} rather than null.
func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
