package logging

import (
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyTool        = "tool"
	KeyNamespace   = "namespace"
	KeyPod         = "pod"
	KeyDeployment  = "deployment"
	KeyKubeContext = "kube_context"
	KeyTransport   = "transport"
	KeyError       = "error"
)

// New builds the root logger. Level is one of debug, info, warn, error;
// format is text or json. Unknown values fall back to info and text.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// WithTool returns a logger with the tool attribute set.
func WithTool(logger *slog.Logger, tool string) *slog.Logger {
	return logger.With(slog.String(KeyTool, tool))
}

// Namespace returns a slog attribute for the namespace.
func Namespace(ns string) slog.Attr {
	if ns == "" {
		ns = "all"
	}
	return slog.String(KeyNamespace, ns)
}

// Pod returns a slog attribute for the pod name.
func Pod(name string) slog.Attr {
	return slog.String(KeyPod, name)
}

// Deployment returns a slog attribute for the deployment name.
func Deployment(name string) slog.Attr {
	return slog.String(KeyDeployment, name)
}

// KubeContext returns a slog attribute for the kubeconfig context name.
func KubeContext(name string) slog.Attr {
	if name == "" {
		name = "<default>"
	}
	return slog.String(KeyKubeContext, name)
}

// Err returns a slog attribute for an error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// ipv4Regex matches IPv4 addresses for sanitization.
var ipv4Regex = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// ipv6Regex matches common IPv6 forms, bracketed URL hosts included.
var ipv6Regex = regexp.MustCompile(`\[?([0-9a-fA-F]{0,4}:){2,7}[0-9a-fA-F]{0,4}\]?`)

// SanitizeHost redacts IP addresses from a host or URL so API server
// addresses do not leak network topology into logs.
func SanitizeHost(host string) string {
	if host == "" {
		return "<empty>"
	}
	result := ipv4Regex.ReplaceAllString(host, "<redacted-ip>")
	return ipv6Regex.ReplaceAllString(result, "<redacted-ip>")
}

// SanitizedErr returns an error attribute with IP addresses redacted. Use it
// for errors that may carry API server addresses.
func SanitizedErr(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, SanitizeHost(err.Error()))
}
