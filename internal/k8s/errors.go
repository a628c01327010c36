package k8s

import (
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// ValidationError reports a bad or missing caller argument. It is always
// produced before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that the target resource does not exist (404 from the
// cluster API). It is distinct from APIError so callers can render a
// resource-specific message.
type NotFoundError struct {
	Resource  string
	Namespace string
	Name      string
}

func (e *NotFoundError) Error() string {
	if e.Namespace == "" {
		return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
	}
	return fmt.Sprintf("%s %q not found in namespace %q", e.Resource, e.Name, e.Namespace)
}

// PermissionError reports a 403 or 401 from the cluster API.
type PermissionError struct {
	StatusCode int32
	Resource   string
	Namespace  string
	Name       string
}

func (e *PermissionError) Error() string {
	if e.StatusCode == 401 {
		return "not authorized to access the Kubernetes API"
	}
	if e.Name == "" {
		return fmt.Sprintf("access to %s in namespace %q is forbidden", e.Resource, e.Namespace)
	}
	return fmt.Sprintf("access to %s %q in namespace %q is forbidden", e.Resource, e.Name, e.Namespace)
}

// ConnectivityError reports that neither in-cluster credentials nor the
// kubeconfig produced a usable connection. Both underlying causes are kept.
type ConnectivityError struct {
	InClusterErr  error
	KubeconfigErr error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("unable to connect to the Kubernetes cluster: in-cluster: %v; kubeconfig: %v",
		e.InClusterErr, e.KubeconfigErr)
}

func (e *ConnectivityError) Unwrap() error {
	return e.KubeconfigErr
}

// APIError carries the status code and reason of a cluster API failure that is
// neither a not-found nor a permission problem.
type APIError struct {
	StatusCode int32
	Reason     string
	Err        error
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("Kubernetes API error (status %d, reason %s): %v", e.StatusCode, e.Reason, e.Err)
	}
	return fmt.Sprintf("Kubernetes API error: %v", e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// classifyAPIError converts a client-go error into the error taxonomy.
// The resource/namespace/name triple identifies the call target for messages.
func classifyAPIError(err error, resource, namespace, name string) error {
	if err == nil {
		return nil
	}

	switch {
	case apierrors.IsNotFound(err):
		return &NotFoundError{Resource: resource, Namespace: namespace, Name: name}
	case apierrors.IsUnauthorized(err):
		return &PermissionError{StatusCode: 401, Resource: resource, Namespace: namespace, Name: name}
	case apierrors.IsForbidden(err):
		return &PermissionError{StatusCode: 403, Resource: resource, Namespace: namespace, Name: name}
	}

	var statusErr *apierrors.StatusError
	if errors.As(err, &statusErr) {
		return &APIError{
			StatusCode: statusErr.ErrStatus.Code,
			Reason:     string(statusErr.ErrStatus.Reason),
			Err:        err,
		}
	}

	return err
}

// StatusCode extracts the HTTP status code carried by a classified error,
// returning 0 when the error carries none.
func StatusCode(err error) int32 {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return 404
	}
	var permission *PermissionError
	if errors.As(err, &permission) {
		return permission.StatusCode
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
