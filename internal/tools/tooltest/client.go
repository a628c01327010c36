// Package tooltest provides a configurable fake of the k8s.Client interface
// for tool handler tests.
package tooltest

import (
	"context"
	"sync"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/clustereye/mcp-kubernetes/internal/k8s"
)

// FakeClient implements k8s.Client with overridable function fields. Methods
// without an override return zero values.
type FakeClient struct {
	ListContextsFn      func() []string
	CurrentContextFn    func() string
	SetDefaultContextFn func(ctx context.Context, name string) bool
	SwitchContextFn     func(ctx context.Context, name string) bool
	TestConnectionFn    func(ctx context.Context, contextName string) bool

	ListNodesFn func(ctx context.Context, kubeContext string) ([]corev1.Node, error)

	ListPodsFn      func(ctx context.Context, kubeContext, namespace string) ([]corev1.Pod, error)
	GetPodFn        func(ctx context.Context, kubeContext, namespace, name string) (*corev1.Pod, error)
	ListPodEventsFn func(ctx context.Context, kubeContext, namespace, podName string) ([]corev1.Event, error)
	GetLogsFn       func(ctx context.Context, kubeContext, namespace, podName string, opts k8s.LogOptions) (string, error)

	ListDeploymentsFn   func(ctx context.Context, kubeContext, namespace string) ([]appsv1.Deployment, error)
	GetDeploymentFn     func(ctx context.Context, kubeContext, namespace, name string) (*appsv1.Deployment, error)
	ScaleDeploymentFn   func(ctx context.Context, kubeContext, namespace, name string, replicas int32) error
	RolloutDeploymentFn func(ctx context.Context, kubeContext, namespace, name string) (string, error)

	// Calls records the method names invoked, in order. Handlers may call
	// the fake from multiple goroutines; read Calls only after the call
	// under test has returned, or use Recorded.
	Calls []string

	mu sync.Mutex
}

var _ k8s.Client = (*FakeClient)(nil)

func (f *FakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, name)
}

// Recorded returns a copy of the recorded method names.
func (f *FakeClient) Recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Calls...)
}

func (f *FakeClient) ListContexts() []string {
	f.record("ListContexts")
	if f.ListContextsFn != nil {
		return f.ListContextsFn()
	}
	return nil
}

func (f *FakeClient) CurrentContext() string {
	f.record("CurrentContext")
	if f.CurrentContextFn != nil {
		return f.CurrentContextFn()
	}
	return ""
}

func (f *FakeClient) SetDefaultContext(ctx context.Context, name string) bool {
	f.record("SetDefaultContext")
	if f.SetDefaultContextFn != nil {
		return f.SetDefaultContextFn(ctx, name)
	}
	return false
}

func (f *FakeClient) SwitchContext(ctx context.Context, name string) bool {
	f.record("SwitchContext")
	if f.SwitchContextFn != nil {
		return f.SwitchContextFn(ctx, name)
	}
	return false
}

func (f *FakeClient) TestConnection(ctx context.Context, contextName string) bool {
	f.record("TestConnection")
	if f.TestConnectionFn != nil {
		return f.TestConnectionFn(ctx, contextName)
	}
	return false
}

func (f *FakeClient) ListNodes(ctx context.Context, kubeContext string) ([]corev1.Node, error) {
	f.record("ListNodes")
	if f.ListNodesFn != nil {
		return f.ListNodesFn(ctx, kubeContext)
	}
	return nil, nil
}

func (f *FakeClient) ListPods(ctx context.Context, kubeContext, namespace string) ([]corev1.Pod, error) {
	f.record("ListPods")
	if f.ListPodsFn != nil {
		return f.ListPodsFn(ctx, kubeContext, namespace)
	}
	return nil, nil
}

func (f *FakeClient) GetPod(ctx context.Context, kubeContext, namespace, name string) (*corev1.Pod, error) {
	f.record("GetPod")
	if f.GetPodFn != nil {
		return f.GetPodFn(ctx, kubeContext, namespace, name)
	}
	return nil, nil
}

func (f *FakeClient) ListPodEvents(ctx context.Context, kubeContext, namespace, podName string) ([]corev1.Event, error) {
	f.record("ListPodEvents")
	if f.ListPodEventsFn != nil {
		return f.ListPodEventsFn(ctx, kubeContext, namespace, podName)
	}
	return nil, nil
}

func (f *FakeClient) GetLogs(ctx context.Context, kubeContext, namespace, podName string, opts k8s.LogOptions) (string, error) {
	f.record("GetLogs")
	if f.GetLogsFn != nil {
		return f.GetLogsFn(ctx, kubeContext, namespace, podName, opts)
	}
	return "", nil
}

func (f *FakeClient) ListDeployments(ctx context.Context, kubeContext, namespace string) ([]appsv1.Deployment, error) {
	f.record("ListDeployments")
	if f.ListDeploymentsFn != nil {
		return f.ListDeploymentsFn(ctx, kubeContext, namespace)
	}
	return nil, nil
}

func (f *FakeClient) GetDeployment(ctx context.Context, kubeContext, namespace, name string) (*appsv1.Deployment, error) {
	f.record("GetDeployment")
	if f.GetDeploymentFn != nil {
		return f.GetDeploymentFn(ctx, kubeContext, namespace, name)
	}
	return nil, nil
}

func (f *FakeClient) ScaleDeployment(ctx context.Context, kubeContext, namespace, name string, replicas int32) error {
	f.record("ScaleDeployment")
	if f.ScaleDeploymentFn != nil {
		return f.ScaleDeploymentFn(ctx, kubeContext, namespace, name, replicas)
	}
	return nil
}

func (f *FakeClient) RolloutDeployment(ctx context.Context, kubeContext, namespace, name string) (string, error) {
	f.record("RolloutDeployment")
	if f.RolloutDeploymentFn != nil {
		return f.RolloutDeploymentFn(ctx, kubeContext, namespace, name)
	}
	return "", nil
}
