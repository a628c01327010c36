package k8s

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/fake"
)

func TestListPods(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "api-0", Namespace: "default"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "db-0", Namespace: "storage"}},
	)
	c := fakeClusterClient(clientset)

	pods, err := c.ListPods(t.Context(), "", "")
	require.NoError(t, err)
	assert.Len(t, pods, 2)

	pods, err = c.ListPods(t.Context(), "", "storage")
	require.NoError(t, err)
	require.Len(t, pods, 1)
	assert.Equal(t, "db-0", pods[0].Name)

	// Blank namespace means all namespaces.
	pods, err = c.ListPods(t.Context(), "", "   ")
	require.NoError(t, err)
	assert.Len(t, pods, 2)
}

func TestGetPod(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "api-0", Namespace: "default"}},
	)
	c := fakeClusterClient(clientset)

	pod, err := c.GetPod(t.Context(), "", "default", "api-0")
	require.NoError(t, err)
	assert.Equal(t, "api-0", pod.Name)
}

func TestGetPodNotFound(t *testing.T) {
	c := fakeClusterClient(fake.NewSimpleClientset())

	_, err := c.GetPod(t.Context(), "", "default", "missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "pod", notFound.Resource)
	assert.Equal(t, "missing", notFound.Name)
}

func TestListPodEvents(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Event{
			ObjectMeta:     metav1.ObjectMeta{Name: "api-0.1", Namespace: "default"},
			InvolvedObject: corev1.ObjectReference{Kind: "Pod", Name: "api-0", Namespace: "default"},
			Reason:         "Scheduled",
		},
	)
	c := fakeClusterClient(clientset)

	events, err := c.ListPodEvents(t.Context(), "", "default", "api-0")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Scheduled", events[0].Reason)
}

func TestGetLogs(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "api-0", Namespace: "default"}},
	)
	c := fakeClusterClient(clientset)

	logs, err := c.GetLogs(t.Context(), "", "default", "api-0", LogOptions{TailLines: 10})
	require.NoError(t, err)
	// The fake clientset serves a canned body.
	assert.Equal(t, "fake logs", logs)
}

func TestGetLogsCoercesTailLines(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "api-0", Namespace: "default"}},
	)
	c := fakeClusterClient(clientset)

	_, err := c.GetLogs(t.Context(), "", "default", "api-0", LogOptions{TailLines: -5})
	require.NoError(t, err)
}

func TestGetLogsConnectFailure(t *testing.T) {
	c := fakeClusterClient(nil)
	cause := &ConnectivityError{}
	c.connect = func(contextName string) (kubernetes.Interface, error) {
		return nil, cause
	}

	_, err := c.GetLogs(t.Context(), "", "default", "api-0", LogOptions{})
	assert.ErrorIs(t, err, cause)
}
