package k8s

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func int32Ptr(v int32) *int32 { return &v }

func storedDeployment(name, namespace string, replicas int32) *appsv1.Deployment {
	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		Spec: appsv1.DeploymentSpec{
			Replicas: int32Ptr(replicas),
		},
	}
}

func TestListDeployments(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		storedDeployment("api", "default", 3),
		storedDeployment("worker", "jobs", 1),
	)
	c := fakeClusterClient(clientset)

	deployments, err := c.ListDeployments(t.Context(), "", "")
	require.NoError(t, err)
	assert.Len(t, deployments, 2)

	deployments, err = c.ListDeployments(t.Context(), "", "jobs")
	require.NoError(t, err)
	require.Len(t, deployments, 1)
	assert.Equal(t, "worker", deployments[0].Name)
}

func TestGetDeploymentNotFound(t *testing.T) {
	c := fakeClusterClient(fake.NewSimpleClientset())

	_, err := c.GetDeployment(t.Context(), "", "default", "missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "deployment", notFound.Resource)
}

func TestScaleDeployment(t *testing.T) {
	clientset := fake.NewSimpleClientset(storedDeployment("api", "default", 3))
	c := fakeClusterClient(clientset)

	require.NoError(t, c.ScaleDeployment(t.Context(), "", "default", "api", 7))

	stored, err := clientset.AppsV1().Deployments("default").Get(t.Context(), "api", metav1.GetOptions{})
	require.NoError(t, err)
	require.NotNil(t, stored.Spec.Replicas)
	assert.Equal(t, int32(7), *stored.Spec.Replicas)
}

func TestScaleDeploymentNotFound(t *testing.T) {
	c := fakeClusterClient(fake.NewSimpleClientset())

	err := c.ScaleDeployment(t.Context(), "", "default", "missing", 1)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRolloutDeployment(t *testing.T) {
	clientset := fake.NewSimpleClientset(storedDeployment("api", "default", 3))
	c := fakeClusterClient(clientset)

	restartedAt, err := c.RolloutDeployment(t.Context(), "", "default", "api")
	require.NoError(t, err)

	parsed, err := time.Parse(time.RFC3339, restartedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)

	stored, err := clientset.AppsV1().Deployments("default").Get(t.Context(), "api", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, restartedAt, stored.Spec.Template.Annotations[RestartedAtAnnotation])
}

func TestRolloutDeploymentNotFound(t *testing.T) {
	c := fakeClusterClient(fake.NewSimpleClientset())

	_, err := c.RolloutDeployment(t.Context(), "", "default", "missing")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
