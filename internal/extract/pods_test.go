package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func testPod(name string, ready bool, restarts int32) corev1.Pod {
	status := corev1.ConditionFalse
	if ready {
		status = corev1.ConditionTrue
	}

	return corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:              name,
			Namespace:         "default",
			CreationTimestamp: metav1.NewTime(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)),
		},
		Spec: corev1.PodSpec{
			NodeName:   "worker-1",
			Containers: []corev1.Container{{Name: "main"}},
		},
		Status: corev1.PodStatus{
			Phase: corev1.PodRunning,
			PodIP: "10.0.0.5",
			Conditions: []corev1.PodCondition{
				{Type: corev1.PodReady, Status: status},
			},
			ContainerStatuses: []corev1.ContainerStatus{
				{Name: "main", Ready: ready, RestartCount: restarts},
			},
		},
	}
}

func TestPodSummaryFrom(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	pod := testPod("api-7d9f", true, 3)

	summary := PodSummaryFrom(&pod, now)

	assert.Equal(t, "api-7d9f", summary.Name)
	assert.Equal(t, "default", summary.Namespace)
	assert.Equal(t, "Running", summary.Status)
	assert.True(t, summary.Ready)
	assert.Equal(t, "1/1", summary.ReadyContainers)
	assert.Equal(t, 1, summary.TotalContainers)
	assert.Equal(t, int32(3), summary.RestartCount)
	require.NotNil(t, summary.Age)
	assert.Equal(t, "1d2h", *summary.Age)
	require.NotNil(t, summary.NodeName)
	assert.Equal(t, "worker-1", *summary.NodeName)
	require.NotNil(t, summary.PodIP)
	assert.Equal(t, "10.0.0.5", *summary.PodIP)
}

func TestPodSummaryFromPending(t *testing.T) {
	pod := corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: "pending", Namespace: "default"},
		Status:     corev1.PodStatus{Phase: corev1.PodPending},
	}

	summary := PodSummaryFrom(&pod, time.Now())

	assert.False(t, summary.Ready, "missing Ready condition means not ready")
	assert.Equal(t, int32(0), summary.RestartCount)
	assert.Equal(t, "0/0", summary.ReadyContainers)
	assert.Nil(t, summary.NodeName)
	assert.Nil(t, summary.PodIP)
	assert.Nil(t, summary.Age, "no creation timestamp means no age")
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		created  time.Time
		expected string
	}{
		{name: "days and hours", created: now.Add(-50 * time.Hour), expected: "2d2h"},
		{name: "hours and minutes", created: now.Add(-(3*time.Hour + 15*time.Minute)), expected: "3h15m"},
		{name: "minutes only", created: now.Add(-42 * time.Minute), expected: "42m"},
		{name: "just created", created: now, expected: "0m"},
		{name: "future clamps to zero", created: now.Add(time.Hour), expected: "0m"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Age(tc.created, now))
		})
	}
}

func TestSummarizePods(t *testing.T) {
	t.Run("empty listing", func(t *testing.T) {
		stats := SummarizePods(nil)

		assert.Empty(t, stats.ByStatus)
		assert.NotNil(t, stats.ByStatus)
		assert.Equal(t, 0, stats.ReadyPods)
		assert.Equal(t, int64(0), stats.TotalRestarts)
		assert.Equal(t, 0.0, stats.ReadyPercent)
	})

	t.Run("mixed listing", func(t *testing.T) {
		now := time.Now()
		ready := testPod("a", true, 2)
		notReady := testPod("b", false, 1)
		failed := testPod("c", false, 0)
		failed.Status.Phase = corev1.PodFailed

		stats := SummarizePods([]PodSummary{
			PodSummaryFrom(&ready, now),
			PodSummaryFrom(&notReady, now),
			PodSummaryFrom(&failed, now),
		})

		assert.Equal(t, map[string]int{"Running": 2, "Failed": 1}, stats.ByStatus)
		assert.Equal(t, 1, stats.ReadyPods)
		assert.Equal(t, int64(3), stats.TotalRestarts)
		assert.Equal(t, 33.33, stats.ReadyPercent)
	})
}
