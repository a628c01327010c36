package extract

import (
	"fmt"
	"math"
	"time"

	corev1 "k8s.io/api/core/v1"
)

// PodSummary is the compact per-pod projection used by pod listings.
type PodSummary struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace"`
	Status            string            `json:"status"`
	Ready             bool              `json:"ready"`
	ReadyContainers   string            `json:"ready_containers"`
	TotalContainers   int               `json:"total_containers"`
	RestartCount      int32             `json:"restart_count"`
	NodeName          *string           `json:"node_name"`
	PodIP             *string           `json:"pod_ip"`
	Age               *string           `json:"age"`
	Labels            map[string]string `json:"labels"`
	CreationTimestamp *string           `json:"creation_timestamp"`
}

// PodStatistics aggregates a pod listing.
type PodStatistics struct {
	ByStatus      map[string]int `json:"by_status"`
	ReadyPods     int            `json:"ready_pods"`
	TotalRestarts int64          `json:"total_restarts"`
	ReadyPercent  float64        `json:"ready_percentage"`
}

// PodSummaryFrom projects a pod for listings. Readiness is the Ready
// condition with status True; anything else, including a missing condition,
// is not ready.
func PodSummaryFrom(pod *corev1.Pod, now time.Time) PodSummary {
	var age *string
	if !pod.CreationTimestamp.IsZero() {
		rendered := Age(pod.CreationTimestamp.Time, now)
		age = &rendered
	}

	return PodSummary{
		Name:              pod.Name,
		Namespace:         pod.Namespace,
		Status:            string(pod.Status.Phase),
		Ready:             podReady(pod),
		ReadyContainers:   readyContainers(pod),
		TotalContainers:   len(pod.Spec.Containers),
		RestartCount:      podRestarts(pod),
		NodeName:          strOrNil(pod.Spec.NodeName),
		PodIP:             strOrNil(pod.Status.PodIP),
		Age:               age,
		Labels:            orEmpty(pod.Labels),
		CreationTimestamp: timestamp(&pod.CreationTimestamp),
	}
}

// readyContainers renders the ready-over-total container fraction. Without
// container statuses the denominator falls back to the spec'd container
// count.
func readyContainers(pod *corev1.Pod) string {
	if len(pod.Status.ContainerStatuses) == 0 {
		return fmt.Sprintf("0/%d", len(pod.Spec.Containers))
	}

	ready := 0
	for _, status := range pod.Status.ContainerStatuses {
		if status.Ready {
			ready++
		}
	}
	return fmt.Sprintf("%d/%d", ready, len(pod.Status.ContainerStatuses))
}

func podReady(pod *corev1.Pod) bool {
	for _, cond := range pod.Status.Conditions {
		if cond.Type == corev1.PodReady {
			return cond.Status == corev1.ConditionTrue
		}
	}
	return false
}

// podRestarts sums restart counts across all containers. A pod with no
// container statuses reports zero.
func podRestarts(pod *corev1.Pod) int32 {
	var total int32
	for _, status := range pod.Status.ContainerStatuses {
		total += status.RestartCount
	}
	return total
}

// Age renders the elapsed time since created as the coarsest two units:
// "NdNh" beyond a day, "NhNm" beyond an hour, "Nm" otherwise. A zero or
// future creation time renders "0m".
func Age(created, now time.Time) string {
	elapsed := now.Sub(created)
	if elapsed < 0 {
		elapsed = 0
	}

	days := int64(elapsed.Hours()) / 24
	hours := int64(elapsed.Hours()) % 24
	minutes := int64(elapsed.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd%dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// SummarizePods aggregates already-extracted pod summaries. The empty listing
// yields an empty status map and a zero ready percentage.
func SummarizePods(pods []PodSummary) PodStatistics {
	stats := PodStatistics{
		ByStatus: map[string]int{},
	}

	for _, pod := range pods {
		stats.ByStatus[pod.Status]++
		if pod.Ready {
			stats.ReadyPods++
		}
		stats.TotalRestarts += int64(pod.RestartCount)
	}

	if len(pods) > 0 {
		stats.ReadyPercent = round2(float64(stats.ReadyPods) / float64(len(pods)) * 100)
	}
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
