package extract

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
)

// Node roles. Role is always one of these two values: a node without a master
// indicator is a worker, never "unknown".
const (
	RoleMaster = "master"
	RoleWorker = "worker"
)

// masterLabels are the label keys checked, in order, to classify a node as a
// control-plane member.
var masterLabels = []string{
	"node-role.kubernetes.io/master",
	"node-role.kubernetes.io/control-plane",
}

// roleLabel is the legacy role label whose value (rather than presence)
// indicates a master.
const roleLabel = "kubernetes.io/role"

// NodeRecord is the flat projection of a cluster node.
type NodeRecord struct {
	Name              string            `json:"name"`
	Labels            map[string]string `json:"labels"`
	Annotations       map[string]string `json:"annotations"`
	CreationTimestamp *string           `json:"creation_timestamp"`

	CPUCapacity       string `json:"cpu_capacity"`
	MemoryCapacity    string `json:"memory_capacity"`
	CPUAllocatable    string `json:"cpu_allocatable"`
	MemoryAllocatable string `json:"memory_allocatable"`
	PodsCapacity      string `json:"pods_capacity"`
	StorageCapacity   string `json:"storage_capacity"`

	Conditions map[string]NodeCondition `json:"conditions"`

	Architecture            string `json:"architecture"`
	OperatingSystem         string `json:"operating_system"`
	OSImage                 string `json:"os_image"`
	KernelVersion           string `json:"kernel_version"`
	KubeletVersion          string `json:"kubelet_version"`
	ContainerRuntimeVersion string `json:"container_runtime_version"`

	Role string `json:"role"`
}

// NodeCondition is one entry of a node's condition map, keyed by type.
type NodeCondition struct {
	Status             string  `json:"status"`
	Reason             *string `json:"reason"`
	Message            *string `json:"message"`
	LastTransitionTime *string `json:"last_transition_time"`
}

// ClusterSummary aggregates one node listing.
type ClusterSummary struct {
	MasterNodes         int    `json:"master_nodes"`
	WorkerNodes         int    `json:"worker_nodes"`
	TotalCPUCapacity    string `json:"total_cpu_capacity"`
	TotalMemoryCapacity string `json:"total_memory_capacity"`
	ReadyNodes          int    `json:"ready_nodes"`
}

// NodeFrom projects a node into its flat record.
func NodeFrom(node *corev1.Node) NodeRecord {
	capacity := node.Status.Capacity
	allocatable := node.Status.Allocatable

	record := NodeRecord{
		Name:              node.Name,
		Labels:            orEmpty(node.Labels),
		Annotations:       orEmpty(node.Annotations),
		CreationTimestamp: timestamp(&node.CreationTimestamp),

		CPUCapacity:       quantityOr(capacity, corev1.ResourceCPU, "0"),
		MemoryCapacity:    quantityOr(capacity, corev1.ResourceMemory, "0Ki"),
		CPUAllocatable:    quantityOr(allocatable, corev1.ResourceCPU, "0"),
		MemoryAllocatable: quantityOr(allocatable, corev1.ResourceMemory, "0Ki"),
		PodsCapacity:      quantityOr(capacity, corev1.ResourcePods, "0"),
		StorageCapacity:   quantityOr(capacity, corev1.ResourceEphemeralStorage, "0Ki"),

		Conditions: nodeConditions(node.Status.Conditions),

		Architecture:            infoOr(node.Status.NodeInfo.Architecture),
		OperatingSystem:         infoOr(node.Status.NodeInfo.OperatingSystem),
		OSImage:                 infoOr(node.Status.NodeInfo.OSImage),
		KernelVersion:           infoOr(node.Status.NodeInfo.KernelVersion),
		KubeletVersion:          infoOr(node.Status.NodeInfo.KubeletVersion),
		ContainerRuntimeVersion: infoOr(node.Status.NodeInfo.ContainerRuntimeVersion),

		Role: nodeRole(node.Labels),
	}

	return record
}

// quantityOr reads a quantity from a resource list, with a default for the
// missing-key case.
func quantityOr(list corev1.ResourceList, key corev1.ResourceName, fallback string) string {
	if q, ok := list[key]; ok {
		return q.String()
	}
	return fallback
}

func infoOr(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

// nodeConditions builds the condition set keyed by condition type. Duplicate
// types are not expected from the API; when present, the last write wins.
func nodeConditions(conditions []corev1.NodeCondition) map[string]NodeCondition {
	result := make(map[string]NodeCondition, len(conditions))
	for _, cond := range conditions {
		result[string(cond.Type)] = NodeCondition{
			Status:             string(cond.Status),
			Reason:             strOrNil(cond.Reason),
			Message:            strOrNil(cond.Message),
			LastTransitionTime: timestamp(&cond.LastTransitionTime),
		}
	}
	return result
}

// nodeRole classifies the node from its labels: the master indicators are
// checked in a fixed order, and everything else is a worker.
func nodeRole(labels map[string]string) string {
	for _, key := range masterLabels {
		if _, ok := labels[key]; ok {
			return RoleMaster
		}
	}
	if labels[roleLabel] == RoleMaster {
		return RoleMaster
	}
	return RoleWorker
}

// SummarizeNodes aggregates already-extracted node records. A zero-node
// listing yields a zero summary without division errors.
func SummarizeNodes(nodes []NodeRecord) ClusterSummary {
	summary := ClusterSummary{}

	var totalCPU, totalMemory int64
	for _, node := range nodes {
		switch node.Role {
		case RoleMaster:
			summary.MasterNodes++
		default:
			summary.WorkerNodes++
		}

		totalCPU += CPUMillis(node.CPUCapacity)
		totalMemory += MemoryKi(node.MemoryCapacity)

		if ready, ok := node.Conditions[string(corev1.NodeReady)]; ok && ready.Status == "True" {
			summary.ReadyNodes++
		}
	}

	summary.TotalCPUCapacity = fmt.Sprintf("%dm", totalCPU)
	summary.TotalMemoryCapacity = fmt.Sprintf("%dKi", totalMemory)
	return summary
}
