package extract

import (
	appsv1 "k8s.io/api/apps/v1"
)

// DeploymentRecord is the projection of one deployment.
type DeploymentRecord struct {
	Name              string             `json:"name"`
	Namespace         string             `json:"namespace"`
	Replicas          ReplicaCounts      `json:"replicas"`
	Labels            map[string]string  `json:"labels"`
	Annotations       map[string]string  `json:"annotations"`
	CreationTimestamp *string            `json:"creation_timestamp"`
	Strategy          DeploymentStrategy `json:"strategy"`
	Status            DeploymentStatus   `json:"status"`
}

// ReplicaCounts carries the replica accounting of a deployment. Unset values
// report as zero.
type ReplicaCounts struct {
	Desired   int32 `json:"desired"`
	Available int32 `json:"available"`
	Ready     int32 `json:"ready"`
	Updated   int32 `json:"updated"`
}

// DeploymentStrategy names the rollout strategy.
type DeploymentStrategy struct {
	Type string `json:"type"`
}

// DeploymentStatus carries the deployment's condition list.
type DeploymentStatus struct {
	Conditions []DeploymentCondition `json:"conditions"`
}

// DeploymentCondition is one deployment condition.
type DeploymentCondition struct {
	Type               string  `json:"type"`
	Status             string  `json:"status"`
	Reason             *string `json:"reason"`
	Message            *string `json:"message"`
	LastTransitionTime *string `json:"last_transition_time"`
}

// DeploymentFrom projects one deployment.
func DeploymentFrom(deployment *appsv1.Deployment) DeploymentRecord {
	var desired int32
	if deployment.Spec.Replicas != nil {
		desired = *deployment.Spec.Replicas
	}

	strategy := string(deployment.Spec.Strategy.Type)
	if strategy == "" {
		strategy = "Unknown"
	}

	conditions := make([]DeploymentCondition, 0, len(deployment.Status.Conditions))
	for _, cond := range deployment.Status.Conditions {
		conditions = append(conditions, DeploymentCondition{
			Type:               string(cond.Type),
			Status:             string(cond.Status),
			Reason:             strOrNil(cond.Reason),
			Message:            strOrNil(cond.Message),
			LastTransitionTime: timestamp(&cond.LastTransitionTime),
		})
	}

	return DeploymentRecord{
		Name:      deployment.Name,
		Namespace: deployment.Namespace,
		Replicas: ReplicaCounts{
			Desired:   desired,
			Available: deployment.Status.AvailableReplicas,
			Ready:     deployment.Status.ReadyReplicas,
			Updated:   deployment.Status.UpdatedReplicas,
		},
		Labels:            orEmpty(deployment.Labels),
		Annotations:       orEmpty(deployment.Annotations),
		CreationTimestamp: timestamp(&deployment.CreationTimestamp),
		Strategy:          DeploymentStrategy{Type: strategy},
		Status:            DeploymentStatus{Conditions: conditions},
	}
}
