package extract

import (
	corev1 "k8s.io/api/core/v1"
)

// PodDetail is the full projection of a single pod, combining metadata, spec,
// status and the pod's event history. Environment is an opaque caller-supplied
// tag echoed back unchanged.
type PodDetail struct {
	Environment string        `json:"environment"`
	Metadata    PodMetadata   `json:"metadata"`
	Spec        PodSpec       `json:"spec"`
	Status      PodStatus     `json:"status"`
	Events      []EventRecord `json:"events"`
}

// PodMetadata carries the identifying fields of a pod.
type PodMetadata struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace"`
	CreationTimestamp *string           `json:"creation_timestamp"`
	Labels            map[string]string `json:"labels"`
	Annotations       map[string]string `json:"annotations"`
	OwnerReferences   []OwnerReference  `json:"owner_references"`
}

// OwnerReference identifies a pod's controlling object.
type OwnerReference struct {
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	UID        string `json:"uid"`
	Controller bool   `json:"controller"`
}

// PodSpec carries the scheduling and runtime shape of a pod.
type PodSpec struct {
	NodeName           *string         `json:"node_name"`
	RestartPolicy      string          `json:"restart_policy"`
	ServiceAccountName *string         `json:"service_account_name"`
	SecurityContext    map[string]any  `json:"security_context"`
	Containers         []ContainerSpec `json:"containers"`
	InitContainers     []ContainerSpec `json:"init_containers"`
	Volumes            []VolumeRecord  `json:"volumes"`
}

// ContainerSpec is the projection of one container's configuration.
type ContainerSpec struct {
	Name            string          `json:"name"`
	Image           string          `json:"image"`
	Command         []string        `json:"command"`
	Args            []string        `json:"args"`
	WorkingDir      *string         `json:"working_dir"`
	Ports           []ContainerPort `json:"ports"`
	Env             []EnvVar        `json:"env"`
	VolumeMounts    []VolumeMount   `json:"volume_mounts"`
	Resources       ResourceBlock   `json:"resources"`
	SecurityContext map[string]any  `json:"security_context"`
	LivenessProbe   *ProbeRecord    `json:"liveness_probe"`
	ReadinessProbe  *ProbeRecord    `json:"readiness_probe"`
}

// ContainerPort is one exposed port.
type ContainerPort struct {
	Name          *string `json:"name"`
	ContainerPort int32   `json:"container_port"`
	Protocol      string  `json:"protocol"`
	HostPort      *int32  `json:"host_port"`
}

// EnvVar is one classified environment variable. Exactly one of Value and
// ValueFrom is present.
type EnvVar struct {
	Name      string        `json:"name"`
	Value     *string       `json:"value,omitempty"`
	ValueFrom *EnvValueFrom `json:"value_from,omitempty"`
}

// EnvValueFrom names the indirect source of an environment variable. Type is
// one of configMapKeyRef, secretKeyRef, fieldRef, resourceFieldRef or
// unknown; the remaining fields depend on the type.
type EnvValueFrom struct {
	Type      string `json:"type"`
	Name      string `json:"name,omitempty"`
	Key       string `json:"key,omitempty"`
	FieldPath string `json:"field_path,omitempty"`
	Resource  string `json:"resource,omitempty"`
}

// VolumeMount is one container mount point.
type VolumeMount struct {
	Name      string  `json:"name"`
	MountPath string  `json:"mount_path"`
	ReadOnly  bool    `json:"read_only"`
	SubPath   *string `json:"sub_path"`
}

// ResourceBlock holds requests and limits as quantity strings. Either map is
// omitted when the container declares nothing for it.
type ResourceBlock struct {
	Requests map[string]string `json:"requests,omitempty"`
	Limits   map[string]string `json:"limits,omitempty"`
}

// ProbeRecord is the classified projection of a probe. Type identifies the
// handler; exactly one of the handler fields is set. Unset timing fields take
// the API defaults.
type ProbeRecord struct {
	InitialDelaySeconds int32         `json:"initial_delay_seconds"`
	PeriodSeconds       int32         `json:"period_seconds"`
	TimeoutSeconds      int32         `json:"timeout_seconds"`
	FailureThreshold    int32         `json:"failure_threshold"`
	SuccessThreshold    int32         `json:"success_threshold"`
	Type                string        `json:"type,omitempty"`
	HTTPGet             *HTTPGetProbe `json:"http_get,omitempty"`
	TCPSocket           *TCPProbe     `json:"tcp_socket,omitempty"`
	Exec                *ExecProbe    `json:"exec,omitempty"`
}

// HTTPGetProbe is the handler detail of an httpGet probe.
type HTTPGetProbe struct {
	Path   string `json:"path"`
	Port   string `json:"port"`
	Scheme string `json:"scheme"`
}

// TCPProbe is the handler detail of a tcpSocket probe.
type TCPProbe struct {
	Port string `json:"port"`
}

// ExecProbe is the handler detail of an exec probe.
type ExecProbe struct {
	Command []string `json:"command"`
}

// VolumeRecord classifies one pod volume by its source.
type VolumeRecord struct {
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	Details map[string]any `json:"details"`
}

// PodStatus carries the observed state of a pod.
type PodStatus struct {
	Phase                 string            `json:"phase"`
	Conditions            []PodCondition    `json:"conditions"`
	ContainerStatuses     []ContainerStatus `json:"container_statuses"`
	InitContainerStatuses []ContainerStatus `json:"init_container_statuses"`
	HostIP                *string           `json:"host_ip"`
	PodIP                 *string           `json:"pod_ip"`
	StartTime             *string           `json:"start_time"`
	QOSClass              *string           `json:"qos_class"`
}

// PodCondition is one pod condition.
type PodCondition struct {
	Type               string  `json:"type"`
	Status             string  `json:"status"`
	LastTransitionTime *string `json:"last_transition_time"`
	Reason             *string `json:"reason"`
	Message            *string `json:"message"`
}

// ContainerStatus is the runtime status of one container.
type ContainerStatus struct {
	Name         string         `json:"name"`
	Ready        bool           `json:"ready"`
	RestartCount int32          `json:"restart_count"`
	Image        string         `json:"image"`
	ImageID      *string        `json:"image_id"`
	ContainerID  *string        `json:"container_id"`
	State        map[string]any `json:"state"`
	LastState    map[string]any `json:"last_state"`
}

// PodDetailFrom builds the full detail projection from a pod, its events and
// the caller's environment tag.
func PodDetailFrom(pod *corev1.Pod, events []corev1.Event, environment string) PodDetail {
	return PodDetail{
		Environment: environment,
		Metadata:    podMetadata(pod),
		Spec:        podSpec(pod),
		Status:      podStatus(pod),
		Events:      EventsFrom(events),
	}
}

func podMetadata(pod *corev1.Pod) PodMetadata {
	owners := make([]OwnerReference, 0, len(pod.OwnerReferences))
	for _, ref := range pod.OwnerReferences {
		controller := ref.Controller != nil && *ref.Controller
		owners = append(owners, OwnerReference{
			Kind:       ref.Kind,
			Name:       ref.Name,
			UID:        string(ref.UID),
			Controller: controller,
		})
	}

	return PodMetadata{
		Name:              pod.Name,
		Namespace:         pod.Namespace,
		CreationTimestamp: timestamp(&pod.CreationTimestamp),
		Labels:            orEmpty(pod.Labels),
		Annotations:       orEmpty(pod.Annotations),
		OwnerReferences:   owners,
	}
}

func podSpec(pod *corev1.Pod) PodSpec {
	containers := make([]ContainerSpec, 0, len(pod.Spec.Containers))
	for i := range pod.Spec.Containers {
		containers = append(containers, containerSpec(&pod.Spec.Containers[i]))
	}
	initContainers := make([]ContainerSpec, 0, len(pod.Spec.InitContainers))
	for i := range pod.Spec.InitContainers {
		initContainers = append(initContainers, containerSpec(&pod.Spec.InitContainers[i]))
	}

	volumes := make([]VolumeRecord, 0, len(pod.Spec.Volumes))
	for i := range pod.Spec.Volumes {
		volumes = append(volumes, volumeRecord(&pod.Spec.Volumes[i]))
	}

	return PodSpec{
		NodeName:           strOrNil(pod.Spec.NodeName),
		RestartPolicy:      string(pod.Spec.RestartPolicy),
		ServiceAccountName: strOrNil(pod.Spec.ServiceAccountName),
		SecurityContext:    podSecurityContext(pod.Spec.SecurityContext),
		Containers:         containers,
		InitContainers:     initContainers,
		Volumes:            volumes,
	}
}

func containerSpec(container *corev1.Container) ContainerSpec {
	ports := make([]ContainerPort, 0, len(container.Ports))
	for _, p := range container.Ports {
		var hostPort *int32
		if p.HostPort != 0 {
			port := p.HostPort
			hostPort = &port
		}
		ports = append(ports, ContainerPort{
			Name:          strOrNil(p.Name),
			ContainerPort: p.ContainerPort,
			Protocol:      string(p.Protocol),
			HostPort:      hostPort,
		})
	}

	env := make([]EnvVar, 0, len(container.Env))
	for _, e := range container.Env {
		env = append(env, envVar(e))
	}

	mounts := make([]VolumeMount, 0, len(container.VolumeMounts))
	for _, m := range container.VolumeMounts {
		mounts = append(mounts, VolumeMount{
			Name:      m.Name,
			MountPath: m.MountPath,
			ReadOnly:  m.ReadOnly,
			SubPath:   strOrNil(m.SubPath),
		})
	}

	return ContainerSpec{
		Name:            container.Name,
		Image:           container.Image,
		Command:         orEmptySlice(container.Command),
		Args:            orEmptySlice(container.Args),
		WorkingDir:      strOrNil(container.WorkingDir),
		Ports:           ports,
		Env:             env,
		VolumeMounts:    mounts,
		Resources:       resourceBlock(container.Resources),
		SecurityContext: containerSecurityContext(container.SecurityContext),
		LivenessProbe:   probeRecord(container.LivenessProbe),
		ReadinessProbe:  probeRecord(container.ReadinessProbe),
	}
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func resourceBlock(resources corev1.ResourceRequirements) ResourceBlock {
	block := ResourceBlock{}
	if len(resources.Requests) > 0 {
		block.Requests = map[string]string{}
		for name, quantity := range resources.Requests {
			block.Requests[string(name)] = quantity.String()
		}
	}
	if len(resources.Limits) > 0 {
		block.Limits = map[string]string{}
		for name, quantity := range resources.Limits {
			block.Limits[string(name)] = quantity.String()
		}
	}
	return block
}

// envVar classifies one environment variable. Indirect sources are checked
// in a fixed order; a valueFrom with no recognized source reports type
// "unknown".
func envVar(env corev1.EnvVar) EnvVar {
	if env.ValueFrom == nil {
		value := env.Value
		return EnvVar{Name: env.Name, Value: &value}
	}

	from := &EnvValueFrom{Type: "unknown"}
	switch {
	case env.ValueFrom.ConfigMapKeyRef != nil:
		from.Type = "configMapKeyRef"
		from.Name = env.ValueFrom.ConfigMapKeyRef.Name
		from.Key = env.ValueFrom.ConfigMapKeyRef.Key
	case env.ValueFrom.SecretKeyRef != nil:
		from.Type = "secretKeyRef"
		from.Name = env.ValueFrom.SecretKeyRef.Name
		from.Key = env.ValueFrom.SecretKeyRef.Key
	case env.ValueFrom.FieldRef != nil:
		from.Type = "fieldRef"
		from.FieldPath = env.ValueFrom.FieldRef.FieldPath
	case env.ValueFrom.ResourceFieldRef != nil:
		from.Type = "resourceFieldRef"
		from.Resource = env.ValueFrom.ResourceFieldRef.Resource
	}
	return EnvVar{Name: env.Name, ValueFrom: from}
}

// probeRecord classifies a probe by handler. The handler checks run in a
// fixed order so a probe with multiple handlers set classifies
// deterministically.
func probeRecord(probe *corev1.Probe) *ProbeRecord {
	if probe == nil {
		return nil
	}

	record := &ProbeRecord{
		InitialDelaySeconds: probe.InitialDelaySeconds,
		PeriodSeconds:       intOr(probe.PeriodSeconds, 10),
		TimeoutSeconds:      intOr(probe.TimeoutSeconds, 1),
		FailureThreshold:    intOr(probe.FailureThreshold, 3),
		SuccessThreshold:    intOr(probe.SuccessThreshold, 1),
	}

	switch {
	case probe.HTTPGet != nil:
		record.Type = "httpGet"
		scheme := string(probe.HTTPGet.Scheme)
		if scheme == "" {
			scheme = "HTTP"
		}
		record.HTTPGet = &HTTPGetProbe{
			Path:   probe.HTTPGet.Path,
			Port:   probe.HTTPGet.Port.String(),
			Scheme: scheme,
		}
	case probe.TCPSocket != nil:
		record.Type = "tcpSocket"
		record.TCPSocket = &TCPProbe{Port: probe.TCPSocket.Port.String()}
	case probe.Exec != nil:
		record.Type = "exec"
		record.Exec = &ExecProbe{Command: orEmptySlice(probe.Exec.Command)}
	}

	return record
}

func intOr(value, fallback int32) int32 {
	if value == 0 {
		return fallback
	}
	return value
}

// podSecurityContext projects the allow-listed pod-level security fields.
func podSecurityContext(ctx *corev1.PodSecurityContext) map[string]any {
	result := map[string]any{}
	if ctx == nil {
		return result
	}

	if ctx.RunAsUser != nil {
		result["run_as_user"] = *ctx.RunAsUser
	}
	if ctx.RunAsGroup != nil {
		result["run_as_group"] = *ctx.RunAsGroup
	}
	if ctx.RunAsNonRoot != nil {
		result["run_as_non_root"] = *ctx.RunAsNonRoot
	}
	if ctx.FSGroup != nil {
		result["fs_group"] = *ctx.FSGroup
	}
	return result
}

// containerSecurityContext projects the allow-listed container-level security
// fields.
func containerSecurityContext(ctx *corev1.SecurityContext) map[string]any {
	result := map[string]any{}
	if ctx == nil {
		return result
	}

	if ctx.RunAsUser != nil {
		result["run_as_user"] = *ctx.RunAsUser
	}
	if ctx.RunAsGroup != nil {
		result["run_as_group"] = *ctx.RunAsGroup
	}
	if ctx.RunAsNonRoot != nil {
		result["run_as_non_root"] = *ctx.RunAsNonRoot
	}
	if ctx.ReadOnlyRootFilesystem != nil {
		result["read_only_root_filesystem"] = *ctx.ReadOnlyRootFilesystem
	}
	if ctx.AllowPrivilegeEscalation != nil {
		result["allow_privilege_escalation"] = *ctx.AllowPrivilegeEscalation
	}
	if ctx.Capabilities != nil {
		add := make([]string, 0, len(ctx.Capabilities.Add))
		for _, c := range ctx.Capabilities.Add {
			add = append(add, string(c))
		}
		drop := make([]string, 0, len(ctx.Capabilities.Drop))
		for _, c := range ctx.Capabilities.Drop {
			drop = append(drop, string(c))
		}
		result["capabilities"] = map[string]any{"add": add, "drop": drop}
	}
	return result
}

// volumeRecord classifies a volume by source. The source checks run in a
// fixed order so a malformed volume with multiple sources classifies
// deterministically.
func volumeRecord(volume *corev1.Volume) VolumeRecord {
	record := VolumeRecord{
		Name:    volume.Name,
		Type:    "unknown",
		Details: map[string]any{},
	}

	switch {
	case volume.EmptyDir != nil:
		record.Type = "emptyDir"
		if volume.EmptyDir.SizeLimit != nil {
			record.Details["size_limit"] = volume.EmptyDir.SizeLimit.String()
		} else {
			record.Details["size_limit"] = nil
		}
	case volume.ConfigMap != nil:
		record.Type = "configMap"
		record.Details["name"] = volume.ConfigMap.Name
		record.Details["default_mode"] = volume.ConfigMap.DefaultMode
	case volume.Secret != nil:
		record.Type = "secret"
		record.Details["secret_name"] = volume.Secret.SecretName
		record.Details["default_mode"] = volume.Secret.DefaultMode
	case volume.PersistentVolumeClaim != nil:
		record.Type = "persistentVolumeClaim"
		record.Details["claim_name"] = volume.PersistentVolumeClaim.ClaimName
		record.Details["read_only"] = volume.PersistentVolumeClaim.ReadOnly
	case volume.HostPath != nil:
		record.Type = "hostPath"
		record.Details["path"] = volume.HostPath.Path
		if volume.HostPath.Type != nil {
			record.Details["type"] = string(*volume.HostPath.Type)
		} else {
			record.Details["type"] = nil
		}
	case volume.DownwardAPI != nil:
		record.Type = "downwardAPI"
	case volume.Projected != nil:
		record.Type = "projected"
	}

	return record
}

func podStatus(pod *corev1.Pod) PodStatus {
	conditions := make([]PodCondition, 0, len(pod.Status.Conditions))
	for _, cond := range pod.Status.Conditions {
		conditions = append(conditions, PodCondition{
			Type:               string(cond.Type),
			Status:             string(cond.Status),
			LastTransitionTime: timestamp(&cond.LastTransitionTime),
			Reason:             strOrNil(cond.Reason),
			Message:            strOrNil(cond.Message),
		})
	}

	statuses := make([]ContainerStatus, 0, len(pod.Status.ContainerStatuses))
	for i := range pod.Status.ContainerStatuses {
		statuses = append(statuses, containerStatus(&pod.Status.ContainerStatuses[i]))
	}
	initStatuses := make([]ContainerStatus, 0, len(pod.Status.InitContainerStatuses))
	for i := range pod.Status.InitContainerStatuses {
		initStatuses = append(initStatuses, containerStatus(&pod.Status.InitContainerStatuses[i]))
	}

	qos := string(pod.Status.QOSClass)

	return PodStatus{
		Phase:                 string(pod.Status.Phase),
		Conditions:            conditions,
		ContainerStatuses:     statuses,
		InitContainerStatuses: initStatuses,
		HostIP:                strOrNil(pod.Status.HostIP),
		PodIP:                 strOrNil(pod.Status.PodIP),
		StartTime:             timestamp(pod.Status.StartTime),
		QOSClass:              strOrNil(qos),
	}
}

func containerStatus(status *corev1.ContainerStatus) ContainerStatus {
	return ContainerStatus{
		Name:         status.Name,
		Ready:        status.Ready,
		RestartCount: status.RestartCount,
		Image:        status.Image,
		ImageID:      strOrNil(status.ImageID),
		ContainerID:  strOrNil(status.ContainerID),
		State:        containerState(&status.State, false),
		LastState:    containerState(&status.LastTerminationState, true),
	}
}

// containerState renders a container state variant. The current state of a
// container always has one variant set; when none is, it reports status
// "unknown". The last state of a never-restarted container is legitimately
// empty and renders as an empty map.
func containerState(state *corev1.ContainerState, allowEmpty bool) map[string]any {
	switch {
	case state.Running != nil:
		return map[string]any{
			"status":     "running",
			"started_at": derefTimestamp(timestamp(&state.Running.StartedAt)),
		}
	case state.Waiting != nil:
		return map[string]any{
			"status":  "waiting",
			"reason":  state.Waiting.Reason,
			"message": state.Waiting.Message,
		}
	case state.Terminated != nil:
		return map[string]any{
			"status":      "terminated",
			"exit_code":   state.Terminated.ExitCode,
			"reason":      state.Terminated.Reason,
			"message":     state.Terminated.Message,
			"started_at":  derefTimestamp(timestamp(&state.Terminated.StartedAt)),
			"finished_at": derefTimestamp(timestamp(&state.Terminated.FinishedAt)),
		}
	case allowEmpty:
		return map[string]any{}
	default:
		return map[string]any{"status": "unknown"}
	}
}

func derefTimestamp(ts *string) any {
	if ts == nil {
		return nil
	}
	return *ts
}
