package extract

import (
	"sort"
	"time"

	corev1 "k8s.io/api/core/v1"
)

// EventRecord is the projection of one event tied to a resource.
type EventRecord struct {
	Type           string       `json:"type"`
	Reason         string       `json:"reason"`
	Message        string       `json:"message"`
	FirstTimestamp *string      `json:"first_timestamp"`
	LastTimestamp  *string      `json:"last_timestamp"`
	Count          int32        `json:"count"`
	Source         *string      `json:"source"`
	Object         *EventObject `json:"object"`
}

// EventObject identifies the object an event refers to.
type EventObject struct {
	Kind      *string `json:"kind"`
	Name      *string `json:"name"`
	Namespace *string `json:"namespace"`
}

// EventsFrom projects an event listing, newest first. Each event sorts by
// its last timestamp, falling back to its first timestamp; events with
// neither sort to the end. Ties break by involved object name, then reason,
// so the ordering is stable across identical listings.
func EventsFrom(events []corev1.Event) []EventRecord {
	sorted := make([]corev1.Event, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, oki := eventTime(&sorted[i])
		tj, okj := eventTime(&sorted[j])
		if oki != okj {
			return oki
		}
		if oki && !ti.Equal(tj) {
			return ti.After(tj)
		}
		if sorted[i].InvolvedObject.Name != sorted[j].InvolvedObject.Name {
			return sorted[i].InvolvedObject.Name < sorted[j].InvolvedObject.Name
		}
		return sorted[i].Reason < sorted[j].Reason
	})

	result := make([]EventRecord, 0, len(sorted))
	for i := range sorted {
		result = append(result, eventRecord(&sorted[i]))
	}
	return result
}

// eventTime resolves the sort key for an event. Returns false when the event
// carries no usable timestamp.
func eventTime(event *corev1.Event) (time.Time, bool) {
	if !event.LastTimestamp.IsZero() {
		return event.LastTimestamp.Time, true
	}
	if !event.FirstTimestamp.IsZero() {
		return event.FirstTimestamp.Time, true
	}
	return time.Time{}, false
}

func eventRecord(event *corev1.Event) EventRecord {
	count := event.Count
	if count == 0 {
		count = 1
	}

	return EventRecord{
		Type:           event.Type,
		Reason:         event.Reason,
		Message:        event.Message,
		FirstTimestamp: timestamp(&event.FirstTimestamp),
		LastTimestamp:  timestamp(&event.LastTimestamp),
		Count:          count,
		Source:         strOrNil(event.Source.Component),
		Object: &EventObject{
			Kind:      strOrNil(event.InvolvedObject.Kind),
			Name:      strOrNil(event.InvolvedObject.Name),
			Namespace: strOrNil(event.InvolvedObject.Namespace),
		},
	}
}
