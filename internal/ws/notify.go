package ws

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	Action    string `json:"action"`
	JobID     string `json:"jobId"`
	Timestamp string `json:"timestamp"`
}

// NotifyJobsUpdated tells listening clients that the posting set changed so
// they can re-run their current search.
func (h *Hub) NotifyJobsUpdated(action string, jobID uuid.UUID) {
	if h == nil {
		return
	}

	action = strings.ToLower(strings.TrimSpace(action))
	if action == "" {
		return
	}

	evt := JobsUpdatedEvent{
		Type:      "jobs_updated",
		Action:    action,
		JobID:     jobID.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
