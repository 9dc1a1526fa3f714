package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/wate11/HyMatch-project/internal/domain/application"
	"github.com/wate11/HyMatch-project/internal/domain/job"
)

type DecisionRecordedEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	JobID     string `json:"job_id"`
	JobTitle  string `json:"job_title"`
	Decision  string `json:"decision"`
	Timestamp string `json:"timestamp"`
}

type PoolExhaustedEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// Notifier bridges session events onto the hub. It satisfies the session
// package's EventSink.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) DecisionRecorded(sessionID uuid.UUID, app application.Application, j job.Job) {
	if n == nil || n.hub == nil {
		return
	}
	evt := DecisionRecordedEvent{
		Type:      "decision_recorded",
		SessionID: sessionID.String(),
		JobID:     app.JobID,
		JobTitle:  j.Title,
		Decision:  string(app.Decision),
		Timestamp: app.DecidedAt.UTC().Format(time.RFC3339),
	}
	if b, err := json.Marshal(evt); err == nil {
		n.hub.Broadcast(b)
	}
}

func (n *Notifier) PoolExhausted(sessionID uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}
	evt := PoolExhaustedEvent{
		Type:      "pool_exhausted",
		SessionID: sessionID.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if b, err := json.Marshal(evt); err == nil {
		n.hub.Broadcast(b)
	}
}
