package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/wate11/HyMatch-project/internal/domain/application"
	"github.com/wate11/HyMatch-project/internal/swipe"
)

type PointerEventRequest struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type CommitRequest struct {
	Decision string `json:"decision"`
}

type ApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	JobID     string    `json:"job_id"`
	Decision  string    `json:"decision"`
	DecidedAt time.Time `json:"decided_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		Decision:  string(a.Decision),
		DecidedAt: a.DecidedAt,
	}
}

type GestureResponse struct {
	State     string               `json:"state"`
	Transform swipe.Transform      `json:"transform"`
	Committed *ApplicationResponse `json:"committed,omitempty"`
}
