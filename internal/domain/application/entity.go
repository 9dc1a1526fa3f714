package application

import (
	"time"

	"github.com/google/uuid"
)

// Decision is the user's verdict on a job. It is recorded once and never
// changes for the rest of the session.
type Decision string

const (
	DecisionChosen  Decision = "chosen"
	DecisionRefused Decision = "refused"
)

func ValidDecision(d Decision) bool {
	return d == DecisionChosen || d == DecisionRefused
}

// Application records one committed swipe. Write-once: created the moment
// a swipe commits, never updated or deleted.
type Application struct {
	ID        uuid.UUID
	JobID     string
	Decision  Decision
	DecidedAt time.Time
}
