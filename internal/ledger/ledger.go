package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wate11/HyMatch-project/internal/domain/application"
	"github.com/wate11/HyMatch-project/internal/domain/job"
)

// Ledger is the append-only record of swipe decisions for one session.
// At most one application exists per job id; a duplicate Record call is a
// no-op. Version increases on every successful append so derived views can
// be cached and invalidated by key.
type Ledger struct {
	mu      sync.Mutex
	apps    []application.Application
	byJobID map[string]int
	version uint64

	now   func() time.Time
	newID func() uuid.UUID
}

func New() *Ledger {
	return &Ledger{
		byJobID: make(map[string]int),
		now:     time.Now,
		newID:   uuid.New,
	}
}

// Record appends an application for jobID. Returns the stored application
// and true when a new record was created; when jobID already carries a
// decision, the existing record and false.
func (l *Ledger) Record(jobID string, decision application.Decision) (application.Application, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if idx, ok := l.byJobID[jobID]; ok {
		return l.apps[idx], false
	}

	app := application.Application{
		ID:        l.newID(),
		JobID:     jobID,
		Decision:  decision,
		DecidedAt: l.now().UTC(),
	}
	l.byJobID[jobID] = len(l.apps)
	l.apps = append(l.apps, app)
	l.version++
	return app, true
}

// HasDecision reports whether jobID already carries an application.
func (l *Ledger) HasDecision(jobID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.byJobID[jobID]
	return ok
}

// Applications returns a copy of the ledger in append order.
func (l *Ledger) Applications() []application.Application {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]application.Application, len(l.apps))
	copy(out, l.apps)
	return out
}

// Size returns the number of recorded applications.
func (l *Ledger) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.apps)
}

// Version returns a counter that increases on every append. Zero means an
// empty ledger.
func (l *Ledger) Version() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.version
}

// ChosenJobs returns the catalog subset the user accepted, preserving
// catalog order.
func (l *Ledger) ChosenJobs(catalog []job.Job) []job.Job {
	return l.decidedJobs(catalog, application.DecisionChosen)
}

// RefusedJobs returns the catalog subset the user rejected, preserving
// catalog order.
func (l *Ledger) RefusedJobs(catalog []job.Job) []job.Job {
	return l.decidedJobs(catalog, application.DecisionRefused)
}

func (l *Ledger) decidedJobs(catalog []job.Job, d application.Decision) []job.Job {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]job.Job, 0, len(l.apps))
	for _, j := range catalog {
		idx, ok := l.byJobID[j.ID]
		if !ok {
			continue
		}
		if l.apps[idx].Decision == d {
			out = append(out, j)
		}
	}
	return out
}
