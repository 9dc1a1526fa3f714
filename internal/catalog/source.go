package catalog

import (
	"context"

	"github.com/wate11/HyMatch-project/internal/domain/job"
)

// Source loads the job catalog once at startup. The catalog is read-only
// for the process lifetime; sessions borrow it by reference.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]job.Job, error)
}
