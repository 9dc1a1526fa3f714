package seeder

import (
	"context"
	"fmt"
	"log"

	"github.com/wate11/HyMatch-project/internal/database"
)

// Runner applies the catalog seeders in order and stops at the first
// failure. Every seeder is an upsert, so a partial run can be retried.
type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("[Seed] Applied | seeder=%s", s.Name())
		}
	}
	return nil
}
