package seeder

import (
	"context"

	"github.com/wate11/HyMatch-project/internal/database"
)

// SchemaSeeder creates the jobs table the catalog loader reads.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id             TEXT PRIMARY KEY,
			position       INT NOT NULL,
			title          TEXT NOT NULL,
			category       TEXT NOT NULL,
			salary         TEXT NOT NULL,
			language_level TEXT NOT NULL,
			commute_time   TEXT NOT NULL,
			location       TEXT NOT NULL,
			work_days      TEXT[] NOT NULL DEFAULT '{}',
			highlights     TEXT[] NOT NULL DEFAULT '{}',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}
