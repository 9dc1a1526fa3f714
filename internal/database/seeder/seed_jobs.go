package seeder

import (
	"context"

	"github.com/wate11/HyMatch-project/internal/catalog"
	"github.com/wate11/HyMatch-project/internal/database"
)

// JobsSeeder writes the embedded catalog into the jobs table. Upsert keyed
// on id so re-running the seeder is safe.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	for i, j := range catalog.SeedJobs() {
		workDays := make([]string, 0, len(j.WorkDays))
		for _, d := range j.WorkDays {
			workDays = append(workDays, string(d))
		}

		_, err := db.Exec(ctx, `
			INSERT INTO jobs (id, position, title, category, salary, language_level, commute_time, location, work_days, highlights)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				position = EXCLUDED.position,
				title = EXCLUDED.title,
				category = EXCLUDED.category,
				salary = EXCLUDED.salary,
				language_level = EXCLUDED.language_level,
				commute_time = EXCLUDED.commute_time,
				location = EXCLUDED.location,
				work_days = EXCLUDED.work_days,
				highlights = EXCLUDED.highlights
		`,
			j.ID, i, j.Title, string(j.Category), j.Salary, string(j.LanguageLevel),
			j.CommuteTime, j.Location, workDays, j.Highlights,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
