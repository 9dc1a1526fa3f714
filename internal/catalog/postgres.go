package catalog

import (
	"context"
	"fmt"

	"github.com/wate11/HyMatch-project/internal/database"
	"github.com/wate11/HyMatch-project/internal/domain/job"
)

// PostgresSource loads the catalog from the jobs table written by the
// seeder. Position preserves the catalog's display order.
type PostgresSource struct {
	db database.DB
}

func NewPostgresSource(db database.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Name() string { return "postgres" }

func (s *PostgresSource) Load(ctx context.Context) ([]job.Job, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("nil db")
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, title, category, salary, language_level, commute_time, location, work_days, highlights
		FROM jobs
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var out []job.Job
	for rows.Next() {
		var (
			j          job.Job
			category   string
			level      string
			workDays   []string
			highlights []string
		)
		if err := rows.Scan(&j.ID, &j.Title, &category, &j.Salary, &level, &j.CommuteTime, &j.Location, &workDays, &highlights); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}

		j.Category = job.Category(category)
		j.LanguageLevel = job.LanguageLevel(level)
		j.WorkDays = make([]job.Weekday, 0, len(workDays))
		for _, d := range workDays {
			j.WorkDays = append(j.WorkDays, job.Weekday(d))
		}
		j.Highlights = highlights
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return out, nil
}
