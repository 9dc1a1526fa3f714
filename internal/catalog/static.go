package catalog

import (
	"context"

	"github.com/wate11/HyMatch-project/internal/domain/job"
)

// StaticSource serves the embedded seed listing. It backs the server when
// no database is configured and feeds the seeder command.
type StaticSource struct{}

func (StaticSource) Name() string { return "static" }

func (StaticSource) Load(_ context.Context) ([]job.Job, error) {
	return SeedJobs(), nil
}

// SeedJobs returns a fresh copy of the embedded catalog, in display order.
func SeedJobs() []job.Job {
	src := seedJobs
	out := make([]job.Job, len(src))
	copy(out, src)
	return out
}

var seedJobs = []job.Job{
	{
		ID:            "job-001",
		Title:         "Kitchen Staff",
		Category:      job.CategoryCooking,
		Salary:        "¥1,200/hour",
		LanguageLevel: job.LevelN3,
		CommuteTime:   "15 min",
		Location:      "Shibuya, Tokyo",
		WorkDays:      []job.Weekday{job.Mon, job.Tue, job.Wed, job.Thu, job.Fri},
		Highlights:    []string{"Free staff meals", "Training provided", "Friendly team"},
	},
	{
		ID:            "job-002",
		Title:         "Delivery Rider",
		Category:      job.CategoryDelivery,
		Salary:        "¥1,500/hour",
		LanguageLevel: job.LevelN4,
		CommuteTime:   "10 min",
		Location:      "Shinjuku, Tokyo",
		WorkDays:      []job.Weekday{job.Sat, job.Sun},
		Highlights:    []string{"Flexible shifts", "Bike provided", "Weekly pay"},
	},
	{
		ID:            "job-003",
		Title:         "Warehouse Sorter",
		Category:      job.CategoryWarehouse,
		Salary:        "¥1,100/hour",
		LanguageLevel: job.LevelN5,
		CommuteTime:   "25 min",
		Location:      "Kawasaki, Kanagawa",
		WorkDays:      []job.Weekday{job.Mon, job.Wed, job.Fri, job.Sat},
		Highlights:    []string{"No Japanese required for most tasks", "Night shift bonus"},
	},
	{
		ID:            "job-004",
		Title:         "Hotel Room Cleaning",
		Category:      job.CategoryCleaning,
		Salary:        "¥1,050/hour",
		LanguageLevel: job.LevelN4,
		CommuteTime:   "20 min",
		Location:      "Ueno, Tokyo",
		WorkDays:      []job.Weekday{job.Tue, job.Thu, job.Sat, job.Sun},
		Highlights:    []string{"Morning shifts only", "Uniform provided"},
	},
	{
		ID:            "job-005",
		Title:         "Convenience Store Clerk",
		Category:      job.CategoryRetail,
		Salary:        "¥1,150/hour",
		LanguageLevel: job.LevelN2,
		CommuteTime:   "5 min",
		Location:      "Ikebukuro, Tokyo",
		WorkDays:      []job.Weekday{job.Mon, job.Tue, job.Wed, job.Thu, job.Fri, job.Sat, job.Sun},
		Highlights:    []string{"Station front", "Shift freedom", "Late night allowance"},
	},
	{
		ID:            "job-006",
		Title:         "Izakaya Hall Staff",
		Category:      job.CategoryRestaurant,
		Salary:        "¥1,300/hour",
		LanguageLevel: job.LevelN2,
		CommuteTime:   "12 min",
		Location:      "Ebisu, Tokyo",
		WorkDays:      []job.Weekday{job.Wed, job.Thu, job.Fri, job.Sat},
		Highlights:    []string{"Evening shifts", "Staff discount", "Hair color free"},
	},
	{
		ID:            "job-007",
		Title:         "Office Data Entry",
		Category:      job.CategoryOffice,
		Salary:        "¥1,400/hour",
		LanguageLevel: job.LevelN1,
		CommuteTime:   "30 min",
		Location:      "Marunouchi, Tokyo",
		WorkDays:      []job.Weekday{job.Mon, job.Tue, job.Wed, job.Thu, job.Fri},
		Highlights:    []string{"Weekday daytime", "Business Japanese practice", "Transit covered"},
	},
	{
		ID:            "job-008",
		Title:         "Construction Helper",
		Category:      job.CategoryConstruction,
		Salary:        "¥1,600/hour",
		LanguageLevel: job.LevelN4,
		CommuteTime:   "40 min",
		Location:      "Yokohama, Kanagawa",
		WorkDays:      []job.Weekday{job.Mon, job.Tue, job.Thu, job.Fri, job.Sat},
		Highlights:    []string{"Daily pay option", "Safety gear provided", "Overtime available"},
	},
	{
		ID:            "job-009",
		Title:         "Bakery Morning Prep",
		Category:      job.CategoryCooking,
		Salary:        "¥1,250/hour",
		LanguageLevel: job.LevelN3,
		CommuteTime:   "18 min",
		Location:      "Kichijoji, Tokyo",
		WorkDays:      []job.Weekday{job.Tue, job.Wed, job.Thu, job.Fri, job.Sat},
		Highlights:    []string{"Early morning", "Bread to take home", "Quiet workplace"},
	},
	{
		ID:            "job-010",
		Title:         "Supermarket Stocker",
		Category:      job.CategoryRetail,
		Salary:        "¥1,000/hour",
		LanguageLevel: job.LevelN5,
		CommuteTime:   "8 min",
		Location:      "Nakano, Tokyo",
		WorkDays:      []job.Weekday{job.Mon, job.Wed, job.Fri, job.Sun},
		Highlights:    []string{"Simple tasks", "Short shifts welcome"},
	},
}
