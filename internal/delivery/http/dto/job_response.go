package dto

import (
	"github.com/wate11/HyMatch-project/internal/domain/job"
	"github.com/wate11/HyMatch-project/internal/session"
)

type JobResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Salary        string   `json:"salary"`
	LanguageLevel string   `json:"language_level"`
	CommuteTime   string   `json:"commute_time"`
	Location      string   `json:"location"`
	WorkDays      []string `json:"work_days"`
	Highlights    []string `json:"highlights"`
}

func NewJobResponse(j job.Job) JobResponse {
	workDays := make([]string, 0, len(j.WorkDays))
	for _, d := range j.WorkDays {
		workDays = append(workDays, string(d))
	}
	return JobResponse{
		ID:            j.ID,
		Title:         j.Title,
		Category:      string(j.Category),
		Salary:        j.Salary,
		LanguageLevel: string(j.LanguageLevel),
		CommuteTime:   j.CommuteTime,
		Location:      j.Location,
		WorkDays:      workDays,
		Highlights:    j.Highlights,
	}
}

func NewJobResponses(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

type WindowCardResponse struct {
	Job     JobResponse `json:"job"`
	Top     bool        `json:"top"`
	Scale   float64     `json:"scale"`
	OffsetY float64     `json:"offset_y"`
}

type WindowResponse struct {
	Cards     []WindowCardResponse `json:"cards"`
	Exhausted bool                 `json:"exhausted"`
	// Placeholder is the empty-deck card shown when the pool runs out.
	Placeholder *JobResponse `json:"placeholder,omitempty"`
}

func NewWindowResponse(cards []session.WindowCard, exhausted bool) WindowResponse {
	out := WindowResponse{
		Cards:     make([]WindowCardResponse, 0, len(cards)),
		Exhausted: exhausted,
	}
	for _, c := range cards {
		out.Cards = append(out.Cards, WindowCardResponse{
			Job:     NewJobResponse(c.Job),
			Top:     c.Top,
			Scale:   c.Scale,
			OffsetY: c.OffsetY,
		})
	}
	if exhausted {
		p := NewJobResponse(emptyDeckPlaceholder())
		out.Placeholder = &p
	}
	return out
}

func emptyDeckPlaceholder() job.Job {
	return job.Job{
		ID:            "empty",
		Title:         "No more jobs available",
		Category:      job.CategoryOffice,
		Salary:        "¥0",
		LanguageLevel: job.LevelN5,
		CommuteTime:   "0 minutes",
		Location:      "Everywhere",
		WorkDays:      []job.Weekday{},
		Highlights:    []string{"Check back later for new opportunities!"},
	}
}
