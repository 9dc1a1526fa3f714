package dto

import (
	"github.com/wate11/HyMatch-project/internal/domain/job"
	"github.com/wate11/HyMatch-project/internal/matchfilter"
)

type FilterSettingsPayload struct {
	JobTypes       []string `json:"job_types"`
	WageMin        int      `json:"wage_min"`
	WageMax        int      `json:"wage_max"`
	JapaneseLevels []string `json:"japanese_levels"`
	WorkDays       []string `json:"work_days"`
	SortBy         string   `json:"sort_by"`
}

func (p FilterSettingsPayload) ToSettings() (matchfilter.Settings, matchfilter.SortKey) {
	s := matchfilter.Settings{
		WageMin: p.WageMin,
		WageMax: p.WageMax,
	}
	// A payload without a wage range decodes to [0,0]; treat that as the
	// unconstrained default rather than a filter that excludes everything.
	if p.WageMin == 0 && p.WageMax == 0 {
		s.WageMin = matchfilter.DefaultWageMin
		s.WageMax = matchfilter.DefaultWageMax
	}
	for _, t := range p.JobTypes {
		s.Categories = append(s.Categories, job.Category(t))
	}
	for _, l := range p.JapaneseLevels {
		s.LanguageLevels = append(s.LanguageLevels, job.LanguageLevel(l))
	}
	for _, d := range p.WorkDays {
		s.WorkDays = append(s.WorkDays, job.Weekday(d))
	}
	return s, matchfilter.SortKey(p.SortBy)
}

func NewFilterSettingsPayload(s matchfilter.Settings, key matchfilter.SortKey) FilterSettingsPayload {
	p := FilterSettingsPayload{
		JobTypes:       make([]string, 0, len(s.Categories)),
		WageMin:        s.WageMin,
		WageMax:        s.WageMax,
		JapaneseLevels: make([]string, 0, len(s.LanguageLevels)),
		WorkDays:       make([]string, 0, len(s.WorkDays)),
		SortBy:         string(key),
	}
	for _, c := range s.Categories {
		p.JobTypes = append(p.JobTypes, string(c))
	}
	for _, l := range s.LanguageLevels {
		p.JapaneseLevels = append(p.JapaneseLevels, string(l))
	}
	for _, d := range s.WorkDays {
		p.WorkDays = append(p.WorkDays, string(d))
	}
	return p
}
