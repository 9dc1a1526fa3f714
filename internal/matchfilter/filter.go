package matchfilter

import (
	"math"
	"sort"

	"github.com/wate11/HyMatch-project/internal/domain/job"
)

type SortKey string

const (
	// SortWage orders by parsed hourly wage, highest first.
	SortWage SortKey = "wage"
	// SortCommute orders by parsed commute minutes, shortest first.
	SortCommute SortKey = "commute"
	// SortDate keeps catalog order. Jobs carry no posting timestamp, so
	// this key is an alias for no reorder.
	SortDate SortKey = "date"
)

func ValidSortKey(k SortKey) bool {
	return k == SortWage || k == SortCommute || k == SortDate
}

const (
	DefaultWageMin = 0
	DefaultWageMax = 5000
)

// Settings is the filter configuration applied to the undecided pool.
// Empty category, level and weekday sets mean no constraint on that axis.
type Settings struct {
	Categories     []job.Category
	WageMin        int
	WageMax        int
	LanguageLevels []job.LanguageLevel
	WorkDays       []job.Weekday
}

func DefaultSettings() Settings {
	return Settings{WageMin: DefaultWageMin, WageMax: DefaultWageMax}
}

// Matches reports whether j passes every active constraint. The weekday
// constraint is an intersection test: one overlapping day is enough.
// A salary string with no parsable number is not excluded by the wage
// range; display data must not make a listing unreachable.
func (s Settings) Matches(j job.Job) bool {
	if len(s.Categories) > 0 && !containsCategory(s.Categories, j.Category) {
		return false
	}

	if wage, ok := job.ParseWage(j.Salary); ok {
		if wage < s.WageMin || wage > s.WageMax {
			return false
		}
	}

	if len(s.LanguageLevels) > 0 && !containsLevel(s.LanguageLevels, j.LanguageLevel) {
		return false
	}

	return j.AvailableOn(s.WorkDays)
}

// Apply filters jobs by s and orders the survivors by key. The input slice
// is never mutated; ties keep catalog order (stable sort).
func Apply(jobs []job.Job, s Settings, key SortKey) []job.Job {
	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if s.Matches(j) {
			out = append(out, j)
		}
	}

	switch key {
	case SortWage:
		sort.SliceStable(out, func(a, b int) bool {
			return wageOrZero(out[a]) > wageOrZero(out[b])
		})
	case SortCommute:
		sort.SliceStable(out, func(a, b int) bool {
			return commuteOrMax(out[a]) < commuteOrMax(out[b])
		})
	case SortDate:
		// catalog order
	}
	return out
}

func wageOrZero(j job.Job) int {
	w, ok := job.ParseWage(j.Salary)
	if !ok {
		return 0
	}
	return w
}

func commuteOrMax(j job.Job) int {
	m, ok := job.ParseCommuteMinutes(j.CommuteTime)
	if !ok {
		return math.MaxInt
	}
	return m
}

func containsCategory(set []job.Category, c job.Category) bool {
	for _, k := range set {
		if k == c {
			return true
		}
	}
	return false
}

func containsLevel(set []job.LanguageLevel, l job.LanguageLevel) bool {
	for _, k := range set {
		if k == l {
			return true
		}
	}
	return false
}
