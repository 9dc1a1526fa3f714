package job

// Category is the fixed set of job type tags used across the catalog,
// filters and profile preferences.
type Category string

const (
	CategoryCooking      Category = "cooking"
	CategoryDelivery     Category = "delivery"
	CategoryWarehouse    Category = "warehouse"
	CategoryCleaning     Category = "cleaning"
	CategoryRetail       Category = "retail"
	CategoryRestaurant   Category = "restaurant"
	CategoryOffice       Category = "office"
	CategoryConstruction Category = "construction"
)

func Categories() []Category {
	return []Category{
		CategoryCooking,
		CategoryDelivery,
		CategoryWarehouse,
		CategoryCleaning,
		CategoryRetail,
		CategoryRestaurant,
		CategoryOffice,
		CategoryConstruction,
	}
}

func ValidCategory(c Category) bool {
	for _, k := range Categories() {
		if k == c {
			return true
		}
	}
	return false
}

// LanguageLevel is the JLPT proficiency tier a job requires. N1 is the
// strongest tier, N5 the weakest.
type LanguageLevel string

const (
	LevelN1 LanguageLevel = "N1"
	LevelN2 LanguageLevel = "N2"
	LevelN3 LanguageLevel = "N3"
	LevelN4 LanguageLevel = "N4"
	LevelN5 LanguageLevel = "N5"
)

func LanguageLevels() []LanguageLevel {
	return []LanguageLevel{LevelN1, LevelN2, LevelN3, LevelN4, LevelN5}
}

func ValidLanguageLevel(l LanguageLevel) bool {
	for _, k := range LanguageLevels() {
		if k == l {
			return true
		}
	}
	return false
}

type Weekday string

const (
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
	Sat Weekday = "Sat"
	Sun Weekday = "Sun"
)

func Weekdays() []Weekday {
	return []Weekday{Mon, Tue, Wed, Thu, Fri, Sat, Sun}
}

func ValidWeekday(d Weekday) bool {
	for _, k := range Weekdays() {
		if k == d {
			return true
		}
	}
	return false
}

// Job is one catalog listing. Loaded once at startup, never mutated.
// Salary and CommuteTime are display strings; the numeric values used by
// filtering and sorting are parsed with ParseWage and ParseCommuteMinutes.
type Job struct {
	ID            string
	Title         string
	Category      Category
	Salary        string
	LanguageLevel LanguageLevel
	CommuteTime   string
	Location      string
	WorkDays      []Weekday
	Highlights    []string
}

// AvailableOn reports whether the job's work days intersect the given set.
// An empty set means no constraint.
func (j Job) AvailableOn(days []Weekday) bool {
	if len(days) == 0 {
		return true
	}
	for _, want := range days {
		for _, have := range j.WorkDays {
			if want == have {
				return true
			}
		}
	}
	return false
}
