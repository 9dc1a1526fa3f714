package profile

import (
	"strings"

	"github.com/wate11/HyMatch-project/internal/domain/job"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// UserProfile is the single per-session user record. The edit flow stages
// a full draft and commits it wholesale; the core never patches fields
// individually.
type UserProfile struct {
	ID                   string
	FirstName            string
	LastName             string
	Age                  int
	Gender               Gender
	Nationality          string
	ProfilePicture       string
	NearestStationHome   string
	WalkTimeHome         int
	NearestStationSchool string
	WalkTimeSchool       int
	PostalCode           string
	Prefecture           string
	City                 string
	Address              string
	Email                string
	Phone                string
	VisaType             string
	VisaStatusImage      string
	LanguageLevel        job.LanguageLevel
	PreferredDays        []job.Weekday
	PreferredJobTypes    []job.Category
	WorkExperience       string
}

// requiredFields gates both save validation and the completeness nudge.
var requiredFields = []string{"first_name", "last_name", "email", "phone"}

// MissingFields returns the required fields that are still empty, in a
// stable order.
func (u UserProfile) MissingFields() []string {
	values := map[string]string{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"phone":      u.Phone,
	}

	var missing []string
	for _, f := range requiredFields {
		if strings.TrimSpace(values[f]) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Complete reports whether every required field is filled in.
func (u UserProfile) Complete() bool {
	return len(u.MissingFields()) == 0
}
