package dto

import (
	"github.com/wate11/HyMatch-project/internal/domain/job"
	"github.com/wate11/HyMatch-project/internal/domain/profile"
)

type ProfilePayload struct {
	FirstName            string   `json:"first_name"`
	LastName             string   `json:"last_name"`
	Age                  int      `json:"age"`
	Gender               string   `json:"gender"`
	Nationality          string   `json:"nationality"`
	ProfilePicture       string   `json:"profile_picture,omitempty"`
	NearestStationHome   string   `json:"nearest_station_home"`
	WalkTimeHome         int      `json:"walk_time_home"`
	NearestStationSchool string   `json:"nearest_station_school"`
	WalkTimeSchool       int      `json:"walk_time_school"`
	PostalCode           string   `json:"postal_code"`
	Prefecture           string   `json:"prefecture"`
	City                 string   `json:"city"`
	Address              string   `json:"address"`
	Email                string   `json:"email"`
	Phone                string   `json:"phone"`
	VisaType             string   `json:"visa_type"`
	VisaStatusImage      string   `json:"visa_status_image,omitempty"`
	JapaneseLevel        string   `json:"japanese_level"`
	PreferredDays        []string `json:"preferred_days"`
	PreferredJobTypes    []string `json:"preferred_job_types"`
	WorkExperience       string   `json:"work_experience"`
}

func (p ProfilePayload) ToProfile() profile.UserProfile {
	u := profile.UserProfile{
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		Age:                  p.Age,
		Gender:               profile.Gender(p.Gender),
		Nationality:          p.Nationality,
		ProfilePicture:       p.ProfilePicture,
		NearestStationHome:   p.NearestStationHome,
		WalkTimeHome:         p.WalkTimeHome,
		NearestStationSchool: p.NearestStationSchool,
		WalkTimeSchool:       p.WalkTimeSchool,
		PostalCode:           p.PostalCode,
		Prefecture:           p.Prefecture,
		City:                 p.City,
		Address:              p.Address,
		Email:                p.Email,
		Phone:                p.Phone,
		VisaType:             p.VisaType,
		VisaStatusImage:      p.VisaStatusImage,
		LanguageLevel:        job.LanguageLevel(p.JapaneseLevel),
		WorkExperience:       p.WorkExperience,
	}
	for _, d := range p.PreferredDays {
		u.PreferredDays = append(u.PreferredDays, job.Weekday(d))
	}
	for _, t := range p.PreferredJobTypes {
		u.PreferredJobTypes = append(u.PreferredJobTypes, job.Category(t))
	}
	return u
}

type ProfileResponse struct {
	Profile         *ProfilePayload `json:"profile"`
	Complete        bool            `json:"complete"`
	MissingFields   []string        `json:"missing_fields,omitempty"`
	ReminderVisible bool            `json:"reminder_visible"`
}

func NewProfileResponse(u *profile.UserProfile, reminderVisible bool) ProfileResponse {
	res := ProfileResponse{ReminderVisible: reminderVisible}
	if u == nil {
		res.MissingFields = profile.UserProfile{}.MissingFields()
		return res
	}

	p := ProfilePayload{
		FirstName:            u.FirstName,
		LastName:             u.LastName,
		Age:                  u.Age,
		Gender:               string(u.Gender),
		Nationality:          u.Nationality,
		ProfilePicture:       u.ProfilePicture,
		NearestStationHome:   u.NearestStationHome,
		WalkTimeHome:         u.WalkTimeHome,
		NearestStationSchool: u.NearestStationSchool,
		WalkTimeSchool:       u.WalkTimeSchool,
		PostalCode:           u.PostalCode,
		Prefecture:           u.Prefecture,
		City:                 u.City,
		Address:              u.Address,
		Email:                u.Email,
		Phone:                u.Phone,
		VisaType:             u.VisaType,
		VisaStatusImage:      u.VisaStatusImage,
		JapaneseLevel:        string(u.LanguageLevel),
		PreferredDays:        make([]string, 0, len(u.PreferredDays)),
		PreferredJobTypes:    make([]string, 0, len(u.PreferredJobTypes)),
		WorkExperience:       u.WorkExperience,
	}
	for _, d := range u.PreferredDays {
		p.PreferredDays = append(p.PreferredDays, string(d))
	}
	for _, t := range u.PreferredJobTypes {
		p.PreferredJobTypes = append(p.PreferredJobTypes, string(t))
	}

	res.Profile = &p
	res.Complete = u.Complete()
	res.MissingFields = u.MissingFields()
	return res
}
