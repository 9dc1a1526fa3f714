package contact

import (
	"github.com/wate11/HyMatch-project/internal/config"
)

// Option is one way to reach support. URI is handed to the platform's
// URI-handling facility as-is; no response is expected.
type Option struct {
	Kind     string
	LabelKey string
	Detail   string
	Hours    string
	URI      string
}

// Options builds the contact screen entries from the configured support
// destinations.
func Options(cfg config.ContactConfig) []Option {
	return []Option{
		{
			Kind:     "phone",
			LabelKey: "contact.phone",
			Detail:   cfg.SupportPhone,
			Hours:    "Mon-Fri 9:00-18:00",
			URI:      "tel:" + cfg.SupportPhone,
		},
		{
			Kind:     "email",
			LabelKey: "contact.email",
			Detail:   cfg.SupportEmail,
			Hours:    "Response within 24 hours",
			URI:      "mailto:" + cfg.SupportEmail,
		},
	}
}
