package dto

import (
	"time"

	"github.com/google/uuid"
)

type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Token     string    `json:"token"`
	Language  string    `json:"language"`
	Route     string    `json:"route"`
	CreatedAt time.Time `json:"created_at"`
}

type NavigateRequest struct {
	Route string `json:"route"`
}

type LanguageRequest struct {
	Language string `json:"language"`
}

type TranslationsResponse struct {
	Language string            `json:"language"`
	Table    map[string]string `json:"table"`
}

type ContactOptionResponse struct {
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Detail string `json:"detail"`
	Hours  string `json:"hours"`
	URI    string `json:"uri"`
}
