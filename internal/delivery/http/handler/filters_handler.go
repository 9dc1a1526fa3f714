package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/delivery/http/dto"
	"github.com/wate11/HyMatch-project/internal/delivery/http/middleware"
	"github.com/wate11/HyMatch-project/internal/pkg/response"
	"github.com/wate11/HyMatch-project/internal/session"
)

type FiltersHandler struct{}

func NewFiltersHandler() *FiltersHandler {
	return &FiltersHandler{}
}

func (h *FiltersHandler) HandleGet(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	settings, sortBy := s.Filters()
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewFilterSettingsPayload(settings, sortBy))
}

// HandlePut replaces the filter settings and sort key wholesale. The
// undecided pool is recomputed and the swipe cursor restarts; decided
// jobs stay out regardless.
func (h *FiltersHandler) HandlePut(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.FilterSettingsPayload
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	settings, sortBy := req.ToSettings()
	if err := s.SetFilters(settings, sortBy); err != nil {
		if errors.Is(err, session.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid filter settings", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	settings, sortBy = s.Filters()
	return response.Success(c, fiber.StatusOK, "filters updated", dto.NewFilterSettingsPayload(settings, sortBy))
}
