package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/delivery/http/dto"
	"github.com/wate11/HyMatch-project/internal/delivery/http/middleware"
	"github.com/wate11/HyMatch-project/internal/pkg/response"
	"github.com/wate11/HyMatch-project/internal/session"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

func (h *ProfileHandler) HandleGet(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	u, reminder := s.Profile()
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(u, reminder))
}

// HandlePut stages a full profile draft and commits it atomically. A
// missing required field blocks the whole save.
func (h *ProfileHandler) HandlePut(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.ProfilePayload
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := s.SaveProfile(req.ToProfile()); err != nil {
		var vErr *session.ProfileValidationError
		if errors.As(err, &vErr) {
			return middleware.NewAppError(
				fiber.StatusUnprocessableEntity,
				"Please fill in all required fields",
				fiber.Map{"missing_fields": vErr.Missing},
				err,
			)
		}
		if errors.Is(err, session.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile payload", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	u, reminder := s.Profile()
	return response.Success(c, fiber.StatusOK, "profile saved", dto.NewProfileResponse(u, reminder))
}

// HandleDismissReminder hides the incompleteness nudge for the current
// view; the completeness state itself is untouched.
func (h *ProfileHandler) HandleDismissReminder(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	s.DismissReminder()
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
