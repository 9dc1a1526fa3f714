package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/delivery/http/dto"
	"github.com/wate11/HyMatch-project/internal/delivery/http/middleware"
	"github.com/wate11/HyMatch-project/internal/pkg/response"
)

type ApplicationsHandler struct{}

func NewApplicationsHandler() *ApplicationsHandler {
	return &ApplicationsHandler{}
}

// HandleList returns the raw decision ledger in append order.
func (h *ApplicationsHandler) HandleList(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	apps := s.Ledger().Applications()
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, dto.NewApplicationResponse(a))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// HandleChosen lists accepted jobs in catalog order. Empty is a normal
// state.
func (h *ApplicationsHandler) HandleChosen(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(s.ChosenJobs()))
}

// HandleRefused lists rejected jobs in catalog order.
func (h *ApplicationsHandler) HandleRefused(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(s.RefusedJobs()))
}
