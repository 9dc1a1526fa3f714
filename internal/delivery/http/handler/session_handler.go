package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/delivery/http/dto"
	"github.com/wate11/HyMatch-project/internal/delivery/http/middleware"
	"github.com/wate11/HyMatch-project/internal/pkg/jwt"
	"github.com/wate11/HyMatch-project/internal/pkg/response"
	"github.com/wate11/HyMatch-project/internal/session"
)

type SessionHandler struct {
	sessions *session.Manager
	jwt      jwt.Service
}

func NewSessionHandler(sessions *session.Manager, jwtSvc jwt.Service) *SessionHandler {
	return &SessionHandler{sessions: sessions, jwt: jwtSvc}
}

// HandleCreate starts a session and mints its bearer token. The only
// unauthenticated mutation in the API.
func (h *SessionHandler) HandleCreate(c fiber.Ctx) error {
	s := h.sessions.Create()

	token, err := h.jwt.GenerateSessionToken(s.ID)
	if err != nil {
		h.sessions.Delete(s.ID)
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := dto.SessionResponse{
		SessionID: s.ID,
		Token:     token,
		Language:  string(s.Language()),
		Route:     string(s.Route()),
		CreatedAt: s.CreatedAt,
	}
	return response.Success(c, fiber.StatusCreated, "session created", res)
}

// HandleEnd tears the session down; its ledger and profile vanish with it.
func (h *SessionHandler) HandleEnd(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	h.sessions.Delete(s.ID)
	return response.Success(c, fiber.StatusOK, "session ended", nil)
}

func (h *SessionHandler) HandleNavigate(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.NavigateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := s.Navigate(session.Route(req.Route)); err != nil {
		if errors.Is(err, session.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unknown route", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"route": req.Route})
}
