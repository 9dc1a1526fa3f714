package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/delivery/http/dto"
	"github.com/wate11/HyMatch-project/internal/delivery/http/middleware"
	"github.com/wate11/HyMatch-project/internal/domain/application"
	"github.com/wate11/HyMatch-project/internal/pkg/response"
	"github.com/wate11/HyMatch-project/internal/session"
)

type SwipeHandler struct{}

func NewSwipeHandler() *SwipeHandler {
	return &SwipeHandler{}
}

// HandlePointer feeds one discrete gesture event to the top card. A
// release past the threshold commits the decision in the same call.
func (h *SwipeHandler) HandlePointer(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.PointerEventRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	res, err := s.HandlePointer(session.PointerEvent{
		Type: session.PointerEventType(req.Type),
		X:    req.X,
		Y:    req.Y,
	})
	if err != nil {
		return mapSwipeError(err)
	}

	out := dto.GestureResponse{State: string(res.State), Transform: res.Transform}
	if res.Committed != nil {
		app := dto.NewApplicationResponse(*res.Committed)
		out.Committed = &app
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// HandleCommit is the button path: decide on the top card without a drag.
func (h *SwipeHandler) HandleCommit(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.CommitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	app, err := s.Commit(application.Decision(req.Decision))
	if err != nil {
		return mapSwipeError(err)
	}

	return response.Success(c, fiber.StatusCreated, "decision recorded", dto.NewApplicationResponse(app))
}

// HandleState advances the running card animation and reports the current
// transform, for clients polling the spring-back or fly-off.
func (h *SwipeHandler) HandleState(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	state, transform := s.GestureFrame(time.Now())
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GestureResponse{
		State:     string(state),
		Transform: transform,
	})
}

func mapSwipeError(err error) error {
	switch {
	case errors.Is(err, session.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, session.ErrExhausted):
		return middleware.NewAppError(fiber.StatusConflict, "No undecided jobs left", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
