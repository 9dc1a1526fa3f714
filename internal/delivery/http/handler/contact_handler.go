package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/contact"
	"github.com/wate11/HyMatch-project/internal/delivery/http/dto"
	"github.com/wate11/HyMatch-project/internal/delivery/http/middleware"
	"github.com/wate11/HyMatch-project/internal/i18n"
	"github.com/wate11/HyMatch-project/internal/pkg/response"
)

type ContactHandler struct {
	options []contact.Option
}

func NewContactHandler(options []contact.Option) *ContactHandler {
	return &ContactHandler{options: options}
}

// HandleGet lists the support destinations with platform URIs the client
// fires and forgets. Labels resolve through the session locale.
func (h *ContactHandler) HandleGet(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	lang := s.Language()
	out := make([]dto.ContactOptionResponse, 0, len(h.options))
	for _, opt := range h.options {
		out = append(out, dto.ContactOptionResponse{
			Kind:   opt.Kind,
			Label:  i18n.T(lang, opt.LabelKey),
			Detail: opt.Detail,
			Hours:  opt.Hours,
			URI:    opt.URI,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
