package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/delivery/http/dto"
	"github.com/wate11/HyMatch-project/internal/delivery/http/middleware"
	"github.com/wate11/HyMatch-project/internal/i18n"
	"github.com/wate11/HyMatch-project/internal/pkg/response"
	"github.com/wate11/HyMatch-project/internal/session"
)

type LocaleHandler struct{}

func NewLocaleHandler() *LocaleHandler {
	return &LocaleHandler{}
}

// HandleTranslations returns the key→string table for the session locale,
// or for an explicit ?lang= override.
func (h *LocaleHandler) HandleTranslations(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	lang := s.Language()
	if q := c.Query("lang"); q != "" {
		override := i18n.Language(q)
		if !i18n.ValidLanguage(override) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported language", nil, nil)
		}
		lang = override
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TranslationsResponse{
		Language: string(lang),
		Table:    i18n.Table(lang),
	})
}

func (h *LocaleHandler) HandleSetLanguage(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.LanguageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := s.SetLanguage(i18n.Language(req.Language)); err != nil {
		if errors.Is(err, session.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported language", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"language": req.Language})
}
