package handler

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/cache"
	"github.com/wate11/HyMatch-project/internal/delivery/http/dto"
	"github.com/wate11/HyMatch-project/internal/delivery/http/middleware"
	"github.com/wate11/HyMatch-project/internal/pkg/response"
)

type JobsHandler struct {
	cache  *cache.Redis
	logger *log.Logger
}

func NewJobsHandler(c *cache.Redis, logger *log.Logger) *JobsHandler {
	return &JobsHandler{cache: c, logger: logger}
}

// HandleListJobs returns the filtered, sorted undecided pool. The view is
// pure over (ledger version, filter version), so it is memoized under a
// key derived from both; any commit or filter change lands on a new key.
func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ledgerVersion, filterVersion := s.Versions()
	key := cache.ListingKey(s.ID, ledgerVersion, filterVersion)

	if h.cache != nil {
		var cached []dto.JobResponse
		hit, err := h.cache.GetJSON(c.Context(), key, &cached)
		if err == nil && hit {
			if h.logger != nil {
				h.logger.Printf("[Jobs] Cache HIT: %s", key)
			}
			return response.Success(c, fiber.StatusOK, response.MessageOK, cached)
		}
	}

	out := dto.NewJobResponses(s.Listing())

	if h.cache != nil {
		_ = h.cache.SetJSON(c.Context(), key, out, 0)
		if h.logger != nil {
			h.logger.Printf("[Jobs] Cache SET: %s", key)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// HandleWindow returns the top cards of the swipe deck with depth cues.
// An empty window is the exhausted display state, not an error.
func (h *JobsHandler) HandleWindow(c fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	cards, exhausted := s.Window()
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWindowResponse(cards, exhausted))
}
