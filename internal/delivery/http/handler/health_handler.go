package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/cache"
	"github.com/wate11/HyMatch-project/internal/database"
	"github.com/wate11/HyMatch-project/internal/pkg/response"
)

// HealthHandler reports liveness plus the state of the optional backing
// services. Both can be absent; the server still serves from memory.
type HealthHandler struct {
	cache *cache.Redis
	db    database.DB
}

func NewHealthHandler(c *cache.Redis, db database.DB) *HealthHandler {
	return &HealthHandler{cache: c, db: db}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	cacheStatus := "bypassed"
	if h.cache != nil && h.cache.Ping(c.Context()) == nil {
		cacheStatus = "ok"
	}

	dbStatus := "disabled"
	if h.db != nil {
		dbStatus = "ok"
		if err := h.db.Ping(c.Context()); err != nil {
			dbStatus = "unavailable"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"cache":      cacheStatus,
		"catalog_db": dbStatus,
	})
}
