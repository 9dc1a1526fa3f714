package routes

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/cache"
	"github.com/wate11/HyMatch-project/internal/contact"
	"github.com/wate11/HyMatch-project/internal/database"
	"github.com/wate11/HyMatch-project/internal/delivery/http/handler"
	v1 "github.com/wate11/HyMatch-project/internal/delivery/http/routes/v1"
	"github.com/wate11/HyMatch-project/internal/pkg/jwt"
	"github.com/wate11/HyMatch-project/internal/session"
	"github.com/wate11/HyMatch-project/internal/ws"
)

// Deps carries everything the route tree needs, built once in bootstrap.
type Deps struct {
	Sessions  *session.Manager
	JWT       jwt.Service
	Cache     *cache.Redis
	DB        database.DB
	Contact   []contact.Option
	WSHandler *ws.Handler
	Logger    *log.Logger
}

type Registry struct {
	health *handler.HealthHandler
	deps   Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{health: handler.NewHealthHandler(deps.Cache, deps.DB), deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Sessions:  r.deps.Sessions,
		JWT:       r.deps.JWT,
		Cache:     r.deps.Cache,
		Contact:   r.deps.Contact,
		WSHandler: r.deps.WSHandler,
		Logger:    r.deps.Logger,
	})
}
