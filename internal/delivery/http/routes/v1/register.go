package v1

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/wate11/HyMatch-project/internal/cache"
	"github.com/wate11/HyMatch-project/internal/contact"
	"github.com/wate11/HyMatch-project/internal/delivery/http/handler"
	"github.com/wate11/HyMatch-project/internal/delivery/http/middleware"
	"github.com/wate11/HyMatch-project/internal/pkg/jwt"
	"github.com/wate11/HyMatch-project/internal/session"
	"github.com/wate11/HyMatch-project/internal/ws"
)

type Deps struct {
	Sessions  *session.Manager
	JWT       jwt.Service
	Cache     *cache.Redis
	Contact   []contact.Option
	WSHandler *ws.Handler
	Logger    *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	sessionMw := middleware.NewSessionMiddleware(deps.JWT, deps.Sessions)

	sessionHandler := handler.NewSessionHandler(deps.Sessions, deps.JWT)
	jobsHandler := handler.NewJobsHandler(deps.Cache, deps.Logger)
	swipeHandler := handler.NewSwipeHandler()
	appsHandler := handler.NewApplicationsHandler()
	filtersHandler := handler.NewFiltersHandler()
	profileHandler := handler.NewProfileHandler()
	localeHandler := handler.NewLocaleHandler()
	contactHandler := handler.NewContactHandler(deps.Contact)

	// Session creation and the event stream are the only open endpoints.
	r.Post("/sessions", sessionHandler.HandleCreate)
	if deps.WSHandler != nil {
		r.Get("/events", deps.WSHandler.HandleEventsWS)
	}

	protected := r.Group("", sessionMw.Middleware())

	protected.Delete("/sessions/me", sessionHandler.HandleEnd)
	protected.Post("/navigate", sessionHandler.HandleNavigate)

	protected.Get("/jobs", jobsHandler.HandleListJobs)
	protected.Get("/jobs/window", jobsHandler.HandleWindow)

	protected.Post("/swipe/pointer", swipeHandler.HandlePointer)
	protected.Post("/swipe/commit", swipeHandler.HandleCommit)
	protected.Get("/swipe/state", swipeHandler.HandleState)

	protected.Get("/applications", appsHandler.HandleList)
	protected.Get("/applications/chosen", appsHandler.HandleChosen)
	protected.Get("/applications/refused", appsHandler.HandleRefused)

	protected.Get("/filters", filtersHandler.HandleGet)
	protected.Put("/filters", filtersHandler.HandlePut)

	protected.Get("/profile", profileHandler.HandleGet)
	protected.Put("/profile", profileHandler.HandlePut)
	protected.Post("/profile/reminder/dismiss", profileHandler.HandleDismissReminder)

	protected.Get("/translations", localeHandler.HandleTranslations)
	protected.Put("/language", localeHandler.HandleSetLanguage)

	protected.Get("/contact", contactHandler.HandleGet)
}
