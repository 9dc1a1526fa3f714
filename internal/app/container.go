package app

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/wate11/HyMatch-project/internal/cache"
	"github.com/wate11/HyMatch-project/internal/catalog"
	"github.com/wate11/HyMatch-project/internal/config"
	"github.com/wate11/HyMatch-project/internal/contact"
	"github.com/wate11/HyMatch-project/internal/database"
	dbpostgres "github.com/wate11/HyMatch-project/internal/database/postgres"
	"github.com/wate11/HyMatch-project/internal/domain/job"
	"github.com/wate11/HyMatch-project/internal/pkg/jwt"
	"github.com/wate11/HyMatch-project/internal/session"
	"github.com/wate11/HyMatch-project/internal/ws"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Catalog  []job.Job
	Sessions *session.Manager
	JWT      jwt.Service
	Cache    *cache.Redis
	Contact  []contact.Option
	Hub      *ws.Hub
	Notifier *ws.Notifier
	Events   *ws.Handler
	Logger   *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The catalog database is optional. Without one (or when the load
	// fails) the embedded seed listing serves instead.
	var db database.DB
	source := catalog.Source(catalog.StaticSource{})
	if cfg.Database.Configured() {
		conn, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			logger.Printf("[Catalog] Database unavailable, using embedded catalog | error=%v", err)
		} else {
			db = conn
			source = catalog.NewPostgresSource(conn)
		}
	}

	jobs, err := source.Load(ctx)
	if err != nil || len(jobs) == 0 {
		if err != nil {
			logger.Printf("[Catalog] Load failed from %s, using embedded catalog | error=%v", source.Name(), err)
		}
		jobs = catalog.SeedJobs()
	} else {
		logger.Printf("[Catalog] Loaded | source=%s jobs=%d", source.Name(), len(jobs))
	}

	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewNotifier(hub)

	c := &Container{
		Config:   cfg,
		DB:       db,
		Catalog:  jobs,
		Sessions: session.NewManager(jobs, logger, notifier),
		JWT:      jwt.NewHMACService(cfg.JWT.SessionSecret, cfg.JWT.SessionTTL),
		Cache:    cache.NewRedis(logger),
		Contact:  contact.Options(cfg.Contact),
		Hub:      hub,
		Notifier: notifier,
		Events:   ws.NewHandler(hub, logger),
		Logger:   logger,
	}
	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
