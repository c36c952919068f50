package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"portfolio-api/internal/auth"
	"portfolio-api/internal/config"
	"portfolio-api/internal/contact"
	"portfolio-api/internal/db"
	"portfolio-api/internal/graph"
	"portfolio-api/internal/health"
	"portfolio-api/internal/logger"
	"portfolio-api/internal/messaging"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/pricing"
	"portfolio-api/internal/profile"
	"portfolio-api/internal/project"
	"portfolio-api/internal/skill"

	"github.com/go-chi/chi/v5"
)

type App struct {
	config *config.Config
	router chi.Router
	server *http.Server
	logger *slog.Logger
}

func New() *App {
	slogLogger := logger.NewWithServiceContext("portfolio-api", Version)

	// Set as default logger so slog.Info() uses the same handler
	slog.SetDefault(slogLogger)

	slogLogger.Info("initializing application")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	slogLogger.Info("config loaded", "env", cfg.Env)

	app := &App{
		config: cfg,
		router: chi.NewRouter(),
		logger: slogLogger,
	}

	database := db.New(cfg.Database)

	ctx := context.Background()
	err = db.RunMigrations(ctx, database,
		(*profile.Profile)(nil),
		(*project.Project)(nil),
		(*skill.Skill)(nil),
		(*pricing.Pricing)(nil),
		(*contact.Contact)(nil),
		(*auth.User)(nil),
		(*auth.RefreshToken)(nil),
	)
	if err != nil {
		log.Fatal("failed to run migrations:", err)
	}

	app.router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	// Health endpoints (no auth required)
	healthHandler := health.NewHandler()
	healthHandler.RegisterRoutes(app.router)

	// Auth setup
	authRepo := auth.NewRepository(database)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(authService, slogLogger)
	authHandler.RegisterRoutes(app.router)

	// NATS producer for contact notifications (optional)
	var producer contact.Producer
	if cfg.NATS.URL != "" {
		natsProducer, err := messaging.NewProducer(cfg.NATS.URL, cfg.NATS.Subject, slogLogger)
		if err != nil {
			slogLogger.Warn("failed to initialize NATS producer", "error", err)
		} else {
			producer = natsProducer
		}
	}

	// Entity services
	profileService := profile.NewService(profile.NewRepository(database))
	projectService := project.NewService(project.NewRepository(database))
	skillService := skill.NewService(skill.NewRepository(database))
	pricingService := pricing.NewService(pricing.NewRepository(database))
	contactService := contact.NewService(contact.NewRepository(database), producer, slogLogger)

	// REST endpoints
	app.router.Route("/api", func(r chi.Router) {
		profile.NewHandler(profileService, slogLogger).RegisterRoutes(r)
		project.NewHandler(projectService, slogLogger).RegisterRoutes(r)
		skill.NewHandler(skillService, slogLogger).RegisterRoutes(r)
		pricing.NewHandler(pricingService, slogLogger).RegisterRoutes(r)
		contact.NewHandler(contactService, slogLogger).RegisterRoutes(r)
	})

	// GraphQL endpoint (auth required)
	resolver := graph.NewResolver(
		profileService,
		projectService,
		skillService,
		pricingService,
		contactService,
		slogLogger,
	)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Fatal("failed to build graphql schema:", err)
	}
	app.router.Route("/graphql", func(r chi.Router) {
		r.Use(auth.Middleware(slogLogger))
		r.Handle("/", graph.NewHandler(schema))
	})

	slogLogger.Info("application initialized successfully")

	return app
}

func (a *App) Run() error {
	a.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.Server.Port),
		Handler: a.router,
	}

	a.logger.Info("server starting", "port", a.config.Server.Port)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")
	return a.server.Shutdown(ctx)
}
