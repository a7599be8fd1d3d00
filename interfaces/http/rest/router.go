package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/chanmix51/kaku/application/services"
	"github.com/chanmix51/kaku/infrastructure/config"
	"github.com/chanmix51/kaku/interfaces/http/rest/handlers"
	"github.com/chanmix51/kaku/interfaces/http/rest/middleware"
	"github.com/chanmix51/kaku/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg     *config.Config
	scribe  *services.ScribeService
	metrics *observability.Collector
	limits  handlers.LimitsProvider
	logger  *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	scribe *services.ScribeService,
	metrics *observability.Collector,
	limits handlers.LimitsProvider,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:     cfg,
		scribe:  scribe,
		metrics: metrics,
		limits:  limits,
		logger:  logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.metrics))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID", "Location"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	maxBody := int64(rt.cfg.MaxBodyBytes)
	projectHandler := handlers.NewProjectHandler(rt.scribe, rt.logger, rt.limits, maxBody)
	noteHandler := handlers.NewNoteHandler(rt.scribe, rt.logger, rt.limits, maxBody)
	thoughtHandler := handlers.NewThoughtHandler(rt.scribe, rt.logger, rt.limits, maxBody)
	styloHandler := handlers.NewStyloHandler(rt.scribe, rt.logger, maxBody)

	router.Route("/project", func(r chi.Router) {
		r.Post("/create", projectHandler.CreateProject)
		r.Route("/{slug}", func(r chi.Router) {
			r.Get("/", projectHandler.GetProject)
			r.Post("/lock", projectHandler.LockProject)
			r.Delete("/lock", projectHandler.UnlockProject)
			r.Post("/note", noteHandler.CreateNote)
			r.Get("/notes", noteHandler.ListNotes)
			r.Post("/thought", thoughtHandler.CreateThought)
		})
	})

	router.Get("/universe/{universeID}/projects", projectHandler.ListProjects)

	router.Route("/note/{noteID}", func(r chi.Router) {
		r.Get("/", noteHandler.GetNote)
		r.Put("/", noteHandler.SyncNote)
	})
	router.Delete("/notes/{noteID}", noteHandler.ScratchNote)

	router.Get("/thought/{thoughtID}", thoughtHandler.GetThought)

	router.Route("/stylo", func(r chi.Router) {
		r.Post("/create", styloHandler.CreateStylo)
		r.Delete("/{styloID}", styloHandler.RevokeStylo)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
