package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/wagneradl/mission-control/internal/api/events"
	"github.com/wagneradl/mission-control/internal/api/handler"
	customMiddleware "github.com/wagneradl/mission-control/internal/api/middleware"
	"github.com/wagneradl/mission-control/internal/assistant"
	"github.com/wagneradl/mission-control/internal/config"
	"github.com/wagneradl/mission-control/internal/domain"
	"github.com/wagneradl/mission-control/internal/security"
	"github.com/wagneradl/mission-control/internal/service"
	"github.com/wagneradl/mission-control/internal/workspace"
)

// Repositories bundles the per-table stores handed to the router. Both the
// Mongo and the in-memory backend satisfy it.
type Repositories struct {
	Activities domain.ActivityRepository
	Events     domain.CalendarEventRepository
	Tasks      domain.TaskRepository
	Contacts   domain.ContactRepository
	Drafts     domain.ContentDraftRepository
	Products   domain.EcosystemProductRepository
	Sessions   domain.ChatSessionRepository
	Messages   domain.ChatMessageRepository
	Store      handler.Pinger
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, repos Repositories, hub *events.Hub, limiter customMiddleware.Limiter, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	clock := domain.SystemClock{}

	// Assistant replies are optional; without an API key user messages
	// simply get no automatic response.
	var responder service.Responder
	if cfg.Assistant.Enabled() {
		logger.Info().Str("model", cfg.Assistant.Model).Msg("assistant responder enabled")
		responder = assistant.NewBreakerResponder(assistant.NewGeminiResponder(cfg.Assistant))
	}

	// Initialize services
	activityService := service.NewActivityService(repos.Activities, clock, hub)
	calendarService := service.NewCalendarService(repos.Events, clock, hub)
	taskService := service.NewTaskService(repos.Tasks, clock, hub)
	contactService := service.NewContactService(repos.Contacts, clock, hub)
	contentService := service.NewContentService(repos.Drafts, clock, hub)
	productService := service.NewProductService(repos.Products, clock, hub)
	chatService := service.NewChatService(repos.Sessions, repos.Messages, clock, hub, responder, logger)
	seedService := service.NewSeedService(
		repos.Activities, repos.Events, repos.Tasks, repos.Contacts,
		repos.Drafts, repos.Products, repos.Sessions, repos.Messages, clock,
	)

	workspaceProvider := workspace.NewProvider(cfg.Workspace.Dir, logger)

	// Initialize handlers
	activityHandler := handler.NewActivityHandler(activityService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	taskHandler := handler.NewTaskHandler(taskService)
	contactHandler := handler.NewContactHandler(contactService)
	contentHandler := handler.NewContentHandler(contentService)
	productHandler := handler.NewProductHandler(productService)
	chatHandler := handler.NewChatHandler(chatService)
	seedHandler := handler.NewSeedHandler(seedService)
	healthHandler := handler.NewHealthHandler(repos.Store)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceProvider)

	// Auth is optional; without a JWT secret the dashboard runs open.
	var jwtManager *security.JWTManager
	if cfg.Auth.Enabled() {
		jwtManager = security.NewJWTManager(
			cfg.Auth.JWTSecret,
			cfg.Auth.AccessTokenTTL,
			cfg.Auth.RefreshTokenTTL,
		)
	}
	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager)
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(limiter)

	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Get("/ws", hub.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Auth.Enabled() {
			authService := service.NewAuthService(cfg.Auth.PasswordHash, jwtManager)
			authHandler := handler.NewAuthHandler(authService)
			r.Route("/auth", func(r chi.Router) {
				r.Post("/login", authHandler.Login)
				r.Post("/refresh", authHandler.Refresh)
			})
		}

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Route("/activities", func(r chi.Router) {
				r.Get("/", activityHandler.List)
				r.Post("/", activityHandler.Create)
			})

			r.Route("/calendar-events", func(r chi.Router) {
				r.Get("/", calendarHandler.List)
				r.Post("/", calendarHandler.Create)
				r.Patch("/{id}", calendarHandler.Update)
				r.Delete("/{id}", calendarHandler.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)
				r.Post("/", taskHandler.Create)
				r.Patch("/{id}", taskHandler.Update)
				r.Delete("/{id}", taskHandler.Delete)
			})

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", contactHandler.List)
				r.Post("/", contactHandler.Create)
				r.Patch("/{id}", contactHandler.Update)
				r.Delete("/{id}", contactHandler.Delete)
			})

			r.Route("/content-drafts", func(r chi.Router) {
				r.Get("/", contentHandler.List)
				r.Post("/", contentHandler.Create)
				r.Patch("/{id}", contentHandler.Update)
				r.Delete("/{id}", contentHandler.Delete)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", productHandler.List)
				r.Post("/", productHandler.Create)
				r.Patch("/{id}", productHandler.Update)
				r.Get("/slug/{slug}", productHandler.GetBySlug)
			})

			r.Route("/chat", func(r chi.Router) {
				r.Route("/sessions", func(r chi.Router) {
					r.Get("/", chatHandler.ListSessions)
					r.Post("/", chatHandler.CreateSession)

					r.Route("/{id}/messages", func(r chi.Router) {
						r.Get("/", chatHandler.GetMessages)
						r.Post("/", chatHandler.SendMessage)
					})
				})
			})

			r.Post("/seed", seedHandler.SeedAll)

			r.Route("/workspace", func(r chi.Router) {
				r.Get("/agents", workspaceHandler.Agents)
				r.Get("/cron-health", workspaceHandler.CronHealth)
				r.Get("/revenue", workspaceHandler.Revenue)
				r.Get("/system-state", workspaceHandler.SystemState)
				r.Get("/suggested-tasks", workspaceHandler.SuggestedTasks)
				r.Post("/suggested-tasks", workspaceHandler.TriageTask)
				r.Get("/content-pipeline", workspaceHandler.ContentPipeline)
			})
		})
	})

	return r
}
