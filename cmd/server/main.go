package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wagneradl/mission-control/internal/api"
	"github.com/wagneradl/mission-control/internal/api/events"
	"github.com/wagneradl/mission-control/internal/api/middleware"
	"github.com/wagneradl/mission-control/internal/config"
	memorystore "github.com/wagneradl/mission-control/internal/repository/memory"
	mongostore "github.com/wagneradl/mission-control/internal/repository/mongo"
	"github.com/wagneradl/mission-control/internal/repository/redis"
)

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if err := godotenv.Load(p); err == nil {
			fmt.Printf("Loaded .env from: %s\n", p)
			break
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	log.Logger = newLogger(cfg.Logging)

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Driver).
		Msg("Starting Mission Control API server")

	// Initialize the entity store
	var repos api.Repositories
	switch cfg.Store.Driver {
	case "memory":
		store := memorystore.NewStore()
		repos = api.Repositories{
			Activities: store.Activities(),
			Events:     store.CalendarEvents(),
			Tasks:      store.Tasks(),
			Contacts:   store.Contacts(),
			Drafts:     store.ContentDrafts(),
			Products:   store.EcosystemProducts(),
			Sessions:   store.ChatSessions(),
			Messages:   store.ChatMessages(),
			Store:      store,
		}
	case "mongo":
		db, err := mongostore.NewDB(context.Background(), cfg.Mongo)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		}
		defer db.Close(context.Background())

		if err := db.EnsureIndexes(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to create indexes")
		}

		repos = api.Repositories{
			Activities: mongostore.NewActivityRepository(db),
			Events:     mongostore.NewCalendarEventRepository(db),
			Tasks:      mongostore.NewTaskRepository(db),
			Contacts:   mongostore.NewContactRepository(db),
			Drafts:     mongostore.NewContentDraftRepository(db),
			Products:   mongostore.NewEcosystemProductRepository(db),
			Sessions:   mongostore.NewChatSessionRepository(db),
			Messages:   mongostore.NewChatMessageRepository(db),
			Store:      db,
		}
	default:
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("Unknown store driver")
	}

	// Rate limiter: Redis when configured, in-process otherwise
	var limiter middleware.Limiter
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
		limiter = redis.NewRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	} else {
		limiter = middleware.NewLocalLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// Change event hub
	hub := events.NewHub(log.Logger)
	go hub.Run()
	defer hub.Stop()

	// Initialize router
	router := api.NewRouter(cfg, repos, hub, limiter, log.Logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// newLogger builds the process logger. A configured log file gets daily
// rotation with a week of history; otherwise logs go to stderr, pretty
// printed outside production.
func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		writer, err := rotatelogs.New(
			cfg.File+".%Y%m%d",
			rotatelogs.WithLinkName(cfg.File),
			rotatelogs.WithRotationCount(7),
		)
		if err == nil {
			out = writer
		} else {
			log.Warn().Err(err).Msg("Failed to open log file, falling back to stderr")
		}
	} else if cfg.Format == "console" || os.Getenv("ENV") != "production" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
