// Command seed loads the demo dataset into the configured store and exits.
// Useful for provisioning a fresh MongoDB without hitting the HTTP API.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wagneradl/mission-control/internal/config"
	"github.com/wagneradl/mission-control/internal/domain"
	mongostore "github.com/wagneradl/mission-control/internal/repository/mongo"
	"github.com/wagneradl/mission-control/internal/service"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	db, err := mongostore.NewDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer db.Close(ctx)

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	seedService := service.NewSeedService(
		mongostore.NewActivityRepository(db),
		mongostore.NewCalendarEventRepository(db),
		mongostore.NewTaskRepository(db),
		mongostore.NewContactRepository(db),
		mongostore.NewContentDraftRepository(db),
		mongostore.NewEcosystemProductRepository(db),
		mongostore.NewChatSessionRepository(db),
		mongostore.NewChatMessageRepository(db),
		domain.SystemClock{},
	)

	if err := seedService.SeedAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	log.Info().Str("database", cfg.Mongo.Database).Msg("Database seeded successfully")
}
