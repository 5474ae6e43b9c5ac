package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/config"
	"github.com/pranathi988/Kamadhenu-app/internal/repository/sqlite"
	"github.com/pranathi988/Kamadhenu-app/pkg/logger"
)

// Populates the SQLite database with the reference catalogs and sample
// log rows. Safe to run repeatedly; existing rows are left alone.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	store, err := sqlite.Open(cfg.Database.Path, baseLogger.Named("repo.sqlite"))
	if err != nil {
		baseLogger.Fatal("failed to open database", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			baseLogger.Error("failed to close database", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	summary, err := store.Seed(ctx)
	if err != nil {
		baseLogger.Fatal("seeding failed", zap.Error(err))
	}

	baseLogger.Info("database seeded",
		zap.String("path", cfg.Database.Path),
		zap.Int("breeds", summary.Breeds),
		zap.Int("schemes", summary.Schemes),
		zap.Int("eco_practices", summary.EcoPractices),
		zap.Int("price_trends", summary.PriceTrends),
		zap.Int("diseases", summary.Diseases),
		zap.Int("breeding_pairs", summary.BreedingPairs),
		zap.Int("offspring", summary.Offspring))
}
