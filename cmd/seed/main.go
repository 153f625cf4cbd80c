// Command seed loads the built-in wellness activity fixtures into the catalog.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/internal/config"
	pgInfra "github.com/wellnest/backend/internal/infrastructure/postgres"
	"github.com/wellnest/backend/pkg/logger"
	"github.com/wellnest/backend/repository/postgres"
	activityUC "github.com/wellnest/backend/usecase/activity"
)

var fixtures = []domain.Activity{
	{
		Title:           "Mindful Breathing",
		Description:     "A simple activity to bring your focus to your breath and reduce stress.",
		Category:        domain.CategoryRelaxation,
		Duration:        300,
		DifficultyLevel: domain.DifficultyBeginner,
		Content:         "Inhale slowly through your nose, hold for a few seconds, then exhale slowly.",
	},
	{
		Title:           "Yoga for Beginners",
		Description:     "Start your yoga journey with some basic poses aimed at improving flexibility and relaxation.",
		Category:        domain.CategoryPhysicalHealth,
		Duration:        1800,
		DifficultyLevel: domain.DifficultyBeginner,
		Content:         "Follow a series of beginner-friendly yoga poses, focusing on your breath and alignment.",
	},
	{
		Title:           "Pomodoro Technique",
		Description:     "Improve productivity by breaking your work into intervals, traditionally 25 minutes in length, separated by short breaks.",
		Category:        domain.CategoryProductivity,
		Duration:        1500,
		DifficultyLevel: domain.DifficultyBeginner,
		Content:         "Work for 25 minutes, then take a 5-minute break. Repeat the cycle.",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(ctx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pool.Close()

	uc := activityUC.New(postgres.NewActivityRepository(pool), nil, 0, zapLogger)

	inserted, err := uc.SeedCatalog(ctx, fixtures)
	if err != nil {
		zapLogger.Fatal("seeding failed", zap.Error(err))
	}
	zapLogger.Info("activity catalog seeded", zap.Int("count", len(inserted)))
}
