package main

import (
	"context"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/logger"
	"github.com/zizouhuweidi/trivia/internal/seed"
	"github.com/zizouhuweidi/trivia/internal/store"
	"go.uber.org/zap"
)

// seed loads the default categories and questions into an empty database
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	ctx := context.Background()
	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer st.Close()

	seeded, err := seed.Load(ctx, st.Categories, st.Questions)
	if err != nil {
		log.Fatal("Failed to seed database", zap.Error(err))
	}
	if !seeded {
		log.Info("Database already has categories, nothing to do")
		return
	}
	log.Info("Seeded database",
		zap.Int("categories", len(seed.Categories())),
		zap.Int("questions", len(seed.Questions())),
	)
}
