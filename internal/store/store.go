package store

import (
	"context"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/repository/sqlite"
)

// Store holds the repositories of the configured backend
type Store struct {
	Questions  domain.QuestionRepository
	Categories domain.CategoryRepository
	close      func() error
}

// Open connects to the backend named by cfg.DBDriver and makes sure its
// schema exists.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{
			Questions:  postgres.NewQuestionRepository(pool),
			Categories: postgres.NewCategoryRepository(pool),
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverSQLite:
		db, err := database.ConnectSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
		}
		if err := sqlite.Migrate(db); err != nil {
			sqlDB.Close()
			return nil, err
		}
		return &Store{
			Questions:  sqlite.NewQuestionRepository(db),
			Categories: sqlite.NewCategoryRepository(db),
			close:      sqlDB.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// Close releases the backend's connections
func (s *Store) Close() error {
	return s.close()
}
