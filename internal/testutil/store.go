package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/repository/sqlite"
	"github.com/zizouhuweidi/trivia/internal/seed"
	"gorm.io/gorm"
)

// Store bundles the repositories of one isolated in-memory database
type Store struct {
	DB         *gorm.DB
	Questions  *sqlite.QuestionRepository
	Categories *sqlite.CategoryRepository
}

// NewStore opens a fresh, migrated, empty in-memory SQLite database that is
// closed when the test ends.
func NewStore(t testing.TB) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.ConnectSQLite(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, sqlite.Migrate(db))

	return &Store{
		DB:         db,
		Questions:  sqlite.NewQuestionRepository(db),
		Categories: sqlite.NewCategoryRepository(db),
	}
}

// NewSeededStore is NewStore loaded with the default categories and questions
func NewSeededStore(t testing.TB) *Store {
	t.Helper()

	s := NewStore(t)
	seeded, err := seed.Load(context.Background(), s.Categories, s.Questions)
	require.NoError(t, err)
	require.True(t, seeded)
	return s
}
