package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/seed"
)

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "trivia.db"),
	}

	s, err := Open(ctx, cfg)
	require.NoError(t, err)

	seeded, err := seed.Load(ctx, s.Categories, s.Questions)
	require.NoError(t, err)
	assert.True(t, seeded)
	require.NoError(t, s.Close())

	// the file persists across opens and is not seeded twice
	s, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer s.Close()

	seeded, err = seed.Load(ctx, s.Categories, s.Questions)
	require.NoError(t, err)
	assert.False(t, seeded)

	count, err := s.Questions.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 19, count)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}
