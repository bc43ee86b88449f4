package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/testutil"
)

func TestQuestionRepository_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	q := &domain.Question{Question: "Q?", Answer: "A", Category: 1, Difficulty: 2}
	require.NoError(t, store.Questions.Create(ctx, q))
	assert.NotZero(t, q.ID)

	got, err := store.Questions.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, *q, *got)

	require.NoError(t, store.Questions.Delete(ctx, q.ID))

	_, err = store.Questions.GetByID(ctx, q.ID)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)

	err = store.Questions.Delete(ctx, q.ID)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestQuestionRepository_ListIsOrderedByID(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSeededStore(t)

	questions, err := store.Questions.List(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 19)
	for i := 1; i < len(questions); i++ {
		assert.Less(t, questions[i-1].ID, questions[i].ID)
	}

	count, err := store.Questions.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 19, count)
}

func TestQuestionRepository_ListByCategory(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSeededStore(t)

	questions, err := store.Questions.ListByCategory(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, questions, 4)
	for _, q := range questions {
		assert.Equal(t, 2, q.Category)
	}

	none, err := store.Questions.ListByCategory(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQuestionRepository_Search(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSeededStore(t)

	matches, err := store.Questions.Search(ctx, "TITLE")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	for _, q := range matches {
		assert.Contains(t, q.Question, "title")
	}

	// wildcards in the term are literal
	none, err := store.Questions.Search(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQuestionRepository_BulkCreateAssignsIDs(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	questions := []*domain.Question{
		{Question: "one", Answer: "1", Category: 1, Difficulty: 1},
		{Question: "two", Answer: "2", Category: 1, Difficulty: 1},
	}
	require.NoError(t, store.Questions.BulkCreate(ctx, questions))
	assert.NotZero(t, questions[0].ID)
	assert.NotEqual(t, questions[0].ID, questions[1].ID)
}
