package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in   string
		want FlexInt
	}{
		{`3`, 3},
		{`"3"`, 3},
		{`" 12 "`, 12},
		{`""`, 0},
		{`null`, 0},
		{`-1`, -1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n FlexInt
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.Equal(t, tt.want, n)
		})
	}

	for _, in := range []string{`"science"`, `1.5`, `true`, `{}`} {
		var n FlexInt
		assert.Error(t, json.Unmarshal([]byte(in), &n), in)
	}
}

func TestQuestionsRequest(t *testing.T) {
	var search QuestionsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"searchTerm":"box"}`), &search))
	assert.True(t, search.IsSearch())

	var create QuestionsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"question":"Q","answer":"A","category":"2","difficulty":4}`), &create))
	assert.False(t, create.IsSearch())

	req := create.CreateRequest()
	assert.Equal(t, "Q", req.Question)
	assert.Equal(t, "A", req.Answer)
	assert.Equal(t, 2, req.Category)
	assert.Equal(t, 4, req.Difficulty)
}

func TestQuizRequestMissingCategory(t *testing.T) {
	var req QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions":[1,2]}`), &req))
	assert.Equal(t, FlexInt(0), req.QuizCategory.ID)
	assert.Equal(t, []int{1, 2}, req.PreviousQuestions)
}
