package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/service"
)

// FlexInt decodes from a JSON number or a string holding one. The web
// client posts select values and object keys as strings.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
		if s == "" {
			*n = 0
			return nil
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*n = FlexInt(v)
	return nil
}

// QuestionsRequest is the body of POST /questions. A non-empty SearchTerm
// makes it a search; otherwise it describes a question to create.
type QuestionsRequest struct {
	SearchTerm string  `json:"searchTerm"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   FlexInt `json:"category"`
	Difficulty FlexInt `json:"difficulty"`
}

// IsSearch reports whether the request is a search
func (r QuestionsRequest) IsSearch() bool {
	return r.SearchTerm != ""
}

// CreateRequest converts the body into the service's create input
func (r QuestionsRequest) CreateRequest() service.CreateQuestionRequest {
	return service.CreateQuestionRequest{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   int(r.Category),
		Difficulty: int(r.Difficulty),
	}
}

// QuizCategory identifies the quiz category; ID 0 means all categories
type QuizCategory struct {
	ID FlexInt `json:"id"`
}

// QuizRequest is the body of POST /quizzes
type QuizRequest struct {
	PreviousQuestions []int        `json:"previous_questions"`
	QuizCategory      QuizCategory `json:"quiz_category"`
}
