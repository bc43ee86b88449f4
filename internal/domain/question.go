package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidQuestion  = errors.New("invalid question")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves all questions ordered by ID
	List(ctx context.Context) ([]Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// ListByCategory retrieves the questions of one category ordered by ID
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// Search retrieves questions whose text contains term, ignoring case
	Search(ctx context.Context, term string) ([]Question, error)

	// Count returns the total number of questions
	Count(ctx context.Context) (int, error)

	// Create stores a new question and sets its ID
	Create(ctx context.Context, question *Question) error

	// Delete removes a question, returning ErrQuestionNotFound if there was none
	Delete(ctx context.Context, id int) error

	// BulkCreate stores multiple questions in a single transaction
	BulkCreate(ctx context.Context, questions []*Question) error
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}
