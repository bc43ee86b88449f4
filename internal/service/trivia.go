package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/go-playground/validator/v10"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// TriviaService implements the question, category and quiz use cases
type TriviaService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	publisher  domain.EventPublisher
	validate   *validator.Validate
	intn       func(n int) int
}

// NewTriviaService creates a new trivia service. publisher may be nil.
func NewTriviaService(questions domain.QuestionRepository, categories domain.CategoryRepository, publisher domain.EventPublisher) *TriviaService {
	return &TriviaService{
		questions:  questions,
		categories: categories,
		publisher:  publisher,
		validate:   validator.New(),
		intn:       rand.Intn,
	}
}

// QuestionPage is one page of questions plus the listing context around it
type QuestionPage struct {
	Questions       []domain.Question
	TotalQuestions  int
	Categories      map[int]string
	CurrentCategory string
}

// CreateQuestionRequest represents the fields of a new question
type CreateQuestionRequest struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Category   int    `validate:"gt=0"`
	Difficulty int    `validate:"gte=0"`
}

// ListCategories returns every category as an id -> type mapping
func (s *TriviaService) ListCategories(ctx context.Context) (map[int]string, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	return domain.CategoryMap(categories), nil
}

// ListQuestions returns one page of all questions together with the
// category mapping
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	current := Paginate(questions, page)
	if len(current) == 0 {
		return nil, ErrPageEmpty
	}

	return &QuestionPage{
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     domain.CategoryMap(categories),
	}, nil
}

// DeleteQuestion removes a question by ID
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) error {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(domain.EventQuestionDeleted, *question)
	return nil
}

// CreateQuestion validates and stores a new question
func (s *TriviaService) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*domain.Question, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidQuestion, err)
	}

	question := &domain.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}

	s.publish(domain.EventQuestionCreated, *question)
	return question, nil
}

// SearchQuestions returns one page of the questions whose text contains
// term. TotalQuestions counts the whole table, not the matches.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNoMatches
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:      Paginate(matches, page),
		TotalQuestions: total,
	}, nil
}

// QuestionsByCategory returns one page of a category's questions. An
// existing category without questions yields an empty page, not an error.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int, page int) (*QuestionPage, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:       Paginate(questions, page),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	}, nil
}

// NextQuizQuestion picks a random question from the category, or from all
// questions when categoryID is 0, skipping the IDs in previous.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	var (
		questions []domain.Question
		err       error
	)
	if categoryID == 0 {
		questions, err = s.questions.List(ctx)
	} else {
		questions, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	candidates := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrQuizExhausted
	}

	question := candidates[s.intn(len(candidates))]
	return &question, nil
}

func (s *TriviaService) publish(eventType domain.EventType, question domain.Question) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(eventType, question)
}
