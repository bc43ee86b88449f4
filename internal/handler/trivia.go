package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// TriviaService is what the HTTP layer needs from the trivia use cases
type TriviaService interface {
	ListCategories(ctx context.Context) (map[int]string, error)
	ListQuestions(ctx context.Context, page int) (*service.QuestionPage, error)
	DeleteQuestion(ctx context.Context, id int) error
	CreateQuestion(ctx context.Context, req service.CreateQuestionRequest) (*domain.Question, error)
	SearchQuestions(ctx context.Context, term string, page int) (*service.QuestionPage, error)
	QuestionsByCategory(ctx context.Context, categoryID int, page int) (*service.QuestionPage, error)
	NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error)
}

// TriviaHandler handles question, category and quiz HTTP requests
type TriviaHandler struct {
	trivia TriviaService
}

// NewTriviaHandler creates a new trivia handler
func NewTriviaHandler(trivia TriviaService) *TriviaHandler {
	return &TriviaHandler{
		trivia: trivia,
	}
}

// Register registers the trivia routes, wrapping each in m
func (h *TriviaHandler) Register(e *echo.Echo, m ...echo.MiddlewareFunc) {
	e.GET("/categories", h.GetCategories, m...)
	e.GET("/categories/:id/questions", h.GetQuestionsByCategory, m...)
	e.GET("/questions", h.GetQuestions, m...)
	e.POST("/questions", h.CreateOrSearchQuestions, m...)
	e.DELETE("/questions/:id", h.DeleteQuestion, m...)
	e.POST("/quizzes", h.GetQuizQuestion, m...)
}

// GetCategories handles GET /categories
func (h *TriviaHandler) GetCategories(c echo.Context) error {
	categories, err := h.trivia.ListCategories(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoCategories) {
			return fail(http.StatusNotFound, err)
		}
		return fail(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"categories": categories,
	})
}

// GetQuestions handles GET /questions?page=N
func (h *TriviaHandler) GetQuestions(c echo.Context) error {
	page, err := h.trivia.ListQuestions(c.Request().Context(), service.ParsePage(c.QueryParam("page")))
	if err != nil {
		if errors.Is(err, service.ErrPageEmpty) {
			return fail(http.StatusNotFound, err)
		}
		return fail(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":         true,
		"questions":       page.Questions,
		"total_questions": page.TotalQuestions,
		"categories":      page.Categories,
	})
}

// DeleteQuestion handles DELETE /questions/:id. A missing question is
// reported as 422 for compatibility with existing clients.
func (h *TriviaHandler) DeleteQuestion(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return echo.ErrNotFound
	}

	if err := h.trivia.DeleteQuestion(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return fail(http.StatusUnprocessableEntity, err)
		}
		return fail(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"deleted": id,
	})
}

// CreateOrSearchQuestions handles POST /questions, which either searches
// or creates depending on the body.
func (h *TriviaHandler) CreateOrSearchQuestions(c echo.Context) error {
	var req QuestionsRequest
	if err := c.Bind(&req); err != nil {
		return fail(http.StatusBadRequest, err)
	}

	if req.IsSearch() {
		return h.searchQuestions(c, req.SearchTerm)
	}
	return h.createQuestion(c, req.CreateRequest())
}

func (h *TriviaHandler) searchQuestions(c echo.Context, term string) error {
	page, err := h.trivia.SearchQuestions(c.Request().Context(), term, service.ParsePage(c.QueryParam("page")))
	if err != nil {
		if errors.Is(err, service.ErrNoMatches) {
			return fail(http.StatusNotFound, err)
		}
		return fail(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":         true,
		"questions":       page.Questions,
		"total_questions": page.TotalQuestions,
	})
}

func (h *TriviaHandler) createQuestion(c echo.Context, req service.CreateQuestionRequest) error {
	question, err := h.trivia.CreateQuestion(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuestion) {
			return fail(http.StatusUnprocessableEntity, err)
		}
		return fail(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"created": question.ID,
	})
}

// GetQuestionsByCategory handles GET /categories/:id/questions?page=N
func (h *TriviaHandler) GetQuestionsByCategory(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return echo.ErrNotFound
	}

	page, err := h.trivia.QuestionsByCategory(c.Request().Context(), id, service.ParsePage(c.QueryParam("page")))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return fail(http.StatusNotFound, err)
		}
		return fail(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.TotalQuestions,
		"current_category": page.CurrentCategory,
	})
}

// GetQuizQuestion handles POST /quizzes
func (h *TriviaHandler) GetQuizQuestion(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return fail(http.StatusBadRequest, err)
	}

	question, err := h.trivia.NextQuizQuestion(c.Request().Context(), int(req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		if errors.Is(err, service.ErrQuizExhausted) {
			return fail(http.StatusUnprocessableEntity, err)
		}
		return fail(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"question": question,
	})
}

// pathID parses the :id path parameter. Only non-negative integers match,
// anything else is treated as an unknown route.
func pathID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
