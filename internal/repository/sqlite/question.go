package sqlite

import (
	"context"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository"
	"gorm.io/gorm"
)

// QuestionRepository implements domain.QuestionRepository on GORM
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	var models []questionModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return toQuestions(models), nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	var models []questionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	if len(models) == 0 {
		return nil, domain.ErrQuestionNotFound
	}
	q := models[0].toDomain()
	return &q, nil
}

func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	var models []questionModel
	err := r.db.WithContext(ctx).Where("category = ?", categoryID).Order("id").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list questions by category: %w", err)
	}
	return toQuestions(models), nil
}

func (r *QuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	var models []questionModel
	err := r.db.WithContext(ctx).
		Where(`LOWER(question) LIKE ? ESCAPE '\'`, repository.ContainsPattern(term)).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return toQuestions(models), nil
}

func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&questionModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return int(count), nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	m := newQuestionModel(question)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError("failed to create question", err)
	}
	question.ID = m.ID
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&questionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) BulkCreate(ctx context.Context, questions []*domain.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, question := range questions {
			m := newQuestionModel(question)
			if err := tx.Create(m).Error; err != nil {
				return translateError("failed to create question", err)
			}
			question.ID = m.ID
		}
		return nil
	})
}

func toQuestions(models []questionModel) []domain.Question {
	questions := make([]domain.Question, 0, len(models))
	for _, m := range models {
		questions = append(questions, m.toDomain())
	}
	return questions
}
