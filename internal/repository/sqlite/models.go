package sqlite

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"gorm.io/gorm"
)

type categoryModel struct {
	ID   int    `gorm:"primaryKey"`
	Type string `gorm:"not null"`
}

func (categoryModel) TableName() string { return "categories" }

func (m categoryModel) toDomain() domain.Category {
	return domain.Category{ID: m.ID, Type: m.Type}
}

type questionModel struct {
	ID         int    `gorm:"primaryKey"`
	Question   string `gorm:"not null"`
	Answer     string `gorm:"not null"`
	Category   int    `gorm:"not null;index"`
	Difficulty int    `gorm:"not null"`
}

func (questionModel) TableName() string { return "questions" }

func (m questionModel) toDomain() domain.Question {
	return domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Category:   m.Category,
		Difficulty: m.Difficulty,
	}
}

func newQuestionModel(q *domain.Question) *questionModel {
	return &questionModel{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// Migrate creates or updates the categories and questions tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&categoryModel{}, &questionModel{}); err != nil {
		return fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	return nil
}

// translateError turns constraint violations into domain.ErrInvalidQuestion
func translateError(msg string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidQuestion, err)
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", domain.ErrInvalidQuestion, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
