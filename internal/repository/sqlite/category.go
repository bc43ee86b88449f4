package sqlite

import (
	"context"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"gorm.io/gorm"
)

// CategoryRepository implements domain.CategoryRepository on GORM
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var models []categoryModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	categories := make([]domain.Category, 0, len(models))
	for _, m := range models {
		categories = append(categories, m.toDomain())
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	var models []categoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if len(models) == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	c := models[0].toDomain()
	return &c, nil
}

func (r *CategoryRepository) BulkCreate(ctx context.Context, categories []*domain.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, category := range categories {
			m := &categoryModel{ID: category.ID, Type: category.Type}
			if err := tx.Create(m).Error; err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}
			category.ID = m.ID
		}
		return nil
	})
}
