package domain

import (
	"context"
	"errors"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the read side of categories plus seeding
type CategoryRepository interface {
	// List retrieves all categories ordered by ID
	List(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)

	// BulkCreate stores multiple categories in a single transaction
	BulkCreate(ctx context.Context, categories []*Category) error
}

// Category groups questions under a label such as "Science"
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap projects categories into the id -> type mapping served to clients
func CategoryMap(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
