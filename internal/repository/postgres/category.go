package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// CategoryRepository implements domain.CategoryRepository
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// List retrieves all categories ordered by ID
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Type); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.pool.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = $1`, id).
		Scan(&category.ID, &category.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// BulkCreate creates categories in a single transaction. Categories with a
// preset ID keep it, and the ID sequence is moved past the largest one.
func (r *CategoryRepository) BulkCreate(ctx context.Context, categories []*domain.Category) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, category := range categories {
		if category.ID != 0 {
			_, err = tx.Exec(ctx, `INSERT INTO categories (id, type) VALUES ($1, $2)`, category.ID, category.Type)
		} else {
			err = tx.QueryRow(ctx, `INSERT INTO categories (type) VALUES ($1) RETURNING id`, category.Type).
				Scan(&category.ID)
		}
		if err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		SELECT setval(pg_get_serial_sequence('categories', 'id'), COALESCE(MAX(id), 1))
		FROM categories
	`)
	if err != nil {
		return fmt.Errorf("failed to reset category sequence: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
