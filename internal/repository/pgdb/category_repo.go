package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// GetByID возвращает категорию по ID или e.ErrCategoryNotFound.
func (c *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`

	var model converter.CategoryModel
	err := q(ctx, c.pool).QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrCategoryNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// GetAll возвращает категории с количеством продуктов в каждой.
func (c *CategoryRepo) GetAll(ctx context.Context) ([]usecase.CategoryInfo, error) {
	query := `
		SELECT cat.id, cat.name, COUNT(pr.id), cat.created_at, cat.updated_at
		FROM categories cat
		LEFT JOIN products pr ON pr.category_id = cat.id
		GROUP BY cat.id
		ORDER BY cat.id
	`

	rows, err := q(ctx, c.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.CategoryInfo, 0)
	for rows.Next() {
		var info usecase.CategoryInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.ProductCount, &info.CreatedAt, &info.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, info)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (c *CategoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q(ctx, c.pool).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func (c *CategoryRepo) Insert(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name) VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`

	var model converter.CategoryModel
	err := q(ctx, c.pool).QueryRow(ctx, query, category.Name).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	query := `UPDATE categories SET name = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q(ctx, c.pool).Exec(ctx, query, category.ID, category.Name)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.ErrCategoryNotFound
	}

	return nil
}

func (c *CategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, err := q(ctx, c.pool).Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// HasProducts сообщает, ссылается ли на категорию хотя бы один продукт.
func (c *CategoryRepo) HasProducts(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q(ctx, c.pool).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE category_id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func (c *CategoryRepo) CountProducts(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := q(ctx, c.pool).QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, id).
		Scan(&count)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}
