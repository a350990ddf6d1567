package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ColorRepo реализует репозиторий цветов поверх PostgreSQL.
type ColorRepo struct {
	pool *pgxpool.Pool
	conv converter.ColorConverter
}

func NewColorRepo(pool *pgxpool.Pool, conv converter.ColorConverter) *ColorRepo {
	return &ColorRepo{pool: pool, conv: conv}
}

// GetByID возвращает цвет по ID или e.ErrColorNotFound.
func (c *ColorRepo) GetByID(ctx context.Context, id int64) (*domain.Color, error) {
	query := `SELECT id, name, color_code, created_at, updated_at FROM colors WHERE id = $1`

	var model converter.ColorModel
	err := q(ctx, c.pool).QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.ColorCode, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrColorNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *ColorRepo) GetAll(ctx context.Context) ([]domain.Color, error) {
	query := `SELECT id, name, color_code, created_at, updated_at FROM colors ORDER BY id`

	rows, err := q(ctx, c.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Color, 0)
	for rows.Next() {
		var model converter.ColorModel
		if err := rows.Scan(&model.ID, &model.Name, &model.ColorCode, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// CountByIDs возвращает количество существующих цветов среди запрошенных ID.
// ID считаются уникальными: дубликаты должны быть убраны вызывающим.
func (c *ColorRepo) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	var count int64
	err := q(ctx, c.pool).QueryRow(ctx, `SELECT COUNT(*) FROM colors WHERE id = ANY($1)`, ids).
		Scan(&count)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

func (c *ColorRepo) Insert(ctx context.Context, color *domain.Color) (*domain.Color, error) {
	query := `
		INSERT INTO colors (name, color_code) VALUES ($1, $2)
		RETURNING id, name, color_code, created_at, updated_at
	`

	var model converter.ColorModel
	err := q(ctx, c.pool).QueryRow(ctx, query, color.Name, color.ColorCode).
		Scan(&model.ID, &model.Name, &model.ColorCode, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *ColorRepo) Update(ctx context.Context, color *domain.Color) error {
	query := `UPDATE colors SET name = $2, color_code = $3, updated_at = NOW() WHERE id = $1`

	tag, err := q(ctx, c.pool).Exec(ctx, query, color.ID, color.Name, color.ColorCode)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.ErrColorNotFound
	}

	return nil
}

// Delete удаляет цвет. Отсутствующий ID — тихий no-op:
// проверку существования выполняет вызывающий слой.
func (c *ColorRepo) Delete(ctx context.Context, id int64) error {
	if _, err := q(ctx, c.pool).Exec(ctx, `DELETE FROM colors WHERE id = $1`, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// HasVariants сообщает, ссылается ли на цвет хотя бы одна связь продукт-цвет.
func (c *ColorRepo) HasVariants(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q(ctx, c.pool).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product_colors WHERE color_id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}
