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

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productGraphSelect = `
	SELECT pr.id, pr.name, pr.description, pr.price, pr.category_id, cat.name,
	       pr.created_at, pr.updated_at
	FROM products pr
	JOIN categories cat ON pr.category_id = cat.id
`

// GetByID возвращает продукт по ID или e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, description, price, category_id, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	err := q(ctx, p.pool).QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Description, &model.Price,
		&model.CategoryID, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Insert добавляет строку продукта и возвращает её с порождёнными полями.
func (p *ProductRepo) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, description, price, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, category_id, created_at, updated_at
	`

	var model converter.ProductModel
	err := q(ctx, p.pool).QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.CategoryID,
	).Scan(
		&model.ID, &model.Name, &model.Description, &model.Price,
		&model.CategoryID, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Update обновляет скалярные поля продукта и ставит отметку updated_at.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category_id = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q(ctx, p.pool).Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.CategoryID,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

// Delete удаляет продукт; связи product_colors удаляет каскад в БД.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := q(ctx, p.pool).Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := q(ctx, p.pool).QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

// GetGraph возвращает плоский граф одного продукта: категория и цвета.
func (p *ProductRepo) GetGraph(ctx context.Context, id int64) (*usecase.ProductInfo, error) {
	row := q(ctx, p.pool).QueryRow(ctx, productGraphSelect+` WHERE pr.id = $1`, id)

	var info usecase.ProductInfo
	err := row.Scan(
		&info.ID, &info.Name, &info.Description, &info.Price,
		&info.CategoryID, &info.CategoryName, &info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products := []usecase.ProductInfo{info}
	if err := p.attachColors(ctx, products); err != nil {
		return nil, err
	}

	return &products[0], nil
}

// GetAllGraph возвращает все продукты с категориями и цветами в порядке ID.
func (p *ProductRepo) GetAllGraph(ctx context.Context) ([]usecase.ProductInfo, error) {
	return p.queryGraph(ctx, productGraphSelect+` ORDER BY pr.id`)
}

// GetByCategory возвращает продукты указанной категории.
func (p *ProductRepo) GetByCategory(ctx context.Context, categoryID int64) ([]usecase.ProductInfo, error) {
	return p.queryGraph(ctx, productGraphSelect+` WHERE pr.category_id = $1 ORDER BY pr.id`, categoryID)
}

// GetPaginated возвращает страницу продуктов в порядке ID.
func (p *ProductRepo) GetPaginated(ctx context.Context, limit, offset int64) ([]usecase.ProductInfo, error) {
	return p.queryGraph(ctx, productGraphSelect+` ORDER BY pr.id LIMIT $1 OFFSET $2`, limit, offset)
}

// InsertColors добавляет по одной связи продукт-цвет на каждый ID цвета.
func (p *ProductRepo) InsertColors(ctx context.Context, productID int64, colorIDs []int64) error {
	if len(colorIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO product_colors (product_id, color_id)
		SELECT $1, UNNEST($2::BIGINT[])
	`

	if _, err := q(ctx, p.pool).Exec(ctx, query, productID, colorIDs); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteColors удаляет все связи продукт-цвет для продукта.
func (p *ProductRepo) DeleteColors(ctx context.Context, productID int64) error {
	if _, err := q(ctx, p.pool).Exec(ctx, `DELETE FROM product_colors WHERE product_id = $1`, productID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductRepo) queryGraph(ctx context.Context, query string, args ...any) ([]usecase.ProductInfo, error) {
	rows, err := q(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	products := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var info usecase.ProductInfo
		if err := rows.Scan(
			&info.ID, &info.Name, &info.Description, &info.Price,
			&info.CategoryID, &info.CategoryName, &info.CreatedAt, &info.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		products = append(products, info)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := p.attachColors(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// attachColors дозагружает цвета для набора продуктов одним запросом.
func (p *ProductRepo) attachColors(ctx context.Context, products []usecase.ProductInfo) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(products))
	for i := range products {
		products[i].Colors = make([]usecase.ProductColorInfo, 0)
		ids = append(ids, products[i].ID)
	}

	query := `
		SELECT pc.id, pc.product_id, pc.color_id, col.name, col.color_code, pc.created_at
		FROM product_colors pc
		JOIN colors col ON pc.color_id = col.id
		WHERE pc.product_id = ANY($1)
		ORDER BY pc.id
	`

	rows, err := q(ctx, p.pool).Query(ctx, query, ids)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	byProduct := make(map[int64][]usecase.ProductColorInfo, len(products))
	for rows.Next() {
		var (
			productID int64
			color     usecase.ProductColorInfo
		)
		if err := rows.Scan(
			&color.ID, &productID, &color.ColorID,
			&color.ColorName, &color.ColorCode, &color.CreatedAt,
		); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		byProduct[productID] = append(byProduct[productID], color)
	}
	if err := rows.Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	for i := range products {
		if colors, ok := byProduct[products[i].ID]; ok {
			products[i].Colors = colors
		}
	}

	return nil
}
