package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

// CategoryUseCase реализует бизнес-логику управления категориями.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	logger       logger.Logger
}

func NewCategoryUC(categoryRepo CategoryRepository, productRepo ProductRepository, logger logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

func (c *CategoryUseCase) CreateCategory(ctx context.Context, req *SaveCategoryReq) (*CategoryInfo, error) {
	const op = "CategoryUseCase.CreateCategory"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	category, err := c.categoryRepo.Insert(ctx, domain.NewCategory(req.Name))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CategoryInfo{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}, nil
}

func (c *CategoryUseCase) UpdateCategory(ctx context.Context, id int64, req *SaveCategoryReq) (*CategoryInfo, error) {
	const op = "CategoryUseCase.UpdateCategory"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	category.Name = req.Name
	if err := c.categoryRepo.Update(ctx, category); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.GetCategory(ctx, id)
}

// DeleteCategory удаляет категорию, если на неё не ссылается ни один продукт.
func (c *CategoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	const op = "CategoryUseCase.DeleteCategory"

	if _, err := c.categoryRepo.GetByID(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	hasProducts, err := c.categoryRepo.HasProducts(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if hasProducts {
		return e.Wrap(op, e.ErrCategoryHasProducts)
	}

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CategoryUseCase) GetCategory(ctx context.Context, id int64) (*CategoryInfo, error) {
	const op = "CategoryUseCase.GetCategory"

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	productCount, err := c.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CategoryInfo{
		ID:           category.ID,
		Name:         category.Name,
		ProductCount: productCount,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}, nil
}

func (c *CategoryUseCase) GetCategories(ctx context.Context) ([]CategoryInfo, error) {
	const op = "CategoryUseCase.GetCategories"

	categories, err := c.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// GetCategoryProducts возвращает продукты категории с их цветами.
func (c *CategoryUseCase) GetCategoryProducts(ctx context.Context, id int64) ([]ProductInfo, error) {
	const op = "CategoryUseCase.GetCategoryProducts"

	exists, err := c.categoryRepo.Exists(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !exists {
		return nil, e.Wrap(op, e.ErrCategoryNotFound)
	}

	products, err := c.productRepo.GetByCategory(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}
