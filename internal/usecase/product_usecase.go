package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ProductUseCase реализует бизнес-логику управления продуктами
// и синхронизацию их связей с цветами.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	colorRepo    ColorRepository
	dbPool       transaction.Transactional
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	colorRepo ColorRepository,
	dbPool transaction.Transactional,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		colorRepo:    colorRepo,
		dbPool:       dbPool,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// CreateProduct создаёт продукт вместе со связями продукт-цвет.
// Валидация категории и цветов, вставка продукта и вставка связей
// выполняются в одной транзакции.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *SaveProductReq) (*ProductInfo, error) {
	const op = "ProductUseCase.CreateProduct"

	var err error
	if err = p.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	colorIDs := dedupIDs(req.ColorIDs)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Валидация ссылок на категорию и цвета
	if err = p.checkReferences(ctx, req.CategoryID, colorIDs); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.productRepo.Insert(ctx, domain.NewProduct(req.Name, req.Description, req.Price, req.CategoryID))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = p.productRepo.InsertColors(ctx, product.ID, colorIDs); err != nil {
		return nil, e.Wrap(op, err)
	}

	info, err := p.productRepo.GetGraph(ctx, product.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return info, nil
}

// UpdateProduct обновляет скалярные поля продукта и целиком заменяет
// набор его связей с цветами (delete-all-then-insert-all, без диффа).
func (p *ProductUseCase) UpdateProduct(ctx context.Context, id int64, req *SaveProductReq) (*ProductInfo, error) {
	const op = "ProductUseCase.UpdateProduct"

	var err error
	if err = p.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	colorIDs := dedupIDs(req.ColorIDs)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = p.checkReferences(ctx, req.CategoryID, colorIDs); err != nil {
		return nil, e.Wrap(op, err)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.CategoryID = req.CategoryID

	if err = p.productRepo.Update(ctx, product); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Полная замена набора цветов, даже если он не изменился
	if err = p.productRepo.DeleteColors(ctx, id); err != nil {
		return nil, e.Wrap(op, err)
	}
	if err = p.productRepo.InsertColors(ctx, id, colorIDs); err != nil {
		return nil, e.Wrap(op, err)
	}

	info, err := p.productRepo.GetGraph(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, id)

	return info, nil
}

// DeleteProduct удаляет продукт; связи продукт-цвет каскадно удаляет хранилище.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "ProductUseCase.DeleteProduct"

	if _, err := p.productRepo.GetByID(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := p.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateCache(ctx, id)

	return nil
}

// GetProduct возвращает плоский граф продукта, используя кэш на чтение.
// Ошибки кэша не влияют на результат: происходит переход к базе данных.
func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*ProductInfo, error) {
	const op = "ProductUseCase.GetProduct"

	cached, err := p.cacheRepo.GetProduct(ctx, id)
	if err != nil {
		p.logger.Warnf("product cache lookup failed: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	info, err := p.productRepo.GetGraph(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновое добавление продукта в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProduct(bgCtx, info); err != nil {
			p.logger.Warnf("failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return info, nil
}

// GetProducts возвращает все продукты с категориями и цветами.
func (p *ProductUseCase) GetProducts(ctx context.Context) ([]ProductInfo, error) {
	const op = "ProductUseCase.GetProducts"

	products, err := p.productRepo.GetAllGraph(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetPaginatedProducts возвращает страницу продуктов и полное количество строк.
// Некорректные page/pageSize приводятся к допустимым значениям.
func (p *ProductUseCase) GetPaginatedProducts(ctx context.Context, page, pageSize int64) (*PaginatedProductsRes, error) {
	const op = "ProductUseCase.GetPaginatedProducts"

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	totalCount, err := p.productRepo.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := p.productRepo.GetPaginated(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPaginatedProductsRes(products, totalCount), nil
}

// checkReferences проверяет существование категории и всех запрошенных цветов.
// Цвета проверяются сравнением количества: какой именно ID отсутствует, не сообщается.
func (p *ProductUseCase) checkReferences(ctx context.Context, categoryID int64, colorIDs []int64) error {
	exists, err := p.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return e.ErrCategoryNotFound
	}

	if len(colorIDs) == 0 {
		return nil
	}

	count, err := p.colorRepo.CountByIDs(ctx, colorIDs)
	if err != nil {
		return err
	}
	if count != int64(len(colorIDs)) {
		return e.ErrColorNotFound
	}

	return nil
}

// invalidateCache удаляет продукт из кэша после успешной мутации.
func (p *ProductUseCase) invalidateCache(ctx context.Context, id int64) {
	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("failed to invalidate product cache: %v", err)
	}
}

// validateProduct проверяет корректность входных данных запроса.
func (p *ProductUseCase) validateProduct(req *SaveProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrNameRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	return nil
}

// dedupIDs убирает повторяющиеся ID, сохраняя порядок первого вхождения.
func dedupIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}
