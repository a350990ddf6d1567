package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jackc/pgx/v5"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// fakeTx подменяет pgx.Tx: фиксация и откат ничего не делают.
type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct{}

func (fakeDB) Begin(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

func (fakeDB) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) { return fakeTx{}, nil }

// fakeProductRepo хранит продукты и связи в памяти и записывает вызовы мутаций.
type fakeProductRepo struct {
	products map[int64]*domain.Product
	colors   map[int64][]int64
	nextID   int64

	total      int64
	lastLimit  int64
	lastOffset int64

	insertedColors [][]int64
	deletedColors  []int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[int64]*domain.Product),
		colors:   make(map[int64][]int64),
	}
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) Insert(_ context.Context, product *domain.Product) (*domain.Product, error) {
	f.nextID++
	copied := *product
	copied.ID = f.nextID
	f.products[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return e.ErrProductNotFound
	}
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(f.products, id)
	delete(f.colors, id)
	return nil
}

func (f *fakeProductRepo) Count(context.Context) (int64, error) { return f.total, nil }

func (f *fakeProductRepo) GetGraph(_ context.Context, id int64) (*ProductInfo, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	info := &ProductInfo{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		CategoryID: product.CategoryID,
		Colors:     make([]ProductColorInfo, 0),
	}
	for _, colorID := range f.colors[id] {
		info.Colors = append(info.Colors, ProductColorInfo{ColorID: colorID})
	}
	return info, nil
}

func (f *fakeProductRepo) GetAllGraph(ctx context.Context) ([]ProductInfo, error) {
	result := make([]ProductInfo, 0, len(f.products))
	for id := range f.products {
		info, err := f.GetGraph(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, *info)
	}
	return result, nil
}

func (f *fakeProductRepo) GetByCategory(ctx context.Context, categoryID int64) ([]ProductInfo, error) {
	result := make([]ProductInfo, 0)
	for id, product := range f.products {
		if product.CategoryID != categoryID {
			continue
		}
		info, err := f.GetGraph(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, *info)
	}
	return result, nil
}

func (f *fakeProductRepo) GetPaginated(_ context.Context, limit, offset int64) ([]ProductInfo, error) {
	f.lastLimit, f.lastOffset = limit, offset
	return []ProductInfo{}, nil
}

func (f *fakeProductRepo) InsertColors(_ context.Context, productID int64, colorIDs []int64) error {
	f.colors[productID] = append([]int64(nil), colorIDs...)
	f.insertedColors = append(f.insertedColors, append([]int64(nil), colorIDs...))
	return nil
}

func (f *fakeProductRepo) DeleteColors(_ context.Context, productID int64) error {
	delete(f.colors, productID)
	f.deletedColors = append(f.deletedColors, productID)
	return nil
}

type fakeCategoryRepo struct {
	categories    map[int64]*domain.Category
	productCounts map[int64]int64
	nextID        int64
	deleted       []int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:    make(map[int64]*domain.Category),
		productCounts: make(map[int64]int64),
	}
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCategoryRepo) GetAll(context.Context) ([]CategoryInfo, error) {
	result := make([]CategoryInfo, 0, len(f.categories))
	for id, category := range f.categories {
		result = append(result, CategoryInfo{
			ID:           id,
			Name:         category.Name,
			ProductCount: f.productCounts[id],
			CreatedAt:    category.CreatedAt,
		})
	}
	return result, nil
}

func (f *fakeCategoryRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.categories[id]
	return ok, nil
}

func (f *fakeCategoryRepo) Insert(_ context.Context, category *domain.Category) (*domain.Category, error) {
	f.nextID++
	copied := *category
	copied.ID = f.nextID
	f.categories[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return e.ErrCategoryNotFound
	}
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(f.categories, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCategoryRepo) HasProducts(_ context.Context, id int64) (bool, error) {
	return f.productCounts[id] > 0, nil
}

func (f *fakeCategoryRepo) CountProducts(_ context.Context, id int64) (int64, error) {
	return f.productCounts[id], nil
}

type fakeColorRepo struct {
	colors  map[int64]*domain.Color
	used    map[int64]bool
	nextID  int64
	deleted []int64
}

func newFakeColorRepo() *fakeColorRepo {
	return &fakeColorRepo{
		colors: make(map[int64]*domain.Color),
		used:   make(map[int64]bool),
	}
}

func (f *fakeColorRepo) GetByID(_ context.Context, id int64) (*domain.Color, error) {
	color, ok := f.colors[id]
	if !ok {
		return nil, e.ErrColorNotFound
	}
	copied := *color
	return &copied, nil
}

func (f *fakeColorRepo) GetAll(context.Context) ([]domain.Color, error) {
	result := make([]domain.Color, 0, len(f.colors))
	for _, color := range f.colors {
		result = append(result, *color)
	}
	return result, nil
}

func (f *fakeColorRepo) CountByIDs(_ context.Context, ids []int64) (int64, error) {
	var count int64
	for _, id := range ids {
		if _, ok := f.colors[id]; ok {
			count++
		}
	}
	return count, nil
}

func (f *fakeColorRepo) Insert(_ context.Context, color *domain.Color) (*domain.Color, error) {
	f.nextID++
	copied := *color
	copied.ID = f.nextID
	f.colors[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeColorRepo) Update(_ context.Context, color *domain.Color) error {
	if _, ok := f.colors[color.ID]; !ok {
		return e.ErrColorNotFound
	}
	copied := *color
	f.colors[color.ID] = &copied
	return nil
}

func (f *fakeColorRepo) Delete(_ context.Context, id int64) error {
	delete(f.colors, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeColorRepo) HasVariants(_ context.Context, id int64) (bool, error) {
	return f.used[id], nil
}

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, e.ErrUserNotFound
}

func (f *fakeUserRepo) GetAll(context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		result = append(result, *user)
	}
	return result, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	f.nextID++
	copied := *user
	copied.ID = f.nextID
	f.users[copied.ID] = &copied
	result := copied
	return &result, nil
}

// fakeCacheRepo защищён мьютексом: SetProduct вызывается из фоновой горутины.
type fakeCacheRepo struct {
	mu      sync.Mutex
	items   map[int64]*ProductInfo
	deleted [][]int64
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{items: make(map[int64]*ProductInfo)}
}

func (f *fakeCacheRepo) GetProduct(_ context.Context, id int64) (*ProductInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[id], nil
}

func (f *fakeCacheRepo) SetProduct(_ context.Context, product *ProductInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[product.ID] = product
	return nil
}

func (f *fakeCacheRepo) DeleteProducts(_ context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		delete(f.items, id)
	}
	f.deleted = append(f.deleted, append([]int64(nil), ids...))
	return nil
}
