package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)

	// Методы, возвращающие плоский граф продукта (категория + цвета)
	GetGraph(ctx context.Context, id int64) (*ProductInfo, error)
	GetAllGraph(ctx context.Context) ([]ProductInfo, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]ProductInfo, error)
	GetPaginated(ctx context.Context, limit, offset int64) ([]ProductInfo, error)

	// Синхронизация связей продукт-цвет
	InsertColors(ctx context.Context, productID int64, colorIDs []int64) error
	DeleteColors(ctx context.Context, productID int64) error
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	GetAll(ctx context.Context) ([]CategoryInfo, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Insert(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error
	HasProducts(ctx context.Context, id int64) (bool, error)
	CountProducts(ctx context.Context, id int64) (int64, error)
}

type ColorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Color, error)
	GetAll(ctx context.Context) ([]domain.Color, error)
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
	Insert(ctx context.Context, color *domain.Color) (*domain.Color, error)
	Update(ctx context.Context, color *domain.Color) error
	Delete(ctx context.Context, id int64) error
	HasVariants(ctx context.Context, id int64) (bool, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
}

type CacheRepository interface {
	GetProduct(ctx context.Context, id int64) (*ProductInfo, error)
	SetProduct(ctx context.Context, product *ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}
