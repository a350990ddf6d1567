package usecase

import "context"

type ProductUC interface {
	CreateProduct(ctx context.Context, req *SaveProductReq) (*ProductInfo, error)
	UpdateProduct(ctx context.Context, id int64, req *SaveProductReq) (*ProductInfo, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetProduct(ctx context.Context, id int64) (*ProductInfo, error)
	GetProducts(ctx context.Context) ([]ProductInfo, error)
	GetPaginatedProducts(ctx context.Context, page, pageSize int64) (*PaginatedProductsRes, error)
}

type CategoryUC interface {
	CreateCategory(ctx context.Context, req *SaveCategoryReq) (*CategoryInfo, error)
	UpdateCategory(ctx context.Context, id int64, req *SaveCategoryReq) (*CategoryInfo, error)
	DeleteCategory(ctx context.Context, id int64) error
	GetCategory(ctx context.Context, id int64) (*CategoryInfo, error)
	GetCategories(ctx context.Context) ([]CategoryInfo, error)
	GetCategoryProducts(ctx context.Context, id int64) ([]ProductInfo, error)
}

type ColorUC interface {
	CreateColor(ctx context.Context, req *SaveColorReq) (*ColorInfo, error)
	UpdateColor(ctx context.Context, id int64, req *SaveColorReq) (*ColorInfo, error)
	DeleteColor(ctx context.Context, id int64) error
	GetColor(ctx context.Context, id int64) (*ColorInfo, error)
	GetColors(ctx context.Context) ([]ColorInfo, error)
}

type AuthUC interface {
	Register(ctx context.Context, req *RegisterReq) (*UserInfo, error)
	Login(ctx context.Context, req *LoginReq) (*AuthRes, error)
	GetUsers(ctx context.Context) ([]UserInfo, error)
	GetProfile(ctx context.Context, userID int64) (*UserInfo, error)
}
