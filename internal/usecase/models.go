package usecase

import "time"

// PRODUCT USECASE

// SaveProductReq — запрос на создание или обновление продукта вместе с набором цветов.
type SaveProductReq struct {
	Name        string
	Description *string
	Price       int64 // копейки
	CategoryID  int64
	ColorIDs    []int64
}

// ProductColorInfo — DTO связи продукта с цветом.
type ProductColorInfo struct {
	ID        int64
	ColorID   int64
	ColorName string
	ColorCode *string
	CreatedAt time.Time
}

// ProductInfo — плоское DTO продукта с категорией и цветами.
type ProductInfo struct {
	ID           int64
	Name         string
	Description  *string
	Price        int64
	CategoryID   int64
	CategoryName string
	Colors       []ProductColorInfo
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// PaginatedProductsRes — страница продуктов с общим количеством строк.
type PaginatedProductsRes struct {
	Products   []ProductInfo
	TotalCount int64
}

// CATEGORY USECASE

// SaveCategoryReq — запрос на создание или обновление категории.
type SaveCategoryReq struct {
	Name string
}

// CategoryInfo — DTO категории с количеством продуктов в ней.
type CategoryInfo struct {
	ID           int64
	Name         string
	ProductCount int64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// COLOR USECASE

// SaveColorReq — запрос на создание или обновление цвета.
type SaveColorReq struct {
	Name      string
	ColorCode *string
}

// ColorInfo — DTO цвета.
type ColorInfo struct {
	ID        int64
	Name      string
	ColorCode *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// AUTH USECASE

// RegisterReq — запрос на регистрацию пользователя.
type RegisterReq struct {
	Email    string
	FullName string
	Password string
}

// LoginReq — запрос на вход по логину и паролю.
type LoginReq struct {
	Email    string
	Password string
}

// UserInfo — DTO пользователя без хэша пароля.
type UserInfo struct {
	ID        int64
	Email     string
	FullName  string
	Role      string
	CreatedAt time.Time
}

// AuthRes — результат успешного входа.
type AuthRes struct {
	Token     string
	User      UserInfo
	ExpiresAt time.Time
}

// TokenClaims — данные пользователя, закодированные в токене.
type TokenClaims struct {
	UserID   int64
	Email    string
	FullName string
	Role     string
}

// MAPPERS

func NewSaveProductReq(name string, description *string, price int64, categoryID int64, colorIDs []int64) *SaveProductReq {
	return &SaveProductReq{
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
		ColorIDs:    colorIDs,
	}
}

func NewPaginatedProductsRes(products []ProductInfo, totalCount int64) *PaginatedProductsRes {
	return &PaginatedProductsRes{
		Products:   products,
		TotalCount: totalCount,
	}
}

func NewAuthRes(token string, user UserInfo, expiresAt time.Time) *AuthRes {
	return &AuthRes{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}
}
