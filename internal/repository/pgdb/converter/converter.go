package converter

import "github.com/DRSN-tech/catalog-backend/internal/domain"

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// ColorConverter преобразует сущности Color между domain и моделью PostgreSQL.
type ColorConverter interface {
	ToModel(entity *domain.Color) *ColorModel
	ToEntity(model *ColorModel) *domain.Color
}

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
}

type productConverter struct{}

func NewProductConverter() ProductConverter { return productConverter{} }

func (productConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Price:       entity.Price,
		CategoryID:  entity.CategoryID,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (productConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		CategoryID:  model.CategoryID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

type categoryConverter struct{}

func NewCategoryConverter() CategoryConverter { return categoryConverter{} }

func (categoryConverter) ToModel(entity *domain.Category) *CategoryModel {
	return &CategoryModel{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (categoryConverter) ToEntity(model *CategoryModel) *domain.Category {
	return &domain.Category{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

type colorConverter struct{}

func NewColorConverter() ColorConverter { return colorConverter{} }

func (colorConverter) ToModel(entity *domain.Color) *ColorModel {
	return &ColorModel{
		ID:        entity.ID,
		Name:      entity.Name,
		ColorCode: entity.ColorCode,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (colorConverter) ToEntity(model *ColorModel) *domain.Color {
	return &domain.Color{
		ID:        model.ID,
		Name:      model.Name,
		ColorCode: model.ColorCode,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

type userConverter struct{}

func NewUserConverter() UserConverter { return userConverter{} }

func (userConverter) ToModel(entity *domain.User) *UserModel {
	return &UserModel{
		ID:           entity.ID,
		Email:        entity.Email,
		FullName:     entity.FullName,
		PasswordHash: entity.PasswordHash,
		Role:         entity.Role,
		CreatedAt:    entity.CreatedAt,
	}
}

func (userConverter) ToEntity(model *UserModel) *domain.User {
	return &domain.User{
		ID:           model.ID,
		Email:        model.Email,
		FullName:     model.FullName,
		PasswordHash: model.PasswordHash,
		Role:         model.Role,
		CreatedAt:    model.CreatedAt,
	}
}
