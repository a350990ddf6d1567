package converter

import "github.com/DRSN-tech/catalog-backend/internal/usecase"

// ProductConverter преобразует DTO продукта между usecase и моделью кэша.
type ProductConverter interface {
	ToRedisModel(info *usecase.ProductInfo) *ProductRedisModel
	ToUseCase(model *ProductRedisModel) *usecase.ProductInfo
}

type productConverter struct{}

func NewProductConverter() ProductConverter { return productConverter{} }

func (productConverter) ToRedisModel(info *usecase.ProductInfo) *ProductRedisModel {
	colors := make([]ProductColorRedisModel, 0, len(info.Colors))
	for _, c := range info.Colors {
		colors = append(colors, ProductColorRedisModel{
			ID:        c.ID,
			ColorID:   c.ColorID,
			ColorName: c.ColorName,
			ColorCode: c.ColorCode,
			CreatedAt: c.CreatedAt,
		})
	}

	return &ProductRedisModel{
		ID:           info.ID,
		Name:         info.Name,
		Description:  info.Description,
		Price:        info.Price,
		CategoryID:   info.CategoryID,
		CategoryName: info.CategoryName,
		Colors:       colors,
		CreatedAt:    info.CreatedAt,
		UpdatedAt:    info.UpdatedAt,
	}
}

func (productConverter) ToUseCase(model *ProductRedisModel) *usecase.ProductInfo {
	colors := make([]usecase.ProductColorInfo, 0, len(model.Colors))
	for _, c := range model.Colors {
		colors = append(colors, usecase.ProductColorInfo{
			ID:        c.ID,
			ColorID:   c.ColorID,
			ColorName: c.ColorName,
			ColorCode: c.ColorCode,
			CreatedAt: c.CreatedAt,
		})
	}

	return &usecase.ProductInfo{
		ID:           model.ID,
		Name:         model.Name,
		Description:  model.Description,
		Price:        model.Price,
		CategoryID:   model.CategoryID,
		CategoryName: model.CategoryName,
		Colors:       colors,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
