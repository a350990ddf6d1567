package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductUC(t *testing.T) (*ProductUseCase, *fakeProductRepo, *fakeCategoryRepo, *fakeColorRepo, *fakeCacheRepo) {
	t.Helper()

	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	colorRepo := newFakeColorRepo()
	cacheRepo := newFakeCacheRepo()

	uc := NewProductUC(productRepo, categoryRepo, colorRepo, fakeDB{}, cacheRepo, nopLogger{})
	return uc, productRepo, categoryRepo, colorRepo, cacheRepo
}

func seedCategory(t *testing.T, repo *fakeCategoryRepo, name string) int64 {
	t.Helper()

	category, err := repo.Insert(context.Background(), domain.NewCategory(name))
	require.NoError(t, err)
	return category.ID
}

func seedColor(t *testing.T, repo *fakeColorRepo, name string) int64 {
	t.Helper()

	color, err := repo.Insert(context.Background(), domain.NewColor(name, nil))
	require.NoError(t, err)
	return color.ID
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product with color links", func(t *testing.T) {
		uc, productRepo, categoryRepo, colorRepo, _ := newProductUC(t)
		categoryID := seedCategory(t, categoryRepo, "Electronics")
		red := seedColor(t, colorRepo, "Red")
		blue := seedColor(t, colorRepo, "Blue")

		info, err := uc.CreateProduct(ctx, &SaveProductReq{
			Name:       "Phone",
			Price:      69999,
			CategoryID: categoryID,
			ColorIDs:   []int64{red, blue},
		})
		require.NoError(t, err)

		assert.Equal(t, "Phone", info.Name)
		assert.Equal(t, int64(69999), info.Price)
		assert.Len(t, info.Colors, 2)
		require.Len(t, productRepo.insertedColors, 1)
		assert.Equal(t, []int64{red, blue}, productRepo.insertedColors[0])
	})

	t.Run("deduplicates color ids preserving order", func(t *testing.T) {
		uc, productRepo, categoryRepo, colorRepo, _ := newProductUC(t)
		categoryID := seedCategory(t, categoryRepo, "Electronics")
		red := seedColor(t, colorRepo, "Red")
		blue := seedColor(t, colorRepo, "Blue")

		_, err := uc.CreateProduct(ctx, &SaveProductReq{
			Name:       "Phone",
			Price:      100,
			CategoryID: categoryID,
			ColorIDs:   []int64{blue, red, blue, red, blue},
		})
		require.NoError(t, err)

		require.Len(t, productRepo.insertedColors, 1)
		assert.Equal(t, []int64{blue, red}, productRepo.insertedColors[0])
	})

	t.Run("rejects blank name before touching storage", func(t *testing.T) {
		uc, productRepo, categoryRepo, _, _ := newProductUC(t)
		categoryID := seedCategory(t, categoryRepo, "Electronics")

		_, err := uc.CreateProduct(ctx, &SaveProductReq{
			Name:       "   ",
			Price:      100,
			CategoryID: categoryID,
		})
		assert.ErrorIs(t, err, e.ErrNameRequired)
		assert.Empty(t, productRepo.products)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		uc, _, categoryRepo, _, _ := newProductUC(t)
		categoryID := seedCategory(t, categoryRepo, "Electronics")

		_, err := uc.CreateProduct(ctx, &SaveProductReq{
			Name:       "Phone",
			Price:      0,
			CategoryID: categoryID,
		})
		assert.ErrorIs(t, err, e.ErrPriceMustBePositive)
	})

	t.Run("unknown category", func(t *testing.T) {
		uc, productRepo, _, _, _ := newProductUC(t)

		_, err := uc.CreateProduct(ctx, &SaveProductReq{
			Name:       "Phone",
			Price:      100,
			CategoryID: 42,
		})
		assert.ErrorIs(t, err, e.ErrCategoryNotFound)
		assert.Empty(t, productRepo.products)
	})

	t.Run("unknown color among requested", func(t *testing.T) {
		uc, productRepo, categoryRepo, colorRepo, _ := newProductUC(t)
		categoryID := seedCategory(t, categoryRepo, "Electronics")
		red := seedColor(t, colorRepo, "Red")

		_, err := uc.CreateProduct(ctx, &SaveProductReq{
			Name:       "Phone",
			Price:      100,
			CategoryID: categoryID,
			ColorIDs:   []int64{red, 99},
		})
		assert.ErrorIs(t, err, e.ErrColorNotFound)
		assert.Empty(t, productRepo.products)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces color set entirely", func(t *testing.T) {
		uc, productRepo, categoryRepo, colorRepo, _ := newProductUC(t)
		categoryID := seedCategory(t, categoryRepo, "Clothing")
		red := seedColor(t, colorRepo, "Red")
		blue := seedColor(t, colorRepo, "Blue")
		green := seedColor(t, colorRepo, "Green")

		created, err := uc.CreateProduct(ctx, &SaveProductReq{
			Name:       "Shirt",
			Price:      1999,
			CategoryID: categoryID,
			ColorIDs:   []int64{red, blue},
		})
		require.NoError(t, err)

		updated, err := uc.UpdateProduct(ctx, created.ID, &SaveProductReq{
			Name:       "Shirt v2",
			Price:      2499,
			CategoryID: categoryID,
			ColorIDs:   []int64{blue, green},
		})
		require.NoError(t, err)

		assert.Equal(t, "Shirt v2", updated.Name)
		assert.Equal(t, int64(2499), updated.Price)
		assert.Contains(t, productRepo.deletedColors, created.ID)
		assert.Equal(t, []int64{blue, green}, productRepo.colors[created.ID])
	})

	t.Run("invalidates cache after update", func(t *testing.T) {
		uc, _, categoryRepo, colorRepo, cacheRepo := newProductUC(t)
		categoryID := seedCategory(t, categoryRepo, "Clothing")
		red := seedColor(t, colorRepo, "Red")

		created, err := uc.CreateProduct(ctx, &SaveProductReq{
			Name:       "Shirt",
			Price:      1999,
			CategoryID: categoryID,
			ColorIDs:   []int64{red},
		})
		require.NoError(t, err)

		_, err = uc.UpdateProduct(ctx, created.ID, &SaveProductReq{
			Name:       "Shirt",
			Price:      999,
			CategoryID: categoryID,
			ColorIDs:   []int64{red},
		})
		require.NoError(t, err)

		require.Len(t, cacheRepo.deleted, 1)
		assert.Equal(t, []int64{created.ID}, cacheRepo.deleted[0])
	})

	t.Run("unknown product", func(t *testing.T) {
		uc, _, categoryRepo, _, _ := newProductUC(t)
		categoryID := seedCategory(t, categoryRepo, "Clothing")

		_, err := uc.UpdateProduct(ctx, 77, &SaveProductReq{
			Name:       "Ghost",
			Price:      100,
			CategoryID: categoryID,
		})
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and drops cache entry", func(t *testing.T) {
		uc, productRepo, categoryRepo, colorRepo, cacheRepo := newProductUC(t)
		categoryID := seedCategory(t, categoryRepo, "Books")
		red := seedColor(t, colorRepo, "Red")

		created, err := uc.CreateProduct(ctx, &SaveProductReq{
			Name:       "Novel",
			Price:      1499,
			CategoryID: categoryID,
			ColorIDs:   []int64{red},
		})
		require.NoError(t, err)

		require.NoError(t, uc.DeleteProduct(ctx, created.ID))
		assert.Empty(t, productRepo.products)
		require.Len(t, cacheRepo.deleted, 1)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc, _, _, _, _ := newProductUC(t)

		err := uc.DeleteProduct(ctx, 13)
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("serves cached value without hitting storage", func(t *testing.T) {
		uc, _, _, _, cacheRepo := newProductUC(t)
		cached := &ProductInfo{ID: 5, Name: "Cached"}
		require.NoError(t, cacheRepo.SetProduct(ctx, cached))

		info, err := uc.GetProduct(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Cached", info.Name)
	})

	t.Run("falls through to storage on miss", func(t *testing.T) {
		uc, _, categoryRepo, colorRepo, _ := newProductUC(t)
		categoryID := seedCategory(t, categoryRepo, "Books")
		red := seedColor(t, colorRepo, "Red")

		created, err := uc.CreateProduct(ctx, &SaveProductReq{
			Name:       "Novel",
			Price:      1499,
			CategoryID: categoryID,
			ColorIDs:   []int64{red},
		})
		require.NoError(t, err)

		info, err := uc.GetProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Novel", info.Name)
	})
}

func TestGetPaginatedProducts(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		page       int64
		pageSize   int64
		wantLimit  int64
		wantOffset int64
	}{
		{"defaults applied", 0, 0, 10, 0},
		{"negative page clamped", -3, 5, 5, 0},
		{"page size capped", 1, 500, 100, 0},
		{"offset from page", 3, 20, 20, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, productRepo, _, _, _ := newProductUC(t)
			productRepo.total = 250

			res, err := uc.GetPaginatedProducts(ctx, tt.page, tt.pageSize)
			require.NoError(t, err)

			assert.Equal(t, int64(250), res.TotalCount)
			assert.Equal(t, tt.wantLimit, productRepo.lastLimit)
			assert.Equal(t, tt.wantOffset, productRepo.lastOffset)
		})
	}
}
