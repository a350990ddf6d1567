package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

type saveCategoryRequest struct {
	Name string `json:"name"`
}

type categoryResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	ProductCount int64      `json:"productCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

func toCategoryResponse(info *usecase.CategoryInfo) categoryResponse {
	return categoryResponse{
		ID:           info.ID,
		Name:         info.Name,
		ProductCount: info.ProductCount,
		CreatedAt:    info.CreatedAt,
		UpdatedAt:    info.UpdatedAt,
	}
}

func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	req, err := parseSaveCategoryRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := c.categoryUsecase.CreateCategory(r.Context(), req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(info))
}

func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := parseSaveCategoryRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := c.categoryUsecase.UpdateCategory(r.Context(), id, req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(info))
}

func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.categoryUsecase.DeleteCategory(r.Context(), id); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "category deleted",
	})
}

func (c *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := c.categoryUsecase.GetCategory(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(info))
}

func (c *CategoryHandler) getCategories(w http.ResponseWriter, r *http.Request) {
	infos, err := c.categoryUsecase.GetCategories(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]categoryResponse, 0, len(infos))
	for i := range infos {
		result = append(result, toCategoryResponse(&infos[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

func (c *CategoryHandler) getCategoryProducts(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	infos, err := c.categoryUsecase.GetCategoryProducts(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(infos))
}

func parseSaveCategoryRequest(r *http.Request) (*usecase.SaveCategoryReq, error) {
	var body saveCategoryRequest
	if err := decodeJSON(r, &body); err != nil {
		return nil, err
	}

	if body.Name == "" {
		return nil, e.ErrNameRequired
	}

	return &usecase.SaveCategoryReq{Name: body.Name}, nil
}
