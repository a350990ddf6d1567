package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

type saveProductRequest struct {
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Price       json.Number `json:"price"`
	CategoryID  int64       `json:"categoryId"`
	ColorIDs    []int64     `json:"colorIds"`
}

type paginatedProductsResponse struct {
	Products   []productResponse `json:"products"`
	TotalCount int64             `json:"totalCount"`
}

func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := parseSaveProductRequest(r)
	if err != nil {
		p.logger.Warnf("%d create product: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(info))
}

func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := parseSaveProductRequest(r)
	if err != nil {
		p.logger.Warnf("%d update product: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.UpdateProduct(r.Context(), id, req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(info))
}

func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.DeleteProduct(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "product deleted",
	})
}

func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(info))
}

func (p *ProductHandler) getProducts(w http.ResponseWriter, r *http.Request) {
	infos, err := p.productUsecase.GetProducts(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(infos))
}

func (p *ProductHandler) getPaginatedProducts(w http.ResponseWriter, r *http.Request) {
	page := parseQueryInt(r, "page", 1)
	size := parseQueryInt(r, "size", 0)

	res, err := p.productUsecase.GetPaginatedProducts(r.Context(), page, size)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, paginatedProductsResponse{
		Products:   toProductResponses(res.Products),
		TotalCount: res.TotalCount,
	})
}

func parseSaveProductRequest(r *http.Request) (*usecase.SaveProductReq, error) {
	var body saveProductRequest
	if err := decodeJSON(r, &body); err != nil {
		return nil, err
	}

	if body.Name == "" || body.CategoryID == 0 || len(body.ColorIDs) == 0 {
		return nil, e.ErrMissingFields
	}

	price, err := parsePriceToCents(body.Price.String())
	if err != nil {
		return nil, err
	}

	return usecase.NewSaveProductReq(body.Name, body.Description, price, body.CategoryID, body.ColorIDs), nil
}

// parseQueryInt читает числовой query-параметр; при отсутствии
// или мусоре возвращает значение по умолчанию.
func parseQueryInt(r *http.Request, key string, defaultValue int64) int64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}
