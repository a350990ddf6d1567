package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse сводит ошибку к HTTP-статусу и сообщению.
// Пары (условие, результат) проверяются сверху вниз; всё,
// что не распознано, становится 500 без деталей.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrNameRequired):
		return http.StatusBadRequest, e.ErrNameRequired.Error()
	case errors.Is(err, e.ErrPriceMustBePositive):
		return http.StatusBadRequest, e.ErrPriceMustBePositive.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidColorCode):
		return http.StatusBadRequest, e.ErrInvalidColorCode.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrPasswordTooShort):
		return http.StatusBadRequest, e.ErrPasswordTooShort.Error()
	case errors.Is(err, e.ErrInvalidID):
		return http.StatusBadRequest, e.ErrInvalidID.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, e.ErrInvalidCredentials.Error()
	case errors.Is(err, e.ErrInvalidToken):
		return http.StatusUnauthorized, e.ErrInvalidToken.Error()
	case errors.Is(err, e.ErrMissingToken):
		return http.StatusUnauthorized, e.ErrMissingToken.Error()
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, e.ErrForbidden.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrColorNotFound):
		return http.StatusNotFound, e.ErrColorNotFound.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrUserNotFound):
		return http.StatusNotFound, e.ErrUserNotFound.Error()
	case errors.Is(err, e.ErrEmailAlreadyRegistered):
		return http.StatusConflict, e.ErrEmailAlreadyRegistered.Error()
	case errors.Is(err, e.ErrCategoryHasProducts):
		return http.StatusConflict, e.ErrCategoryHasProducts.Error()
	case errors.Is(err, e.ErrColorHasVariants):
		return http.StatusConflict, e.ErrColorHasVariants.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON разбирает тело запроса в dst, отклоняя неизвестные поля.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// parseIDParam извлекает числовой URL-параметр id.
func parseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrInvalidID
	}

	return id, nil
}

// parsePriceToCents переводит строку вида "599.99" или "600" в копейки (int64).
// Отклоняются: неверный формат, больше двух знаков после запятой,
// неположительные значения и значения выше разумного предела.
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if !d.IsPositive() {
		return 0, e.ErrPriceMustBePositive
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// formatPrice переводит копейки в строку вида "599.99".
func formatPrice(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// RESPONSE DTO

type productColorResponse struct {
	ID        int64     `json:"id"`
	ColorID   int64     `json:"colorId"`
	ColorName string    `json:"colorName"`
	ColorCode *string   `json:"colorCode,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type productResponse struct {
	ID            int64                  `json:"id"`
	Name          string                 `json:"name"`
	Description   *string                `json:"description,omitempty"`
	Price         string                 `json:"price"`
	CategoryID    int64                  `json:"categoryId"`
	CategoryName  string                 `json:"categoryName"`
	ProductColors []productColorResponse `json:"productColors"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     *time.Time             `json:"updatedAt,omitempty"`
}

func toProductResponse(info *usecase.ProductInfo) productResponse {
	colors := make([]productColorResponse, 0, len(info.Colors))
	for _, c := range info.Colors {
		colors = append(colors, productColorResponse{
			ID:        c.ID,
			ColorID:   c.ColorID,
			ColorName: c.ColorName,
			ColorCode: c.ColorCode,
			CreatedAt: c.CreatedAt,
		})
	}

	return productResponse{
		ID:            info.ID,
		Name:          info.Name,
		Description:   info.Description,
		Price:         formatPrice(info.Price),
		CategoryID:    info.CategoryID,
		CategoryName:  info.CategoryName,
		ProductColors: colors,
		CreatedAt:     info.CreatedAt,
		UpdatedAt:     info.UpdatedAt,
	}
}

func toProductResponses(infos []usecase.ProductInfo) []productResponse {
	result := make([]productResponse, 0, len(infos))
	for i := range infos {
		result = append(result, toProductResponse(&infos[i]))
	}

	return result
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(info *usecase.UserInfo) userResponse {
	return userResponse{
		ID:        info.ID,
		Email:     info.Email,
		FullName:  info.FullName,
		Role:      info.Role,
		CreatedAt: info.CreatedAt,
	}
}
