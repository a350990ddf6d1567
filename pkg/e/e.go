package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrNameRequired        = fmt.Errorf("name is required")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidColorCode    = fmt.Errorf("color code must be in #RRGGBB format")
	ErrMissingFields       = fmt.Errorf("required fields are missing")
	ErrInvalidID           = fmt.Errorf("invalid id")
	ErrPasswordTooShort    = fmt.Errorf("password must be at least 6 characters")
	ErrStatusBadRequest    = fmt.Errorf("bad request")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")
	ErrMissingToken       = fmt.Errorf("authorization token is missing")

	// 403 Forbidden
	ErrForbidden = fmt.Errorf("insufficient permissions")

	// 404 Not Found
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrColorNotFound    = fmt.Errorf("color not found")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrUserNotFound     = fmt.Errorf("user not found")

	// 409 Conflict
	ErrEmailAlreadyRegistered = fmt.Errorf("email is already registered")
	ErrCategoryHasProducts    = fmt.Errorf("category has products and cannot be deleted")
	ErrColorHasVariants       = fmt.Errorf("color is used by product variants and cannot be deleted")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
