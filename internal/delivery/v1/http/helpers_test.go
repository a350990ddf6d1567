package http

import (
	"net/http"
	"testing"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{"integer", "600", 60000, nil},
		{"two decimals", "599.99", 59999, nil},
		{"one decimal", "19.9", 1990, nil},
		{"smallest", "0.01", 1, nil},
		{"empty", "", 0, e.ErrInvalidPrice},
		{"garbage", "abc", 0, e.ErrInvalidPrice},
		{"zero", "0", 0, e.ErrPriceMustBePositive},
		{"negative", "-5", 0, e.ErrPriceMustBePositive},
		{"three decimals", "10.999", 0, e.ErrPricePrecision},
		{"over limit", "1000000001", 0, e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "599.99", formatPrice(59999))
	assert.Equal(t, "600.00", formatPrice(60000))
	assert.Equal(t, "0.01", formatPrice(1))
}

func TestPriceRoundTrip(t *testing.T) {
	for _, s := range []string{"0.01", "19.90", "599.99", "1000000000.00"} {
		cents, err := parsePriceToCents(s)
		require.NoError(t, err)
		assert.Equal(t, s, formatPrice(cents))
	}
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.ErrNameRequired, http.StatusBadRequest},
		{e.ErrInvalidID, http.StatusBadRequest},
		{e.ErrInvalidCredentials, http.StatusUnauthorized},
		{e.ErrMissingToken, http.StatusUnauthorized},
		{e.ErrForbidden, http.StatusForbidden},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrCategoryHasProducts, http.StatusConflict},
		{e.ErrEmailAlreadyRegistered, http.StatusConflict},
	}

	for _, tt := range tests {
		code, msg := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.code, code, "error %v", tt.err)
		assert.Equal(t, tt.err.Error(), msg)
	}
}

func TestToHTTPResponseWrappedError(t *testing.T) {
	code, msg := ToHTTPResponse(e.Wrap("ProductUseCase.GetProduct", e.ErrProductNotFound))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, e.ErrProductNotFound.Error(), msg)
}

func TestToHTTPResponseHidesUnknownErrors(t *testing.T) {
	code, msg := ToHTTPResponse(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}
