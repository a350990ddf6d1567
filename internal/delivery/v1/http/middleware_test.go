package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/infrastructure/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func testTokenManager() *token.Manager {
	return token.NewManager(&cfg.JWTCfg{
		Secret:        "0123456789abcdef0123456789abcdef",
		Issuer:        "catalog-backend",
		Audience:      "catalog-admin",
		ExpiryMinutes: 60,
	})
}

func issueToken(t *testing.T, role string) string {
	t.Helper()

	signed, _, err := testTokenManager().Issue(&domain.User{
		ID:       1,
		Email:    "admin@example.com",
		FullName: "Admin",
		Role:     role,
	})
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	handler := Auth(testTokenManager(), nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromCtx(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(1), claims.UserID)
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("passes request with bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, domain.RoleAdmin))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("accepts token from cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: issueToken(t, domain.RoleAdmin)})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	protected := Auth(testTokenManager(), nopLogger{})(RequireRole(domain.RoleAdmin)(next))

	t.Run("allows matching role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, domain.RoleAdmin))

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejects other role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, domain.RoleUser))

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rejects request without claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)

		rec := httptest.NewRecorder()
		RequireRole(domain.RoleAdmin)(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
