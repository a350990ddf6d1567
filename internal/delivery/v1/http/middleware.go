package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

type ctxKey int

const claimsKey ctxKey = iota

// Auth проверяет токен из заголовка Authorization или cookie "token"
// и кладёт его данные в контекст запроса.
func Auth(tokens usecase.TokenManager, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				WriteError(w, e.ErrMissingToken)
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				logger.Warnf("token rejected: %v", err)
				WriteError(w, e.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// RequireRole пропускает запрос только при совпадении роли из токена.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromCtx(r.Context())
			if !ok || claims.Role != role {
				WriteError(w, e.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromCtx возвращает данные токена, помещённые в контекст middleware Auth.
func ClaimsFromCtx(ctx context.Context) (*usecase.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*usecase.TokenClaims)
	return claims, ok
}

func extractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, found := strings.CutPrefix(header, "Bearer "); found {
			return token
		}
	}

	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}

	return ""
}
