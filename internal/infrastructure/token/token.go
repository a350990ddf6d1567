package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager выпускает и проверяет подписанные HS256-токены.
type Manager struct {
	cfg *cfg.JWTCfg
}

func NewManager(cfg *cfg.JWTCfg) *Manager {
	return &Manager{cfg: cfg}
}

type claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	FullName string `json:"name"`
	Role     string `json:"role"`
}

// Issue кодирует идентичность пользователя в подписанный токен
// с ограниченным сроком действия.
func (m *Manager) Issue(user *domain.User) (string, time.Time, error) {
	const op = "token.Manager.Issue"

	now := time.Now()
	expiresAt := now.Add(time.Duration(m.cfg.ExpiryMinutes) * time.Minute)

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    m.cfg.Issuer,
			Audience:  jwt.ClaimStrings{m.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", time.Time{}, e.Wrap(op, err)
	}

	return signed, expiresAt, nil
}

// Parse проверяет подпись и срок действия токена и возвращает его данные.
// Любая причина отказа сводится к e.ErrInvalidToken.
func (m *Manager) Parse(raw string) (*usecase.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	},
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithAudience(m.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, e.ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok {
		return nil, e.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, e.ErrInvalidToken
	}

	return &usecase.TokenClaims{
		UserID:   userID,
		Email:    c.Email,
		FullName: c.FullName,
		Role:     c.Role,
	}, nil
}
