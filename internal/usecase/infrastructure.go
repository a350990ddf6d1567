package usecase

import (
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
)

type TokenManager interface {
	Issue(user *domain.User) (token string, expiresAt time.Time, err error)
	Parse(token string) (*TokenClaims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
