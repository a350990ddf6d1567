package hash

import (
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher хэширует пароли с помощью bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	const op = "hash.BcryptHasher.Hash"

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return string(hashed), nil
}

// Compare возвращает ошибку, если пароль не соответствует хэшу.
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
