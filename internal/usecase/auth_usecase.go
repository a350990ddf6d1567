package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

// AuthUseCase реализует регистрацию, вход и выдачу данных пользователей.
type AuthUseCase struct {
	userRepo UserRepository
	hasher   PasswordHasher
	tokens   TokenManager
	logger   logger.Logger
}

func NewAuthUC(userRepo UserRepository, hasher PasswordHasher, tokens TokenManager, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register создаёт пользователя с ролью Admin.
// Каждый саморегистрирующийся пользователь получает права администратора —
// политика исходной системы сохранена.
func (a *AuthUseCase) Register(ctx context.Context, req *RegisterReq) (*UserInfo, error) {
	const op = "AuthUseCase.Register"

	if err := validateRegister(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	exists, err := a.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if exists {
		return nil, e.Wrap(op, e.ErrEmailAlreadyRegistered)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.userRepo.Insert(ctx, domain.NewUser(req.Email, req.FullName, hash, domain.RoleAdmin))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := toUserInfo(user)
	return &info, nil
}

// Login проверяет учётные данные и выдаёт подписанный токен.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*AuthRes, error) {
	const op = "AuthUseCase.Login"

	user, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}
		return nil, e.Wrap(op, err)
	}

	if err := a.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	token, expiresAt, err := a.tokens.Issue(user)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewAuthRes(token, toUserInfo(user), expiresAt), nil
}

func (a *AuthUseCase) GetUsers(ctx context.Context) ([]UserInfo, error) {
	const op = "AuthUseCase.GetUsers"

	users, err := a.userRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]UserInfo, 0, len(users))
	for i := range users {
		result = append(result, toUserInfo(&users[i]))
	}

	return result, nil
}

func (a *AuthUseCase) GetProfile(ctx context.Context, userID int64) (*UserInfo, error) {
	const op = "AuthUseCase.GetProfile"

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := toUserInfo(user)
	return &info, nil
}

func validateRegister(req *RegisterReq) error {
	const minPasswordLen = 6

	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.FullName) == "" {
		return e.ErrMissingFields
	}

	if len(req.Password) < minPasswordLen {
		return e.ErrPasswordTooShort
	}

	return nil
}

func toUserInfo(user *domain.User) UserInfo {
	return UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
