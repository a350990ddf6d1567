package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{pool: pool, conv: conv}
}

const userSelect = `SELECT id, email, full_name, password_hash, role, created_at FROM users`

// GetByID возвращает пользователя по ID или e.ErrUserNotFound.
func (u *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return u.getOne(ctx, userSelect+` WHERE id = $1`, id)
}

// GetByEmail возвращает пользователя по email или e.ErrUserNotFound.
func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return u.getOne(ctx, userSelect+` WHERE email = $1`, email)
}

func (u *UserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	rows, err := q(ctx, u.pool).Query(ctx, userSelect+` ORDER BY id`)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.User, 0)
	for rows.Next() {
		var model converter.UserModel
		if err := rows.Scan(&model.ID, &model.Email, &model.FullName, &model.PasswordHash, &model.Role, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *u.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (u *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := q(ctx, u.pool).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).
		Scan(&exists)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func (u *UserRepo) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, full_name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, full_name, password_hash, role, created_at
	`

	var model converter.UserModel
	err := q(ctx, u.pool).QueryRow(ctx, query, user.Email, user.FullName, user.PasswordHash, user.Role).
		Scan(&model.ID, &model.Email, &model.FullName, &model.PasswordHash, &model.Role, &model.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

func (u *UserRepo) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var model converter.UserModel
	err := q(ctx, u.pool).QueryRow(ctx, query, arg).
		Scan(&model.ID, &model.Email, &model.FullName, &model.PasswordHash, &model.Role, &model.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrUserNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}
