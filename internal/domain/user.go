package domain

import "time"

// Роли пользователей
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User описывает учётную запись администратора каталога
type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

func NewUser(email, fullName, passwordHash, role string) *User {
	return &User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Role:         role,
	}
}
