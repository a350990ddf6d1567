package converter

import "time"

// CategoryModel — строка таблицы categories.
type CategoryModel struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ColorModel — строка таблицы colors.
type ColorModel struct {
	ID        int64
	Name      string
	ColorCode *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ProductModel — строка таблицы products.
type ProductModel struct {
	ID          int64
	Name        string
	Description *string
	Price       int64
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// UserModel — строка таблицы users.
type UserModel struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
