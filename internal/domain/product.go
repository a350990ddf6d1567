package domain

import "time"

// Product описывает продукт каталога
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       int64 // Цена хранится в копейках
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(name string, description *string, price int64, categoryID int64) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
	}
}
