package converter

import "time"

// ProductColorRedisModel — сериализуемое представление связи продукт-цвет в кэше.
type ProductColorRedisModel struct {
	ID        int64     `json:"id"`
	ColorID   int64     `json:"color_id"`
	ColorName string    `json:"color_name"`
	ColorCode *string   `json:"color_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductRedisModel — сериализуемое представление продукта в кэше.
type ProductRedisModel struct {
	ID           int64                    `json:"id"`
	Name         string                   `json:"name"`
	Description  *string                  `json:"description,omitempty"`
	Price        int64                    `json:"price"`
	CategoryID   int64                    `json:"category_id"`
	CategoryName string                   `json:"category_name"`
	Colors       []ProductColorRedisModel `json:"colors"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    *time.Time               `json:"updated_at,omitempty"`
}
