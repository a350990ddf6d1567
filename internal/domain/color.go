package domain

import "time"

// Color описывает цвет, в котором может быть доступен продукт.
// ColorCode — необязательный код вида "#RRGGBB".
type Color struct {
	ID        int64
	Name      string
	ColorCode *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewColor(name string, colorCode *string) *Color {
	return &Color{
		Name:      name,
		ColorCode: colorCode,
	}
}
