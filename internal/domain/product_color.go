package domain

import "time"

// ProductColor — связующая сущность «продукт доступен в цвете».
// Строки пересоздаются целиком при каждом обновлении набора цветов продукта,
// поэтому ID и CreatedAt не стабильны между обновлениями.
type ProductColor struct {
	ID        int64
	ProductID int64
	ColorID   int64
	CreatedAt time.Time
}
