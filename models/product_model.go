package models

import "time"

type Product struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:45;not null"`
	Description string `json:"description" gorm:"size:45;not null"`
	Quantity    int    `json:"quantity" gorm:"not null;default:0;check:chk_products_quantity,quantity >= 0"`
	Timestamps
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
}

type ProductDetail struct {
	Product
	Suppliers []Supplier `json:"suppliers"`
}

// OrderableProduct is the trimmed shape used by the order form.
type OrderableProduct struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}
