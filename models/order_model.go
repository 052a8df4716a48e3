package models

import "time"

type Order struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	OrderNumber string `json:"order_number" gorm:"size:45;not null"`
	Timestamps
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
}

// OrderDetail is one order line. A product may appear on several lines of the same order.
type OrderDetail struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	OrderID   uint `json:"order_id" gorm:"not null;index"`
	ProductID uint `json:"product_id" gorm:"not null;index"`
	Timestamps
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
}

func (OrderDetail) TableName() string {
	return "order_details"
}

type OrderPivot struct {
	OrderID   uint       `json:"order_id"`
	ProductID uint       `json:"product_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

type OrderProduct struct {
	Product
	Pivot OrderPivot `json:"pivot"`
}

type OrderSummary struct {
	Order
	Products      []OrderProduct `json:"products"`
	ProductsCount int            `json:"products_count"`
}
