package models

import "time"

type Supplier struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:45;not null;index"`
	Timestamps
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
}

// SupplierProduct links a supplier to a product it supplies.
type SupplierProduct struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	SupplyID  uint `json:"supply_id" gorm:"column:supply_id;not null;index"`
	ProductID uint `json:"product_id" gorm:"not null;index"`
	Timestamps
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
}

func (SupplierProduct) TableName() string {
	return "supplier_products"
}

// SupplierSummary is a supplier row plus the number of live products linked to it.
type SupplierSummary struct {
	Supplier
	ProductsCount int64 `json:"products_count"`
}

type SupplierDetail struct {
	Supplier
	Products []Product `json:"products"`
}
