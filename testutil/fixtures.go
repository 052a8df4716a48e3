package testutil

import (
	"testing"
	"time"

	"inventory-api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func CreateSupplier(t testing.TB, db *gorm.DB, name string) models.Supplier {
	t.Helper()
	s := models.Supplier{Name: name}
	require.NoError(t, db.Create(&s).Error)
	return s
}

// CreateProduct inserts a product linked to supplierID.
func CreateProduct(t testing.TB, db *gorm.DB, supplierID uint, name string, quantity int) models.Product {
	t.Helper()
	p := models.Product{Name: name, Description: name + " description", Quantity: quantity}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Create(&models.SupplierProduct{SupplyID: supplierID, ProductID: p.ID}).Error)
	return p
}

// CreateOrder inserts an order with one line per product id, without touching stock.
func CreateOrder(t testing.TB, db *gorm.DB, number string, createdAt time.Time, productIDs ...uint) models.Order {
	t.Helper()
	o := models.Order{OrderNumber: number}
	if !createdAt.IsZero() {
		o.CreatedAt = createdAt
		o.UpdatedAt = createdAt
	}
	require.NoError(t, db.Create(&o).Error)
	for _, id := range productIDs {
		require.NoError(t, db.Create(&models.OrderDetail{OrderID: o.ID, ProductID: id}).Error)
	}
	return o
}

// SoftDelete stamps deleted_at on the row with id in table.
func SoftDelete(t testing.TB, db *gorm.DB, table string, id uint) {
	t.Helper()
	require.NoError(t, db.Table(table).Where("id = ?", id).Update("deleted_at", time.Now()).Error)
}
