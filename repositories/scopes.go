package repositories

import (
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Active keeps rows of table that have not been soft-deleted.
func Active(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table + ".deleted_at IS NULL")
	}
}

// products that still have a live supplier behind a live link
const hasActiveSupplier = `EXISTS (
	SELECT 1 FROM supplier_products sp
	INNER JOIN suppliers s ON s.id = sp.supply_id
	WHERE sp.product_id = products.id
	AND sp.deleted_at IS NULL
	AND s.deleted_at IS NULL
)`

// orders that still hold a live line pointing at a live product
const hasLiveProduct = `EXISTS (
	SELECT 1 FROM order_details od
	INNER JOIN products p ON p.id = od.product_id
	WHERE od.order_id = orders.id
	AND od.deleted_at IS NULL
	AND p.deleted_at IS NULL
)`

const hasLiveProductIn = `EXISTS (
	SELECT 1 FROM order_details od
	INNER JOIN products p ON p.id = od.product_id
	WHERE od.order_id = orders.id
	AND od.deleted_at IS NULL
	AND p.deleted_at IS NULL
	AND od.product_id IN ?
)`

// uniqueIDs returns a sorted copy of ids without duplicates.
func uniqueIDs(ids []uint) []uint {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
