package repositories

import (
	"context"
	"inventory-api/models"
	"time"

	"gorm.io/gorm"
)

type SupplierRepository struct {
	DB *gorm.DB
}

func NewSupplierRepository(DB *gorm.DB) *SupplierRepository {
	return &SupplierRepository{DB: DB}
}

func (r *SupplierRepository) WithTx(tx *gorm.DB) *SupplierRepository {
	return &SupplierRepository{DB: tx}
}

type supplierProductCount struct {
	SupplyID uint
	Total    int64
}

const sqlSupplierProductCounts = `SELECT sp.supply_id, COUNT(*) AS total
	FROM supplier_products sp
	INNER JOIN products p ON p.id = sp.product_id
	WHERE sp.deleted_at IS NULL
	AND p.deleted_at IS NULL
	AND sp.supply_id IN ?
	GROUP BY sp.supply_id`

// List returns live suppliers ordered by id, each with its live product count.
func (r *SupplierRepository) List(ctx context.Context) ([]models.SupplierSummary, error) {
	var suppliers []models.Supplier
	if err := r.DB.WithContext(ctx).Scopes(Active("suppliers")).Order("suppliers.id").Find(&suppliers).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(suppliers))
	for _, s := range suppliers {
		ids = append(ids, s.ID)
	}

	counts := make(map[uint]int64, len(ids))
	if len(ids) > 0 {
		var rows []supplierProductCount
		if err := r.DB.WithContext(ctx).Raw(sqlSupplierProductCounts, ids).Scan(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			counts[row.SupplyID] = row.Total
		}
	}

	out := make([]models.SupplierSummary, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, models.SupplierSummary{Supplier: s, ProductsCount: counts[s.ID]})
	}
	return out, nil
}

func (r *SupplierRepository) Get(ctx context.Context, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.DB.WithContext(ctx).Scopes(Active("suppliers")).First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// NameTaken compares names exactly, so a case-insensitive collation cannot produce a false hit.
func (r *SupplierRepository) NameTaken(ctx context.Context, name string) (bool, error) {
	var names []string
	err := r.DB.WithContext(ctx).Model(&models.Supplier{}).
		Scopes(Active("suppliers")).
		Where("name = ?", name).
		Pluck("name", &names).Error
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	return r.DB.WithContext(ctx).Create(supplier).Error
}

func (r *SupplierRepository) UpdateName(ctx context.Context, id uint, name string) error {
	return r.DB.WithContext(ctx).Model(&models.Supplier{}).Where("id = ?", id).Update("name", name).Error
}

func (r *SupplierRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Model(&models.Supplier{}).Where("id = ?", id).Update("deleted_at", time.Now()).Error
}

// Products returns the live products linked to supplierID through live links.
func (r *SupplierRepository) Products(ctx context.Context, supplierID uint) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Select("products.*").
		Joins("INNER JOIN supplier_products ON supplier_products.product_id = products.id").
		Scopes(Active("products"), Active("supplier_products")).
		Where("supplier_products.supply_id = ?", supplierID).
		Order("products.id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
