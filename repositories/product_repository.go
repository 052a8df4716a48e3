package repositories

import (
	"context"
	"errors"
	"inventory-api/models"
	"time"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(DB *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: DB}
}

func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: tx}
}

// ListWithSuppliers returns live products that still have a live supplier, each with its suppliers.
func (r *ProductRepository) ListWithSuppliers(ctx context.Context) ([]models.ProductDetail, error) {
	var products []models.Product
	err := r.DB.WithContext(ctx).
		Scopes(Active("products")).
		Where(hasActiveSupplier).
		Order("products.id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	suppliers, err := r.suppliersFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.ProductDetail, 0, len(products))
	for _, p := range products {
		out = append(out, models.ProductDetail{Product: p, Suppliers: orEmpty(suppliers[p.ID])})
	}
	return out, nil
}

func (r *ProductRepository) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Scopes(Active("products")).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) GetWithSuppliers(ctx context.Context, id uint) (*models.ProductDetail, error) {
	product, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	suppliers, err := r.suppliersFor(ctx, []uint{product.ID})
	if err != nil {
		return nil, err
	}
	return &models.ProductDetail{Product: *product, Suppliers: orEmpty(suppliers[product.ID])}, nil
}

func (r *ProductRepository) suppliersFor(ctx context.Context, productIDs []uint) (map[uint][]models.Supplier, error) {
	out := make(map[uint][]models.Supplier)
	if len(productIDs) == 0 {
		return out, nil
	}

	var links []models.SupplierProduct
	err := r.DB.WithContext(ctx).
		Scopes(Active("supplier_products")).
		Where("product_id IN ?", productIDs).
		Order("id").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	supplierIDs := make([]uint, 0, len(links))
	for _, l := range links {
		supplierIDs = append(supplierIDs, l.SupplyID)
	}
	supplierIDs = uniqueIDs(supplierIDs)
	if len(supplierIDs) == 0 {
		return out, nil
	}

	var suppliers []models.Supplier
	if err := r.DB.WithContext(ctx).Scopes(Active("suppliers")).Where("id IN ?", supplierIDs).Find(&suppliers).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Supplier, len(suppliers))
	for _, s := range suppliers {
		byID[s.ID] = s
	}

	for _, l := range links {
		if s, ok := byID[l.SupplyID]; ok {
			out[l.ProductID] = append(out[l.ProductID], s)
		}
	}
	return out, nil
}

// ListOrderable returns live, in-stock products that still have a live supplier.
func (r *ProductRepository) ListOrderable(ctx context.Context) ([]models.OrderableProduct, error) {
	products := make([]models.OrderableProduct, 0)
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Select("products.id, products.name, products.description, products.quantity").
		Scopes(Active("products")).
		Where("products.quantity > 0").
		Where(hasActiveSupplier).
		Order("products.id").
		Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ExistingIDs returns, sorted, the subset of ids that belong to live products.
func (r *ProductRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	found := make([]uint, 0, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Scopes(Active("products")).
		Where("id IN ?", ids).
		Order("id").
		Pluck("id", &found).Error
	return found, err
}

// Create inserts the product and links it to supplierID. Callers wrap it in a transaction.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product, supplierID uint) error {
	db := r.DB.WithContext(ctx)
	if err := db.Create(product).Error; err != nil {
		return err
	}
	return db.Create(&models.SupplierProduct{SupplyID: supplierID, ProductID: product.ID}).Error
}

func (r *ProductRepository) Update(ctx context.Context, id uint, name, description string, quantity int) error {
	return r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
		"quantity":    quantity,
	}).Error
}

// DecrementStock takes one unit if any is left. It reports false when the product is out of stock.
func (r *ProductRepository) DecrementStock(ctx context.Context, id uint) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).
		Scopes(Active("products")).
		Where("id = ? AND quantity > 0", id).
		Update("quantity", gorm.Expr("quantity - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// InLiveOrder reports whether a live order holds a live line for the product.
func (r *ProductRepository) InLiveOrder(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("order_details").
		Joins("INNER JOIN orders ON orders.id = order_details.order_id").
		Scopes(Active("order_details"), Active("orders")).
		Where("order_details.product_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// DetachFirstSupplier soft-deletes the oldest live supplier link of the product, if there is one.
func (r *ProductRepository) DetachFirstSupplier(ctx context.Context, productID uint) error {
	db := r.DB.WithContext(ctx)

	var link models.SupplierProduct
	err := db.Scopes(Active("supplier_products")).Where("product_id = ?", productID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return db.Model(&link).Update("deleted_at", time.Now()).Error
}

func (r *ProductRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Update("deleted_at", time.Now()).Error
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
