package repositories

import (
	"context"
	"inventory-api/models"
	"time"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(DB *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: DB}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: tx}
}

// List returns live orders ordered by id with their live products.
func (r *OrderRepository) List(ctx context.Context) ([]models.OrderSummary, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Scopes(Active("orders")).Order("orders.id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return r.withProducts(ctx, orders)
}

// ListContaining returns live orders holding at least one live line for any of productIDs.
func (r *OrderRepository) ListContaining(ctx context.Context, productIDs []uint) ([]models.OrderSummary, error) {
	orders, err := r.WithLiveProductsIn(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	return r.withProducts(ctx, orders)
}

// WithLiveProducts returns live orders that still hold a live product, ordered by id.
func (r *OrderRepository) WithLiveProducts(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Scopes(Active("orders")).
		Where(hasLiveProduct).
		Order("orders.id").
		Find(&orders).Error
	return orders, err
}

// WithLiveProductsIn is WithLiveProducts restricted to lines for productIDs.
func (r *OrderRepository) WithLiveProductsIn(ctx context.Context, productIDs []uint) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if len(productIDs) == 0 {
		return orders, nil
	}
	err := r.DB.WithContext(ctx).
		Scopes(Active("orders")).
		Where(hasLiveProductIn, productIDs).
		Order("orders.id").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Scopes(Active("orders")).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetWithProducts(ctx context.Context, id uint) (*models.OrderSummary, error) {
	order, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	summaries, err := r.withProducts(ctx, []models.Order{*order})
	if err != nil {
		return nil, err
	}
	return &summaries[0], nil
}

func (r *OrderRepository) withProducts(ctx context.Context, orders []models.Order) ([]models.OrderSummary, error) {
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	products, err := r.productsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.OrderSummary, 0, len(orders))
	for _, o := range orders {
		items := orEmpty(products[o.ID])
		out = append(out, models.OrderSummary{Order: o, Products: items, ProductsCount: len(items)})
	}
	return out, nil
}

func (r *OrderRepository) productsFor(ctx context.Context, orderIDs []uint) (map[uint][]models.OrderProduct, error) {
	out := make(map[uint][]models.OrderProduct)
	if len(orderIDs) == 0 {
		return out, nil
	}

	var details []models.OrderDetail
	err := r.DB.WithContext(ctx).
		Scopes(Active("order_details")).
		Where("order_id IN ?", orderIDs).
		Order("id").
		Find(&details).Error
	if err != nil {
		return nil, err
	}

	productIDs := make([]uint, 0, len(details))
	for _, d := range details {
		productIDs = append(productIDs, d.ProductID)
	}
	productIDs = uniqueIDs(productIDs)
	if len(productIDs) == 0 {
		return out, nil
	}

	var products []models.Product
	if err := r.DB.WithContext(ctx).Scopes(Active("products")).Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, d := range details {
		p, ok := byID[d.ProductID]
		if !ok {
			continue
		}
		out[d.OrderID] = append(out[d.OrderID], models.OrderProduct{
			Product: p,
			Pivot: models.OrderPivot{
				OrderID:   d.OrderID,
				ProductID: d.ProductID,
				CreatedAt: d.CreatedAt,
				UpdatedAt: d.UpdatedAt,
				DeletedAt: d.DeletedAt,
			},
		})
	}
	return out, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) UpdateNumber(ctx context.Context, id uint, orderNumber string) error {
	return r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("order_number", orderNumber).Error
}

func (r *OrderRepository) Attach(ctx context.Context, orderID, productID uint) error {
	return r.DB.WithContext(ctx).Create(&models.OrderDetail{OrderID: orderID, ProductID: productID}).Error
}

// DetachAll hard-deletes every line of the order, live or not.
func (r *OrderRepository) DetachAll(ctx context.Context, orderID uint) error {
	return r.DB.WithContext(ctx).Where("order_id = ?", orderID).Delete(&models.OrderDetail{}).Error
}

func (r *OrderRepository) SoftDeleteDetails(ctx context.Context, orderID uint) error {
	return r.DB.WithContext(ctx).Model(&models.OrderDetail{}).
		Where("order_id = ? AND deleted_at IS NULL", orderID).
		Update("deleted_at", time.Now()).Error
}

func (r *OrderRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("deleted_at", time.Now()).Error
}
