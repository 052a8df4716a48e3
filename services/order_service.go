package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"inventory-api/dto"
	"inventory-api/models"
	"inventory-api/repositories"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const orderNotFound = "Order Not Found"

type OrderService struct {
	db        *gorm.DB
	orders    *repositories.OrderRepository
	products  *repositories.ProductRepository
	suppliers *repositories.SupplierRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:        db,
		orders:    repositories.NewOrderRepository(db),
		products:  repositories.NewProductRepository(db),
		suppliers: repositories.NewSupplierRepository(db),
	}
}

func (s *OrderService) List(ctx context.Context) ([]models.OrderSummary, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, InternalError("Could not load orders", err)
	}
	return orders, nil
}

// ListBySupplier returns orders holding at least one of the supplier's products.
func (s *OrderService) ListBySupplier(ctx context.Context, supplierID uint) ([]models.OrderSummary, error) {
	productIDs, err := s.supplierProductIDs(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListContaining(ctx, productIDs)
	if err != nil {
		return nil, InternalError("Could not load orders", err)
	}
	return orders, nil
}

// Create stores the order and takes one unit of stock per listed product id.
// Ids whose stock is already zero are skipped without failing the order.
func (s *OrderService) Create(ctx context.Context, req dto.OrderRequest) (*models.Order, error) {
	req.Normalize()
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	order := &models.Order{OrderNumber: req.OrderNumber}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders, products := s.orders.WithTx(tx), s.products.WithTx(tx)
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		for _, id := range req.ProductIDs {
			taken, err := products.DecrementStock(ctx, id)
			if err != nil {
				return err
			}
			if !taken {
				continue
			}
			if err := orders.Attach(ctx, order.ID, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, InternalError("Could not create order", err)
	}
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := s.orders.GetWithProducts(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError(orderNotFound)
	}
	if err != nil {
		return nil, InternalError("Could not load order", err)
	}

	ids := make([]uint, 0, len(order.Products))
	for _, p := range order.Products {
		ids = append(ids, p.ID)
	}
	return &dto.OrderResponse{Order: *order, ProductIDs: ids}, nil
}

// Update renames the order and replaces its lines. Stock is not adjusted.
func (s *OrderService) Update(ctx context.Context, id uint, req dto.OrderRequest) (*models.Order, error) {
	req.Normalize()
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		if err := orders.UpdateNumber(ctx, order.ID, req.OrderNumber); err != nil {
			return err
		}
		if err := orders.DetachAll(ctx, order.ID); err != nil {
			return err
		}
		for _, productID := range req.ProductIDs {
			if err := orders.Attach(ctx, order.ID, productID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, InternalError("Could not update order", err)
	}
	order.OrderNumber = req.OrderNumber
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	order, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		if err := orders.SoftDeleteDetails(ctx, order.ID); err != nil {
			return err
		}
		return orders.SoftDelete(ctx, order.ID)
	})
	if err != nil {
		return InternalError("Could not delete order", err)
	}
	return nil
}

func (s *OrderService) ChartData(ctx context.Context) (*dto.ChartData, error) {
	orders, err := s.orders.WithLiveProducts(ctx)
	if err != nil {
		return nil, InternalError("Could not load chart data", err)
	}
	return buildChart(orders), nil
}

func (s *OrderService) ChartDataBySupplier(ctx context.Context, supplierID uint) (*dto.ChartData, error) {
	productIDs, err := s.supplierProductIDs(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.WithLiveProductsIn(ctx, productIDs)
	if err != nil {
		return nil, InternalError("Could not load chart data", err)
	}
	return buildChart(orders), nil
}

// buildChart buckets orders by day of month in first-seen order. Each bucket carries the
// total number of orders, and a later date landing on the same day relabels the bucket.
func buildChart(orders []models.Order) *dto.ChartData {
	chart := &dto.ChartData{Month: []string{}, OrderCountData: []int64{}}
	total := int64(len(orders))

	buckets := make(map[string]int)
	for _, o := range orders {
		day, label := o.CreatedAt.Format("02"), o.CreatedAt.Format("02-Jan")
		if idx, ok := buckets[day]; ok {
			chart.Month[idx] = label
			continue
		}
		buckets[day] = len(chart.Month)
		chart.Month = append(chart.Month, label)
		chart.OrderCountData = append(chart.OrderCountData, total)
	}

	if len(chart.OrderCountData) > 0 {
		chart.Max = roundedMax(slices.Max(chart.OrderCountData))
	}
	return chart
}

func roundedMax(n int64) int64 {
	return int64(math.Round(float64(n+5)/10) * 10)
}

// validate checks the request shape, then that every id names a live product.
func (s *OrderService) validate(ctx context.Context, req dto.OrderRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	wanted := slices.Clone(req.ProductIDs)
	slices.Sort(wanted)
	wanted = slices.Compact(wanted)

	found, err := s.products.ExistingIDs(ctx, wanted)
	if err != nil {
		return InternalError("Could not validate order", err)
	}
	for i, id := range req.ProductIDs {
		if _, ok := slices.BinarySearch(found, id); !ok {
			return ValidationError(fmt.Sprintf("The selected product_ids.%d is invalid.", i))
		}
	}
	return nil
}

func (s *OrderService) supplierProductIDs(ctx context.Context, supplierID uint) ([]uint, error) {
	if _, err := s.suppliers.Get(ctx, supplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError(supplierNotFound)
		}
		return nil, InternalError("Could not load supplier", err)
	}
	products, err := s.suppliers.Products(ctx, supplierID)
	if err != nil {
		return nil, InternalError("Could not load supplier products", err)
	}
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (s *OrderService) find(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError(orderNotFound)
	}
	if err != nil {
		return nil, InternalError("Could not load order", err)
	}
	return order, nil
}
