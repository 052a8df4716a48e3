package services

import (
	"context"
	"testing"
	"time"

	"inventory-api/dto"
	"inventory-api/models"
	"inventory-api/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func quantityOf(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var p models.Product
	require.NoError(t, db.First(&p, id).Error)
	return p.Quantity
}

func TestOrderCreateDecrementsStock(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewOrderService(db)
	sup := testutil.CreateSupplier(t, db, "Acme")
	bolt := testutil.CreateProduct(t, db, sup.ID, "Bolt", 2)
	empty := testutil.CreateProduct(t, db, sup.ID, "Empty", 0)

	order, err := svc.Create(ctx, dto.OrderRequest{OrderNumber: "ORD-1", ProductIDs: []uint{bolt.ID, bolt.ID, bolt.ID, empty.ID}})
	require.NoError(t, err)

	assert.Equal(t, 0, quantityOf(t, db, bolt.ID))
	assert.Equal(t, 0, quantityOf(t, db, empty.ID))

	got, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bolt.ID, bolt.ID}, got.ProductIDs)
	assert.Equal(t, "ORD-1", got.Order.OrderNumber)
}

func TestOrderCreateValidation(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewOrderService(db)
	sup := testutil.CreateSupplier(t, db, "Acme")
	bolt := testutil.CreateProduct(t, db, sup.ID, "Bolt", 2)
	gone := testutil.CreateProduct(t, db, sup.ID, "Gone", 2)
	testutil.SoftDelete(t, db, "products", gone.ID)

	_, err := svc.Create(ctx, dto.OrderRequest{OrderNumber: "ab", ProductIDs: []uint{bolt.ID}})
	assert.EqualError(t, err, "The order number must be at least 3 characters.")

	_, err = svc.Create(ctx, dto.OrderRequest{OrderNumber: "ORD-1", ProductIDs: []uint{bolt.ID, gone.ID}})
	assert.EqualError(t, err, "The selected product_ids.1 is invalid.")

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "rejected orders are not stored")
	assert.Equal(t, 2, quantityOf(t, db, bolt.ID))
}

func TestOrderUpdateReplacesLines(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewOrderService(db)
	sup := testutil.CreateSupplier(t, db, "Acme")
	bolt := testutil.CreateProduct(t, db, sup.ID, "Bolt", 5)
	nut := testutil.CreateProduct(t, db, sup.ID, "Nut", 5)

	order, err := svc.Create(ctx, dto.OrderRequest{OrderNumber: "ORD-1", ProductIDs: []uint{bolt.ID}})
	require.NoError(t, err)

	_, err = svc.Update(ctx, order.ID, dto.OrderRequest{OrderNumber: "x", ProductIDs: []uint{nut.ID}})
	assert.Equal(t, KindValidation, KindOf(err))
	_, err = svc.Update(ctx, 999, dto.OrderRequest{OrderNumber: "ORD-9", ProductIDs: []uint{nut.ID}})
	assert.EqualError(t, err, "Order Not Found")

	updated, err := svc.Update(ctx, order.ID, dto.OrderRequest{OrderNumber: "ORD-2", ProductIDs: []uint{nut.ID, nut.ID}})
	require.NoError(t, err)
	assert.Equal(t, "ORD-2", updated.OrderNumber)

	got, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{nut.ID, nut.ID}, got.ProductIDs)
	assert.Equal(t, "ORD-2", got.Order.OrderNumber)

	assert.Equal(t, 4, quantityOf(t, db, bolt.ID), "update does not restock")
	assert.Equal(t, 5, quantityOf(t, db, nut.ID), "update does not take stock")
}

func TestOrderDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewOrderService(db)
	sup := testutil.CreateSupplier(t, db, "Acme")
	bolt := testutil.CreateProduct(t, db, sup.ID, "Bolt", 5)
	order := testutil.CreateOrder(t, db, "ORD-1", time.Time{}, bolt.ID)

	require.NoError(t, svc.Delete(ctx, order.ID))
	_, err := svc.Get(ctx, order.ID)
	assert.Equal(t, KindNotFound, KindOf(err))

	var live int64
	require.NoError(t, db.Model(&models.OrderDetail{}).Where("order_id = ? AND deleted_at IS NULL", order.ID).Count(&live).Error)
	assert.Zero(t, live)

	var kept int64
	require.NoError(t, db.Model(&models.OrderDetail{}).Where("order_id = ?", order.ID).Count(&kept).Error)
	assert.Equal(t, int64(1), kept, "lines are soft-deleted, not removed")
}

func TestOrderListBySupplier(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewOrderService(db)
	acme := testutil.CreateSupplier(t, db, "Acme")
	globex := testutil.CreateSupplier(t, db, "Globex")
	bolt := testutil.CreateProduct(t, db, acme.ID, "Bolt", 5)
	gear := testutil.CreateProduct(t, db, globex.ID, "Gear", 5)
	testutil.CreateOrder(t, db, "ORD-1", time.Time{}, bolt.ID)
	testutil.CreateOrder(t, db, "ORD-2", time.Time{}, gear.ID, bolt.ID)
	testutil.CreateOrder(t, db, "ORD-3", time.Time{}, gear.ID)

	orders, err := svc.ListBySupplier(ctx, acme.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-1", orders[0].OrderNumber)
	assert.Equal(t, "ORD-2", orders[1].OrderNumber)
	assert.Equal(t, 2, orders[1].ProductsCount)

	_, err = svc.ListBySupplier(ctx, 999)
	assert.EqualError(t, err, "Supplier Not Found")
}

func TestBuildChart(t *testing.T) {
	day := func(y int, m time.Month, d int) models.Order {
		return models.Order{Timestamps: models.Timestamps{CreatedAt: time.Date(y, m, d, 10, 0, 0, 0, time.UTC)}}
	}

	t.Run("empty", func(t *testing.T) {
		chart := buildChart(nil)
		assert.Equal(t, []string{}, chart.Month)
		assert.Equal(t, []int64{}, chart.OrderCountData)
		assert.Zero(t, chart.Max)
	})

	t.Run("buckets by day of month", func(t *testing.T) {
		orders := []models.Order{
			day(2024, time.January, 3),
			day(2024, time.January, 3),
			day(2024, time.January, 5),
			day(2024, time.February, 3),
		}
		chart := buildChart(orders)
		assert.Equal(t, []string{"03-Feb", "05-Jan"}, chart.Month)
		assert.Equal(t, []int64{4, 4}, chart.OrderCountData)
		assert.Equal(t, int64(10), chart.Max)
	})

	t.Run("max rounding", func(t *testing.T) {
		assert.Equal(t, int64(10), roundedMax(1))
		assert.Equal(t, int64(10), roundedMax(4))
		assert.Equal(t, int64(20), roundedMax(15))
		assert.Equal(t, int64(20), roundedMax(16))
		assert.Equal(t, int64(30), roundedMax(25))
	})
}

func TestChartDataBySupplier(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewOrderService(db)
	acme := testutil.CreateSupplier(t, db, "Acme")
	globex := testutil.CreateSupplier(t, db, "Globex")
	bolt := testutil.CreateProduct(t, db, acme.ID, "Bolt", 5)
	gear := testutil.CreateProduct(t, db, globex.ID, "Gear", 5)
	testutil.CreateOrder(t, db, "ORD-1", time.Date(2024, time.March, 9, 8, 0, 0, 0, time.UTC), bolt.ID)
	testutil.CreateOrder(t, db, "ORD-2", time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC), gear.ID)

	chart, err := svc.ChartDataBySupplier(ctx, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, chart.OrderCountData)
	assert.Equal(t, int64(10), chart.Max)

	all, err := svc.ChartData(ctx)
	require.NoError(t, err)
	assert.Len(t, all.Month, 2)
	assert.Equal(t, []int64{2, 2}, all.OrderCountData)
}

func TestOrderCreateRejectsBlankNumber(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewOrderService(db)
	sup := testutil.CreateSupplier(t, db, "Acme")
	bolt := testutil.CreateProduct(t, db, sup.ID, "Bolt", 2)

	_, err := svc.Create(ctx, dto.OrderRequest{OrderNumber: "   ", ProductIDs: []uint{bolt.ID}})
	assert.EqualError(t, err, "The order number field is required.")

	order, err := svc.Create(ctx, dto.OrderRequest{OrderNumber: " ORD-1 ", ProductIDs: []uint{bolt.ID}})
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", order.OrderNumber)

	_, err = svc.Update(ctx, order.ID, dto.OrderRequest{OrderNumber: "\t", ProductIDs: []uint{bolt.ID}})
	assert.EqualError(t, err, "The order number field is required.")
	assert.Equal(t, 1, quantityOf(t, db, bolt.ID))
}
