package services

import (
	"context"
	"errors"
	"testing"

	"inventory-api/dto"
	"inventory-api/models"
	"inventory-api/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errInjected = errors.New("boom")

// failNth makes the nth write of kind ("create" or "update") against table fail.
// Writes are only counted once the returned arm func has been called.
func failNth(t *testing.T, db *gorm.DB, kind, table string, nth int) (arm func()) {
	t.Helper()
	armed, seen := false, 0
	hook := func(tx *gorm.DB) {
		if !armed || tx.Statement.Schema == nil || tx.Statement.Schema.Table != table {
			return
		}
		seen++
		if seen == nth {
			tx.AddError(errInjected)
		}
	}

	var err error
	switch kind {
	case "create":
		err = db.Callback().Create().Before("gorm:create").Register("test:fail_"+table, hook)
	case "update":
		err = db.Callback().Update().Before("gorm:update").Register("test:fail_"+table, hook)
	default:
		t.Fatalf("unknown callback kind %q", kind)
	}
	require.NoError(t, err)
	return func() { armed = true }
}

func liveLines(t *testing.T, db *gorm.DB, orderID uint) []models.OrderDetail {
	t.Helper()
	var lines []models.OrderDetail
	require.NoError(t, db.Where("order_id = ? AND deleted_at IS NULL", orderID).Order("id").Find(&lines).Error)
	return lines
}

func TestOrderCreateRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewOrderService(db)
	sup := testutil.CreateSupplier(t, db, "Acme")
	a := testutil.CreateProduct(t, db, sup.ID, "Bolt", 5)
	b := testutil.CreateProduct(t, db, sup.ID, "Nut", 5)
	failNth(t, db, "create", "order_details", 2)()

	_, err := svc.Create(ctx, dto.OrderRequest{OrderNumber: "ORD-1", ProductIDs: []uint{a.ID, b.ID}})
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
	assert.ErrorIs(t, err, errInjected)

	var orders, lines int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderDetail{}).Count(&lines).Error)
	assert.Zero(t, orders)
	assert.Zero(t, lines)
	assert.Equal(t, 5, quantityOf(t, db, a.ID))
	assert.Equal(t, 5, quantityOf(t, db, b.ID))
}

func TestOrderUpdateRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewOrderService(db)
	sup := testutil.CreateSupplier(t, db, "Acme")
	a := testutil.CreateProduct(t, db, sup.ID, "Bolt", 5)
	b := testutil.CreateProduct(t, db, sup.ID, "Nut", 5)
	arm := failNth(t, db, "create", "order_details", 2)

	order, err := svc.Create(ctx, dto.OrderRequest{OrderNumber: "ORD-1", ProductIDs: []uint{a.ID}})
	require.NoError(t, err)
	before := liveLines(t, db, order.ID)
	require.Len(t, before, 1)

	arm()
	_, err = svc.Update(ctx, order.ID, dto.OrderRequest{OrderNumber: "ORD-2", ProductIDs: []uint{a.ID, b.ID}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errInjected)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, "ORD-1", stored.OrderNumber)

	after := liveLines(t, db, order.ID)
	require.Len(t, after, 1)
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, a.ID, after[0].ProductID)
	assert.Equal(t, 4, quantityOf(t, db, a.ID))
	assert.Equal(t, 5, quantityOf(t, db, b.ID))
}

func TestOrderDeleteRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewOrderService(db)
	sup := testutil.CreateSupplier(t, db, "Acme")
	a := testutil.CreateProduct(t, db, sup.ID, "Bolt", 5)

	order, err := svc.Create(ctx, dto.OrderRequest{OrderNumber: "ORD-1", ProductIDs: []uint{a.ID}})
	require.NoError(t, err)
	failNth(t, db, "update", "orders", 1)()

	err = svc.Delete(ctx, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInjected)

	_, err = svc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, liveLines(t, db, order.ID), 1)
}
