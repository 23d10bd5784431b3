package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/stretchr/testify/require"
)

var errBackendDown = errors.New("backend down")

// unavailable fails every ListAll; other methods are not expected to be called.
type unavailable[T store.Record] struct {
	store.Collection[T]
}

func (unavailable[T]) ListAll(context.Context) ([]T, error) {
	return nil, store.NewError("list", "test", "", store.ErrStoreUnavailable, errBackendDown)
}

// failUpdate passes everything through except updates of one id
type failUpdate[T store.Record] struct {
	store.Collection[T]
	id string
}

func (f failUpdate[T]) Update(ctx context.Context, rec T) (T, error) {
	if rec.GetID() == f.id {
		var zero T
		return zero, store.NewError("update", "test", f.id, store.ErrStoreUnavailable, errBackendDown)
	}
	return f.Collection.Update(ctx, rec)
}

func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func seed[T store.Record](t *testing.T, coll store.Collection[T], records ...T) {
	t.Helper()
	for _, rec := range records {
		_, err := coll.Create(context.Background(), rec)
		require.NoError(t, err)
	}
}

func testProduct(id, name string, stock, threshold int, active bool) models.Product {
	return models.Product{
		ID:                id,
		ProductName:       name,
		SKU:               "SKU-" + id,
		Price:             2.5,
		CurrentStock:      stock,
		LowStockThreshold: threshold,
		IsActive:          active,
	}
}

func testOrder(id string, status models.OrderStatus, amount float64, at time.Time) models.SalesOrder {
	return models.SalesOrder{
		ID:            id,
		OrderNumber:   "ORD-" + id,
		OrderDate:     at,
		CustomerName:  "Customer " + id,
		TotalAmount:   amount,
		OrderStatus:   status,
		PaymentStatus: models.PaymentStatusPending,
		InvoiceNumber: "INV-" + id,
	}
}

func testNotification(id string, read bool, priority models.Priority, at time.Time) models.Notification {
	return models.Notification{
		ID:               id,
		NotificationType: models.NotificationTypeLowStock,
		Message:          "Stock low for item " + id,
		CreatedAt:        at,
		IsRead:           read,
		Priority:         priority,
	}
}
