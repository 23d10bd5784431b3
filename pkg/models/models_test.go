package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductIsLowStock(t *testing.T) {
	assert.True(t, Product{CurrentStock: 5, LowStockThreshold: 10}.IsLowStock())
	assert.True(t, Product{CurrentStock: 10, LowStockThreshold: 10}.IsLowStock())
	assert.False(t, Product{CurrentStock: 15, LowStockThreshold: 10}.IsLowStock())
	assert.True(t, Product{CurrentStock: -3, LowStockThreshold: 0}.IsLowStock())
}

func TestProductValidate(t *testing.T) {
	require.NoError(t, Product{ID: "p1", ProductName: "Widget", SKU: "W-1"}.Validate())

	err := Product{ID: "p1", ProductName: "  "}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "productName")
	assert.Contains(t, err.Error(), "sku")
}

func TestSalesOrderValidate(t *testing.T) {
	order := SalesOrder{
		ID:            "o1",
		OrderNumber:   "ORD-1",
		CustomerName:  "Ada",
		InvoiceNumber: "INV-1",
		OrderStatus:   OrderStatusPending,
		PaymentStatus: PaymentStatusPending,
	}
	require.NoError(t, order.Validate())

	order.OrderStatus = "shipped"
	err := order.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orderStatus")

	order.OrderStatus = OrderStatusCompleted
	order.PaymentStatus = ""
	assert.Error(t, order.Validate())
}

func TestDemandForecastConfidenceBuckets(t *testing.T) {
	assert.True(t, DemandForecast{ConfidenceLevel: 90}.IsHighConfidence())
	assert.False(t, DemandForecast{ConfidenceLevel: 89.9}.IsHighConfidence())
	assert.True(t, DemandForecast{ConfidenceLevel: 69}.IsLowConfidence())
	assert.False(t, DemandForecast{ConfidenceLevel: 70}.IsLowConfidence())

	// Out-of-range confidence is accepted.
	assert.NoError(t, DemandForecast{ID: "f1", ProductID: "p1", ConfidenceLevel: 140}.Validate())
}

func TestNotificationValidateAndSortTime(t *testing.T) {
	assert.NoError(t, Notification{ID: "n1", Message: "hello"}.Validate())
	assert.Error(t, Notification{ID: "n1", Message: "hello", Priority: "urgent"}.Validate())
	assert.Error(t, Notification{ID: "n1"}.Validate())

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	n := Notification{CreatedDate: created}
	assert.Equal(t, created, n.SortTime())

	at := created.Add(time.Hour)
	n.CreatedAt = at
	assert.Equal(t, at, n.SortTime())
}

func TestNotificationTypeLabel(t *testing.T) {
	assert.Equal(t, "Low Stock Alert", NotificationTypeLowStock.Label())
	assert.Equal(t, "AI Insight", NotificationTypeAI.Label())
	assert.Equal(t, "Notification", NotificationType("something-else").Label())
}

func TestWithTimestampsReturnsCopy(t *testing.T) {
	created := time.Now()
	p := Product{ID: "p1"}
	stamped := p.WithTimestamps(created, created)

	assert.True(t, p.CreatedDate.IsZero())
	assert.Equal(t, created, stamped.CreatedDate)
}
