package views

import (
	"context"
	"testing"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardMetrics(t *testing.T) {
	repos := store.NewMemoryRepositories()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	seed(t, repos.Products,
		testProduct("p1", "Widget", 5, 10, true),
		testProduct("p2", "Gadget", 50, 10, false),
	)
	seed(t, repos.SalesOrders,
		testOrder("o1", models.OrderStatusPending, 100, base),
		testOrder("o2", models.OrderStatusCompleted, 50, base.Add(time.Hour)),
		testOrder("o3", models.OrderStatusProcessing, 25, base.Add(2*time.Hour)),
	)
	seed(t, repos.Forecasts, models.DemandForecast{ID: "f1", ProductID: "p1"})
	seed(t, repos.Notifications,
		testNotification("n1", false, models.PriorityHigh, base),
		testNotification("n2", true, models.PriorityLow, base),
	)

	d := NewDashboard(repos)
	status := d.Load(context.Background())
	require.True(t, status.Loaded)
	require.False(t, status.Failed())

	m := d.Metrics()
	assert.Equal(t, 2, m.TotalProducts)
	assert.Equal(t, 1, m.ActiveProducts)
	assert.Equal(t, 1, m.LowStockProducts)
	assert.Equal(t, 175.0, m.TotalRevenue)
	assert.Equal(t, 1, m.PendingOrders)
	assert.Equal(t, 1, m.CompletedOrders)
	assert.Equal(t, 1, m.ProcessingOrders)
	assert.Equal(t, 1, m.UnreadNotifications)
	assert.Equal(t, 1, m.TotalForecasts)

	dist := d.OrderStatusDistribution()
	require.Len(t, dist, 3)
	assert.Equal(t, "Completed", dist[0].Name)
	assert.Equal(t, 1, dist[0].Value)
}

func TestDashboardFailTogether(t *testing.T) {
	repos := store.NewMemoryRepositories()
	seed(t, repos.Products, testProduct("p1", "Widget", 5, 10, true))
	seed(t, repos.Notifications, testNotification("n1", false, models.PriorityHigh, time.Now()))
	repos.SalesOrders = unavailable[models.SalesOrder]{}

	d := NewDashboard(repos)
	status := d.Load(context.Background())

	assert.True(t, status.Loaded)
	assert.True(t, status.Failed())
	assert.Contains(t, status.Error, "store unavailable")

	view := d.View()
	assert.Equal(t, DashboardMetrics{}, view.Metrics)
	assert.Empty(t, view.StockLevels)
	assert.Empty(t, view.SalesTrend)
	assert.Empty(t, view.RecentNotifications)
}

func TestDashboardSalesTrendTakesLastSevenByDate(t *testing.T) {
	repos := store.NewMemoryRepositories()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	// Inserted newest first so store order differs from date order.
	for i := 9; i >= 0; i-- {
		seed(t, repos.SalesOrders, testOrder(string(rune('a'+i)), models.OrderStatusCompleted, float64(i), base.AddDate(0, 0, i)))
	}

	d := NewDashboard(repos)
	d.Load(context.Background())
	trend := d.SalesTrend()

	require.Len(t, trend, 7)
	assert.Equal(t, "2026-04-04", trend[0].Date)
	assert.Equal(t, 3.0, trend[0].Amount)
	assert.Equal(t, "2026-04-10", trend[6].Date)
}

func TestDashboardStockLevels(t *testing.T) {
	repos := store.NewMemoryRepositories()
	seed(t, repos.Products,
		testProduct("p1", "Extraordinary Gizmo", 3, 10, true),
		testProduct("p2", "Bolt", 40, 10, true),
	)

	d := NewDashboard(repos)
	d.Load(context.Background())
	levels := d.StockLevels()

	require.Len(t, levels, 2)
	assert.Equal(t, StockLevel{Name: "Bolt", Stock: 40, Threshold: 10}, levels[0])
	assert.Equal(t, "Extraordin...", levels[1].Name)
}

func TestChartLabel(t *testing.T) {
	assert.Equal(t, "Product", chartLabel(""))
	assert.Equal(t, "Widget", chartLabel("Widget"))
	assert.Equal(t, "0123456789", chartLabel("0123456789"))
	assert.Equal(t, "0123456789...", chartLabel("0123456789A"))
}

func TestDashboardRecentNotificationsNewestFirst(t *testing.T) {
	repos := store.NewMemoryRepositories()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		seed(t, repos.Notifications, testNotification(string(rune('a'+i)), false, models.PriorityLow, base.Add(time.Duration(i)*time.Hour)))
	}

	d := NewDashboard(repos)
	d.Load(context.Background())
	recent := d.RecentNotifications()

	require.Len(t, recent, 5)
	assert.Equal(t, "g", recent[0].ID)
	assert.Equal(t, "Low Stock Alert", recent[0].TypeLabel)
	assert.Equal(t, "c", recent[4].ID)
}
