package views

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
)

const (
	salesTrendSize          = 7
	stockChartSize          = 5
	recentNotificationsSize = 5
	stockNameLength         = 10
)

// Dashboard summarizes every collection except users
type Dashboard struct {
	repos store.Repositories

	products      []models.Product
	orders        []models.SalesOrder
	forecasts     []models.DemandForecast
	notifications []models.Notification
	status        Status
}

func NewDashboard(repos store.Repositories) *Dashboard {
	return &Dashboard{repos: repos}
}

// Load fetches all four collections together. If any fetch fails, all four snapshots stay empty.
func (d *Dashboard) Load(ctx context.Context) Status {
	var (
		products      []models.Product
		orders        []models.SalesOrder
		forecasts     []models.DemandForecast
		notifications []models.Notification
	)
	err := loadAll(ctx,
		listInto[models.Product](d.repos.Products, &products),
		listInto[models.SalesOrder](d.repos.SalesOrders, &orders),
		listInto[models.DemandForecast](d.repos.Forecasts, &forecasts),
		listInto[models.Notification](d.repos.Notifications, &notifications),
	)
	d.status = settle("dashboard", err)
	if err != nil {
		d.products, d.orders, d.forecasts, d.notifications = nil, nil, nil, nil
		return d.status
	}
	d.products, d.orders, d.forecasts, d.notifications = products, orders, forecasts, notifications
	return d.status
}

type DashboardMetrics struct {
	TotalProducts       int     `json:"totalProducts"`
	ActiveProducts      int     `json:"activeProducts"`
	LowStockProducts    int     `json:"lowStockProducts"`
	TotalRevenue        float64 `json:"totalRevenue"`
	PendingOrders       int     `json:"pendingOrders"`
	CompletedOrders     int     `json:"completedOrders"`
	ProcessingOrders    int     `json:"processingOrders"`
	UnreadNotifications int     `json:"unreadNotifications"`
	TotalForecasts      int     `json:"totalForecasts"`
}

func (d *Dashboard) Metrics() DashboardMetrics {
	m := DashboardMetrics{
		TotalProducts:  len(d.products),
		TotalForecasts: len(d.forecasts),
	}
	for _, p := range d.products {
		if p.IsActive {
			m.ActiveProducts++
		}
		if p.IsLowStock() {
			m.LowStockProducts++
		}
	}
	for _, o := range d.orders {
		m.TotalRevenue += o.TotalAmount
		switch o.OrderStatus {
		case models.OrderStatusPending:
			m.PendingOrders++
		case models.OrderStatusCompleted:
			m.CompletedOrders++
		case models.OrderStatusProcessing:
			m.ProcessingOrders++
		}
	}
	for _, n := range d.notifications {
		if !n.IsRead {
			m.UnreadNotifications++
		}
	}
	return m
}

type SalesPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// SalesTrend is the seven most recent orders by order date, oldest first
func (d *Dashboard) SalesTrend() []SalesPoint {
	byDate := sortedCopy(d.orders, func(a, b models.SalesOrder) bool {
		return a.OrderDate.Before(b.OrderDate)
	})
	recent := lastN(byDate, salesTrendSize)
	points := make([]SalesPoint, 0, len(recent))
	for _, o := range recent {
		points = append(points, SalesPoint{Date: o.OrderDate.Format(time.DateOnly), Amount: o.TotalAmount})
	}
	return points
}

type StockLevel struct {
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
}

// StockLevels charts the first five products by name
func (d *Dashboard) StockLevels() []StockLevel {
	byName := sortedCopy(d.products, func(a, b models.Product) bool {
		return strings.ToLower(a.ProductName) < strings.ToLower(b.ProductName)
	})
	first := firstN(byName, stockChartSize)
	levels := make([]StockLevel, 0, len(first))
	for _, p := range first {
		levels = append(levels, StockLevel{
			Name:      chartLabel(p.ProductName),
			Stock:     p.CurrentStock,
			Threshold: p.LowStockThreshold,
		})
	}
	return levels
}

func chartLabel(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Product"
	}
	if utf8.RuneCountInString(name) <= stockNameLength {
		return name
	}
	return string([]rune(name)[:stockNameLength]) + "..."
}

type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

func (d *Dashboard) OrderStatusDistribution() []StatusSlice {
	m := d.Metrics()
	return []StatusSlice{
		{Name: "Completed", Value: m.CompletedOrders, Color: "#22c55e"},
		{Name: "Pending", Value: m.PendingOrders, Color: "#f59e0b"},
		{Name: "Processing", Value: m.ProcessingOrders, Color: "#3b82f6"},
	}
}

// RecentNotifications returns the five newest notifications
func (d *Dashboard) RecentNotifications() []NotificationItem {
	newest := sortedCopy(d.notifications, newerNotification)
	return notificationItems(firstN(newest, recentNotificationsSize))
}

type DashboardView struct {
	Status              Status             `json:"status"`
	Metrics             DashboardMetrics   `json:"metrics"`
	SalesTrend          []SalesPoint       `json:"salesTrend"`
	StockLevels         []StockLevel       `json:"stockLevels"`
	OrderStatus         []StatusSlice      `json:"orderStatus"`
	RecentNotifications []NotificationItem `json:"recentNotifications"`
}

func (d *Dashboard) View() DashboardView {
	return DashboardView{
		Status:              d.status,
		Metrics:             d.Metrics(),
		SalesTrend:          d.SalesTrend(),
		StockLevels:         d.StockLevels(),
		OrderStatus:         d.OrderStatusDistribution(),
		RecentNotifications: d.RecentNotifications(),
	}
}
