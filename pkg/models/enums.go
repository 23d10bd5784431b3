package models

// OrderStatus enum
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Valid reports whether s is a known payment status
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Priority enum
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// NotificationType is an open set; the constants below have display labels.
type NotificationType string

const (
	NotificationTypeLowStock  NotificationType = "low_stock"
	NotificationTypeInventory NotificationType = "inventory"
	NotificationTypeSales     NotificationType = "sales"
	NotificationTypeOrder     NotificationType = "order"
	NotificationTypeForecast  NotificationType = "forecast"
	NotificationTypeAI        NotificationType = "ai"
	NotificationTypeAlert     NotificationType = "alert"
	NotificationTypeWarning   NotificationType = "warning"
)

var notificationTypeLabels = map[NotificationType]string{
	NotificationTypeLowStock:  "Low Stock Alert",
	NotificationTypeInventory: "Inventory Update",
	NotificationTypeSales:     "Sales Notification",
	NotificationTypeOrder:     "Order Update",
	NotificationTypeForecast:  "Forecast Alert",
	NotificationTypeAI:        "AI Insight",
	NotificationTypeAlert:     "System Alert",
	NotificationTypeWarning:   "Warning",
}

// Label returns the display label for t
func (t NotificationType) Label() string {
	if label, ok := notificationTypeLabels[t]; ok {
		return label
	}
	return "Notification"
}

// Role enum
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)
