package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Collection names double as table names.
const (
	CollectionProducts        = "products"
	CollectionSalesOrders     = "salesorders"
	CollectionDemandForecasts = "demandforecasts"
	CollectionNotifications   = "notifications"
	CollectionUsers           = "users"
)

// Confidence buckets used by the forecasting views
const (
	HighConfidenceLevel = 90
	LowConfidenceLevel  = 70
)

// Product model
type Product struct {
	ID                string    `gorm:"primaryKey;column:id" json:"id"`
	ProductName       string    `gorm:"not null;column:product_name" json:"productName"`
	SKU               string    `gorm:"not null;column:sku" json:"sku"`
	Description       string    `gorm:"column:description" json:"description"`
	Price             float64   `gorm:"column:price" json:"price"`
	CurrentStock      int       `gorm:"column:current_stock" json:"currentStock"`
	LowStockThreshold int       `gorm:"column:low_stock_threshold" json:"lowStockThreshold"`
	ProductImage      string    `gorm:"column:product_image" json:"productImage"`
	IsActive          bool      `gorm:"column:is_active" json:"isActive"`
	CreatedDate       time.Time `gorm:"autoCreateTime;column:created_date" json:"createdDate"`
	UpdatedDate       time.Time `gorm:"autoUpdateTime;column:updated_date" json:"updatedDate"`
}

// TableName specifies the table name for Product model
func (Product) TableName() string {
	return CollectionProducts
}

func (p Product) GetID() string { return p.ID }

func (p Product) GetCreatedDate() time.Time { return p.CreatedDate }

// IsLowStock reports currentStock <= lowStockThreshold. Negative stock is allowed.
func (p Product) IsLowStock() bool {
	return p.CurrentStock <= p.LowStockThreshold
}

// Validate checks the required fields
func (p Product) Validate() error {
	return required(
		field{"id", p.ID},
		field{"productName", p.ProductName},
		field{"sku", p.SKU},
	)
}

// WithTimestamps returns a copy carrying the given system timestamps
func (p Product) WithTimestamps(created, updated time.Time) Product {
	p.CreatedDate, p.UpdatedDate = created, updated
	return p
}

// SalesOrder model. PaymentOrderID is set when a payment is started for the order.
type SalesOrder struct {
	ID             string        `gorm:"primaryKey;column:id" json:"id"`
	OrderNumber    string        `gorm:"not null;column:order_number" json:"orderNumber"`
	OrderDate      time.Time     `gorm:"column:order_date" json:"orderDate"`
	CustomerName   string        `gorm:"not null;column:customer_name" json:"customerName"`
	TotalAmount    float64       `gorm:"column:total_amount" json:"totalAmount"`
	OrderStatus    OrderStatus   `gorm:"type:text;column:order_status" json:"orderStatus"`
	PaymentStatus  PaymentStatus `gorm:"type:text;column:payment_status" json:"paymentStatus"`
	InvoiceNumber  string        `gorm:"column:invoice_number" json:"invoiceNumber"`
	InvoiceURL     string        `gorm:"column:invoice_url" json:"invoiceUrl"`
	PaymentOrderID string        `gorm:"column:payment_order_id" json:"paymentOrderId"`
	CreatedDate    time.Time     `gorm:"autoCreateTime;column:created_date" json:"createdDate"`
	UpdatedDate    time.Time     `gorm:"autoUpdateTime;column:updated_date" json:"updatedDate"`
}

// TableName specifies the table name for SalesOrder model
func (SalesOrder) TableName() string {
	return CollectionSalesOrders
}

func (o SalesOrder) GetID() string { return o.ID }

func (o SalesOrder) GetCreatedDate() time.Time { return o.CreatedDate }

// Validate checks required fields and status enums. Transitions between statuses are not restricted.
func (o SalesOrder) Validate() error {
	err := required(
		field{"id", o.ID},
		field{"orderNumber", o.OrderNumber},
		field{"customerName", o.CustomerName},
		field{"invoiceNumber", o.InvoiceNumber},
	)
	var errs []error
	if err != nil {
		errs = append(errs, err)
	}
	if !o.OrderStatus.Valid() {
		errs = append(errs, fmt.Errorf("orderStatus %q is not one of pending, processing, completed, cancelled", o.OrderStatus))
	}
	if !o.PaymentStatus.Valid() {
		errs = append(errs, fmt.Errorf("paymentStatus %q is not one of pending, paid, failed, refunded", o.PaymentStatus))
	}
	return errors.Join(errs...)
}

// WithTimestamps returns a copy carrying the given system timestamps
func (o SalesOrder) WithTimestamps(created, updated time.Time) SalesOrder {
	o.CreatedDate, o.UpdatedDate = created, updated
	return o
}

// DemandForecast model. ProductID is a soft reference: the product may no longer exist.
type DemandForecast struct {
	ID                      string    `gorm:"primaryKey;column:id" json:"id"`
	ProductID               string    `gorm:"index;column:product_id" json:"productId"`
	ForecastGeneratedDate   time.Time `gorm:"column:forecast_generated_date" json:"forecastGeneratedDate"`
	ForecastPeriodStartDate time.Time `gorm:"column:forecast_period_start_date" json:"forecastPeriodStartDate"`
	ForecastPeriodEndDate   time.Time `gorm:"column:forecast_period_end_date" json:"forecastPeriodEndDate"`
	PredictedDemandQuantity float64   `gorm:"column:predicted_demand_quantity" json:"predictedDemandQuantity"`
	ConfidenceLevel         float64   `gorm:"column:confidence_level" json:"confidenceLevel"`
	CreatedDate             time.Time `gorm:"autoCreateTime;column:created_date" json:"createdDate"`
	UpdatedDate             time.Time `gorm:"autoUpdateTime;column:updated_date" json:"updatedDate"`
}

// TableName specifies the table name for DemandForecast model
func (DemandForecast) TableName() string {
	return CollectionDemandForecasts
}

func (f DemandForecast) GetID() string { return f.ID }

func (f DemandForecast) GetCreatedDate() time.Time { return f.CreatedDate }

// Validate checks the required fields. ConfidenceLevel is expected in [0,100] but not enforced.
func (f DemandForecast) Validate() error {
	return required(
		field{"id", f.ID},
		field{"productId", f.ProductID},
	)
}

// IsHighConfidence reports confidenceLevel >= 90
func (f DemandForecast) IsHighConfidence() bool {
	return f.ConfidenceLevel >= HighConfidenceLevel
}

// IsLowConfidence reports confidenceLevel < 70
func (f DemandForecast) IsLowConfidence() bool {
	return f.ConfidenceLevel < LowConfidenceLevel
}

// WithTimestamps returns a copy carrying the given system timestamps
func (f DemandForecast) WithTimestamps(created, updated time.Time) DemandForecast {
	f.CreatedDate, f.UpdatedDate = created, updated
	return f
}

// Notification model
type Notification struct {
	ID               string           `gorm:"primaryKey;column:id" json:"id"`
	NotificationType NotificationType `gorm:"type:text;column:notification_type" json:"notificationType"`
	Message          string           `gorm:"not null;column:message" json:"message"`
	CreatedAt        time.Time        `gorm:"column:created_at" json:"createdAt"`
	IsRead           bool             `gorm:"column:is_read" json:"isRead"`
	Priority         Priority         `gorm:"type:text;column:priority" json:"priority"`
	RelatedItem      string           `gorm:"column:related_item" json:"relatedItem"`
	ActionURL        string           `gorm:"column:action_url" json:"actionUrl"`
	CreatedDate      time.Time        `gorm:"autoCreateTime;column:created_date" json:"createdDate"`
	UpdatedDate      time.Time        `gorm:"autoUpdateTime;column:updated_date" json:"updatedDate"`
}

// TableName specifies the table name for Notification model
func (Notification) TableName() string {
	return CollectionNotifications
}

func (n Notification) GetID() string { return n.ID }

func (n Notification) GetCreatedDate() time.Time { return n.CreatedDate }

// Validate checks the required fields; an empty priority is allowed.
func (n Notification) Validate() error {
	if err := required(field{"id", n.ID}, field{"message", n.Message}); err != nil {
		return err
	}
	if n.Priority != "" && !n.Priority.Valid() {
		return fmt.Errorf("priority %q is not one of low, medium, high", n.Priority)
	}
	return nil
}

// SortTime is createdAt, or the system creation date when createdAt is unset
func (n Notification) SortTime() time.Time {
	if !n.CreatedAt.IsZero() {
		return n.CreatedAt
	}
	return n.CreatedDate
}

// WithTimestamps returns a copy carrying the given system timestamps
func (n Notification) WithTimestamps(created, updated time.Time) Notification {
	n.CreatedDate, n.UpdatedDate = created, updated
	return n
}

// User model. Accounts belong to the authentication layer; pages only read them.
type User struct {
	ID            string     `gorm:"primaryKey;column:id" json:"id"`
	Email         string     `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PasswordHash  string     `gorm:"column:password_hash" json:"-"`
	Role          Role       `gorm:"type:text;column:role" json:"role"`
	FirstName     string     `gorm:"column:first_name" json:"firstName"`
	LastName      string     `gorm:"column:last_name" json:"lastName"`
	Nickname      string     `gorm:"column:nickname" json:"nickname"`
	LastLoginDate *time.Time `gorm:"column:last_login_date" json:"lastLoginDate"`
	IsActive      bool       `gorm:"column:is_active" json:"isActive"`
	TOTPSecret    string     `gorm:"column:totp_secret" json:"-"`
	CreatedDate   time.Time  `gorm:"autoCreateTime;column:created_date" json:"createdDate"`
	UpdatedDate   time.Time  `gorm:"autoUpdateTime;column:updated_date" json:"updatedDate"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return CollectionUsers
}

func (u User) GetID() string { return u.ID }

func (u User) GetCreatedDate() time.Time { return u.CreatedDate }

// Validate checks the required fields
func (u User) Validate() error {
	return required(field{"id", u.ID}, field{"email", u.Email})
}

// WithTimestamps returns a copy carrying the given system timestamps
func (u User) WithTimestamps(created, updated time.Time) User {
	u.CreatedDate, u.UpdatedDate = created, updated
	return u
}

type field struct {
	name  string
	value string
}

func required(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
