package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/logging"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/services"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
)

type SalesFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

// OrderInput is a new-order form submission. Empty numbers and statuses are generated.
type OrderInput struct {
	OrderNumber   string               `json:"orderNumber"`
	CustomerName  string               `json:"customerName"`
	TotalAmount   float64              `json:"totalAmount"`
	OrderStatus   models.OrderStatus   `json:"orderStatus"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
	InvoiceNumber string               `json:"invoiceNumber"`
	InvoiceURL    string               `json:"invoiceUrl"`
}

// PaymentConfirmation is what the checkout widget hands back
type PaymentConfirmation struct {
	GatewayOrderID string `json:"razorpayOrderId"`
	PaymentID      string `json:"razorpayPaymentId"`
	Signature      string `json:"razorpaySignature"`
}

type Sales struct {
	repos    store.Repositories
	payments PaymentProvider

	orders   []models.SalesOrder
	products []models.Product
	status   Status
}

func NewSales(repos store.Repositories, integrations Integrations) *Sales {
	return &Sales{repos: repos, payments: integrations.Payments}
}

func (v *Sales) Load(ctx context.Context) Status {
	var (
		orders   []models.SalesOrder
		products []models.Product
	)
	err := loadAll(ctx,
		listInto[models.SalesOrder](v.repos.SalesOrders, &orders),
		listInto[models.Product](v.repos.Products, &products),
	)
	v.status = settle("sales", err)
	if err != nil {
		v.orders, v.products = nil, nil
		return v.status
	}
	v.orders, v.products = orders, products
	return v.status
}

func (v *Sales) refresh(ctx context.Context) {
	orders, err := v.repos.SalesOrders.ListAll(ctx)
	if err != nil {
		v.status = settle("sales", err)
		return
	}
	v.orders = orders
	v.status = Status{Loaded: true}
}

// Filter matches orderNumber, customerName or invoiceNumber and an exact order status, newest first
func (v *Sales) Filter(f SalesFilter) []models.SalesOrder {
	orders := []models.SalesOrder{}
	for _, o := range v.orders {
		if !containsFold(f.Search, o.OrderNumber, o.CustomerName, o.InvoiceNumber) {
			continue
		}
		if !isAll(f.Status) && string(o.OrderStatus) != strings.TrimSpace(f.Status) {
			continue
		}
		orders = append(orders, o)
	}
	return sortedCopy(orders, func(a, b models.SalesOrder) bool {
		return a.OrderDate.After(b.OrderDate)
	})
}

type SalesStats struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalOrders       int     `json:"totalOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

func (v *Sales) Stats() SalesStats {
	s := SalesStats{TotalOrders: len(v.orders)}
	for _, o := range v.orders {
		s.TotalRevenue += o.TotalAmount
		switch o.OrderStatus {
		case models.OrderStatusPending:
			s.PendingOrders++
		case models.OrderStatusCompleted:
			s.CompletedOrders++
		}
	}
	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue / float64(s.TotalOrders)
	}
	return s
}

// CreateOrder stamps the order with a new id and the current time
func (v *Sales) CreateOrder(ctx context.Context, in OrderInput) (models.SalesOrder, error) {
	at := now()
	order := models.SalesOrder{
		ID:            newID(),
		OrderNumber:   strings.TrimSpace(in.OrderNumber),
		OrderDate:     at,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		TotalAmount:   in.TotalAmount,
		OrderStatus:   in.OrderStatus,
		PaymentStatus: in.PaymentStatus,
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		InvoiceURL:    in.InvoiceURL,
	}
	if order.OrderNumber == "" {
		order.OrderNumber = utils.OrderNumber(at)
	}
	if order.InvoiceNumber == "" {
		order.InvoiceNumber = utils.InvoiceNumber(at)
	}
	if order.OrderStatus == "" {
		order.OrderStatus = models.OrderStatusPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentStatusPending
	}

	created, err := v.repos.SalesOrders.Create(ctx, order)
	if err != nil {
		logMutation("sales", "create order", err, logging.Fields{"order_id": order.ID})
		return models.SalesOrder{}, err
	}
	v.refresh(ctx)
	return created, nil
}

// StartPayment opens a gateway order for the sales order's total
func (v *Sales) StartPayment(ctx context.Context, id string) (services.PaymentOrder, error) {
	if v.payments == nil {
		return services.PaymentOrder{}, ErrPaymentsUnavailable
	}
	order, ok := v.find(id)
	if !ok {
		return services.PaymentOrder{}, store.NewError("start payment", models.CollectionSalesOrders, id, store.ErrNotFound, nil)
	}
	if order.TotalAmount <= 0 {
		return services.PaymentOrder{}, store.NewError("start payment", models.CollectionSalesOrders, id, store.ErrValidation,
			fmt.Errorf("totalAmount must be positive, got %.2f", order.TotalAmount))
	}
	if order.PaymentStatus == models.PaymentStatusPaid {
		return services.PaymentOrder{}, store.NewError("start payment", models.CollectionSalesOrders, id, store.ErrConflict,
			fmt.Errorf("order %s is already paid", order.OrderNumber))
	}

	payment, err := v.payments.CreateOrder(order.TotalAmount, order.ID)
	if err != nil {
		logMutation("sales", "start payment", err, logging.Fields{"order_id": id})
		return services.PaymentOrder{}, err
	}

	// Confirmation only accepts the gateway order recorded here
	order.PaymentOrderID = payment.OrderID
	if _, err := v.repos.SalesOrders.Update(ctx, order); err != nil {
		logMutation("sales", "start payment", err, logging.Fields{"order_id": id, "payment_order_id": payment.OrderID})
		return services.PaymentOrder{}, err
	}
	v.refresh(ctx)
	return payment, nil
}

// ConfirmPayment verifies the checkout signature and marks the order paid
func (v *Sales) ConfirmPayment(ctx context.Context, id string, in PaymentConfirmation) (models.SalesOrder, error) {
	if v.payments == nil {
		return models.SalesOrder{}, ErrPaymentsUnavailable
	}
	order, ok := v.find(id)
	if !ok {
		return models.SalesOrder{}, store.NewError("confirm payment", models.CollectionSalesOrders, id, store.ErrNotFound, nil)
	}
	if order.PaymentOrderID == "" || in.GatewayOrderID != order.PaymentOrderID {
		logMutation("sales", "confirm payment", ErrInvalidPayment, logging.Fields{
			"order_id":         id,
			"payment_order_id": in.GatewayOrderID,
			"reason":           "gateway order does not belong to this sales order",
		})
		return models.SalesOrder{}, ErrInvalidPayment
	}
	if !v.payments.VerifySignature(in.GatewayOrderID, in.PaymentID, in.Signature) {
		logMutation("sales", "confirm payment", ErrInvalidPayment, logging.Fields{"order_id": id, "payment_id": in.PaymentID})
		return models.SalesOrder{}, ErrInvalidPayment
	}

	order.PaymentStatus = models.PaymentStatusPaid
	updated, err := v.repos.SalesOrders.Update(ctx, order)
	if err != nil {
		logMutation("sales", "confirm payment", err, logging.Fields{"order_id": id})
		return models.SalesOrder{}, err
	}
	v.refresh(ctx)
	return updated, nil
}

func (v *Sales) find(id string) (models.SalesOrder, bool) {
	for _, o := range v.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.SalesOrder{}, false
}

type ProductOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"productName"`
	Price float64 `json:"price"`
}

// ProductOptions lists active products for the order form
func (v *Sales) ProductOptions() []ProductOption {
	options := []ProductOption{}
	for _, p := range v.products {
		if p.IsActive {
			options = append(options, ProductOption{ID: p.ID, Name: p.ProductName, Price: p.Price})
		}
	}
	return sortedCopy(options, func(a, b ProductOption) bool {
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

type SalesView struct {
	Status   Status              `json:"status"`
	Filter   SalesFilter         `json:"filter"`
	Stats    SalesStats          `json:"stats"`
	Orders   []models.SalesOrder `json:"orders"`
	Products []ProductOption     `json:"products"`
}

func (v *Sales) View(f SalesFilter) SalesView {
	return SalesView{
		Status:   v.status,
		Filter:   f,
		Stats:    v.Stats(),
		Orders:   v.Filter(f),
		Products: v.ProductOptions(),
	}
}
