package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/config"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/database"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/logging"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/session"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
)

func main() {
	email := flag.String("email", "manager@example.com", "sign-in email for the seeded member")
	password := flag.String("password", "manager123", "password for the seeded member")
	withTOTP := flag.Bool("totp", false, "enroll the seeded member in authenticator codes")
	withData := flag.Bool("data", true, "seed demonstration products, orders, forecasts and notifications")
	flag.Parse()

	// Load configuration
	config.LoadConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.CloseDatabase()
	if err := database.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	ctx := context.Background()
	repos := store.NewGormRepositories(database.DB)

	if err := seedMember(ctx, repos.Users, *email, *password, *withTOTP); err != nil {
		log.Fatal("Failed to seed member:", err)
	}
	if *withData {
		if err := seedData(ctx, repos, time.Now()); err != nil {
			log.Fatal("Failed to seed data:", err)
		}
	}
}

func seedMember(ctx context.Context, users store.UserRepository, email, password string, withTOTP bool) error {
	if _, err := users.FindByEmail(ctx, email); err == nil {
		logging.Info("member already exists", logging.Fields{"email": email})
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	if err := utils.CheckPasswordStrength(password); err != nil {
		return err
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           "user-manager",
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         models.RoleManager,
		FirstName:    "Store",
		LastName:     "Manager",
		IsActive:     true,
	}
	if withTOTP {
		secret, url, err := session.GenerateTOTPSecret(email)
		if err != nil {
			return err
		}
		user.TOTPSecret = secret
		fmt.Println("Authenticator enrollment URL:", url)
	}

	if _, err := users.Create(ctx, user); err != nil {
		return err
	}
	logging.Info("member created", logging.Fields{"email": email, "totp": withTOTP})
	return nil
}

// seedData inserts a fixed demonstration set. Existing ids are skipped.
func seedData(ctx context.Context, repos store.Repositories, today time.Time) error {
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	products := []models.Product{
		{ID: "prod-espresso", ProductName: "Espresso Beans 1kg", SKU: "COF-001", Price: 24.5, CurrentStock: 42, LowStockThreshold: 10, IsActive: true},
		{ID: "prod-filters", ProductName: "Paper Filters", SKU: "ACC-014", Price: 3.2, CurrentStock: 6, LowStockThreshold: 20, IsActive: true},
		{ID: "prod-grinder", ProductName: "Burr Grinder", SKU: "EQP-203", Price: 149, CurrentStock: 4, LowStockThreshold: 3, IsActive: true},
		{ID: "prod-mug", ProductName: "Ceramic Mug", SKU: "MER-310", Price: 9.9, CurrentStock: 0, LowStockThreshold: 5, IsActive: false},
	}
	orders := []models.SalesOrder{
		{ID: "order-1", OrderNumber: "ORD-100001", OrderDate: day(-6), CustomerName: "Blue Door Cafe", TotalAmount: 245, OrderStatus: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusPaid, InvoiceNumber: "INV-100001"},
		{ID: "order-2", OrderNumber: "ORD-100002", OrderDate: day(-3), CustomerName: "Harbor Books", TotalAmount: 64, OrderStatus: models.OrderStatusProcessing, PaymentStatus: models.PaymentStatusPending, InvoiceNumber: "INV-100002"},
		{ID: "order-3", OrderNumber: "ORD-100003", OrderDate: day(-1), CustomerName: "Lena Ortiz", TotalAmount: 149, OrderStatus: models.OrderStatusPending, PaymentStatus: models.PaymentStatusPending, InvoiceNumber: "INV-100003"},
		{ID: "order-4", OrderNumber: "ORD-100004", OrderDate: day(-2), CustomerName: "Harbor Books", TotalAmount: 32, OrderStatus: models.OrderStatusCancelled, PaymentStatus: models.PaymentStatusRefunded, InvoiceNumber: "INV-100004"},
	}
	forecasts := []models.DemandForecast{
		{ID: "fc-espresso", ProductID: "prod-espresso", ForecastGeneratedDate: day(-1), ForecastPeriodStartDate: day(0), ForecastPeriodEndDate: day(30), PredictedDemandQuantity: 120, ConfidenceLevel: 92},
		{ID: "fc-filters", ProductID: "prod-filters", ForecastGeneratedDate: day(-1), ForecastPeriodStartDate: day(0), ForecastPeriodEndDate: day(30), PredictedDemandQuantity: 300, ConfidenceLevel: 78},
		{ID: "fc-grinder", ProductID: "prod-grinder", ForecastGeneratedDate: day(-2), ForecastPeriodStartDate: day(7), ForecastPeriodEndDate: day(37), PredictedDemandQuantity: 8, ConfidenceLevel: 64},
	}
	notifications := []models.Notification{
		{ID: "note-filters", NotificationType: models.NotificationTypeLowStock, Message: "Paper Filters are below their low-stock threshold", CreatedAt: day(0), Priority: models.PriorityHigh, RelatedItem: "prod-filters", ActionURL: "/inventory"},
		{ID: "note-forecast", NotificationType: models.NotificationTypeForecast, Message: "New 30-day demand forecasts are available", CreatedAt: day(-1), Priority: models.PriorityMedium, ActionURL: "/forecasting"},
		{ID: "note-order", NotificationType: models.NotificationTypeOrder, Message: "Order ORD-100001 was completed", CreatedAt: day(-6), IsRead: true, Priority: models.PriorityLow, RelatedItem: "order-1", ActionURL: "/sales"},
	}

	return errors.Join(
		seedCollection[models.Product](ctx, repos.Products, products),
		seedCollection[models.SalesOrder](ctx, repos.SalesOrders, orders),
		seedCollection[models.DemandForecast](ctx, repos.Forecasts, forecasts),
		seedCollection[models.Notification](ctx, repos.Notifications, notifications),
	)
}

func seedCollection[T store.Record](ctx context.Context, coll store.Collection[T], records []T) error {
	created := 0
	for _, rec := range records {
		if _, err := coll.Create(ctx, rec); err != nil {
			if errors.Is(err, store.ErrConflict) {
				continue
			}
			return err
		}
		created++
	}
	logging.Info("collection seeded", logging.Fields{"collection": coll.Name(), "created": created, "skipped": len(records) - created})
	return nil
}
