// Package store is the record-store façade every page view reads and writes through.
package store

import (
	"context"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
)

// Record is anything that can live in a collection
type Record interface {
	GetID() string
	Validate() error
}

// Collection is the uniform CRUD surface of one record collection.
// ListAll has no ordering guarantee. Update replaces every field except id and createdDate.
type Collection[T Record] interface {
	Name() string
	ListAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Repositories for collections without extra queries
type (
	ProductRepository        = Collection[models.Product]
	SalesOrderRepository     = Collection[models.SalesOrder]
	DemandForecastRepository = Collection[models.DemandForecast]
	NotificationRepository   = Collection[models.Notification]
)

// UserRepository is only used by the session provider
type UserRepository interface {
	Collection[models.User]
	FindByEmail(ctx context.Context, email string) (models.User, error)
	RecordLogin(ctx context.Context, id string, at time.Time) error
}

// Repositories bundles the five collections
type Repositories struct {
	Products      ProductRepository
	SalesOrders   SalesOrderRepository
	Forecasts     DemandForecastRepository
	Notifications NotificationRepository
	Users         UserRepository
}
