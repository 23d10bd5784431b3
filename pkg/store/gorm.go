package store

import (
	"context"
	"errors"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
	"gorm.io/gorm"
)

// GormCollection stores records in the table named by the model's TableName
type GormCollection[T Record] struct {
	db   *gorm.DB
	name string
}

func NewGormCollection[T Record](db *gorm.DB, name string) *GormCollection[T] {
	return &GormCollection[T]{db: db, name: name}
}

func (c *GormCollection[T]) Name() string { return c.name }

func (c *GormCollection[T]) ListAll(ctx context.Context) ([]T, error) {
	var records []T
	if err := c.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, NewError("list", c.name, "", ErrStoreUnavailable, err)
	}
	return records, nil
}

func (c *GormCollection[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := rec.Validate(); err != nil {
		return zero, NewError("create", c.name, rec.GetID(), ErrValidation, err)
	}
	if err := c.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return zero, NewError("create", c.name, rec.GetID(), classify(err), err)
	}
	return rec, nil
}

func (c *GormCollection[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T
	id := rec.GetID()
	if err := rec.Validate(); err != nil {
		return zero, NewError("update", c.name, id, ErrValidation, err)
	}

	db := c.db.WithContext(ctx)
	result := replaceAll(db, &rec)
	if result.Error != nil {
		return zero, NewError("update", c.name, id, classify(result.Error), result.Error)
	}
	if result.RowsAffected == 0 {
		return zero, NewError("update", c.name, id, ErrNotFound, nil)
	}

	var stored T
	if err := db.Where("id = ?", id).First(&stored).Error; err != nil {
		return zero, NewError("update", c.name, id, classify(err), err)
	}
	return stored, nil
}

// replaceAll writes every column except id and created_date. Select("*") keeps
// zero values in the SET list, so the update is a full replacement.
func replaceAll[T Record](db *gorm.DB, rec *T) *gorm.DB {
	return db.Model(new(T)).
		Where("id = ?", (*rec).GetID()).
		Select("*").
		Omit("id", "created_date").
		Updates(rec)
}

func (c *GormCollection[T]) Delete(ctx context.Context, id string) error {
	result := c.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return NewError("delete", c.name, id, classify(result.Error), result.Error)
	}
	if result.RowsAffected == 0 {
		return NewError("delete", c.name, id, ErrNotFound, nil)
	}
	return nil
}

// GormUsers adds the account lookups used at sign-in
type GormUsers struct {
	*GormCollection[models.User]
}

func (u *GormUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, NewError("find", u.name, email, ErrNotFound, nil)
		}
		return models.User{}, NewError("find", u.name, email, classify(err), err)
	}
	return user, nil
}

func (u *GormUsers) RecordLogin(ctx context.Context, id string, at time.Time) error {
	result := u.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("last_login_date", at)
	if result.Error != nil {
		return NewError("record login", u.name, id, classify(result.Error), result.Error)
	}
	if result.RowsAffected == 0 {
		return NewError("record login", u.name, id, ErrNotFound, nil)
	}
	return nil
}

// NewGormRepositories wires every collection to db
func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Products:      NewGormCollection[models.Product](db, models.CollectionProducts),
		SalesOrders:   NewGormCollection[models.SalesOrder](db, models.CollectionSalesOrders),
		Forecasts:     NewGormCollection[models.DemandForecast](db, models.CollectionDemandForecasts),
		Notifications: NewGormCollection[models.Notification](db, models.CollectionNotifications),
		Users:         &GormUsers{NewGormCollection[models.User](db, models.CollectionUsers)},
	}
}
