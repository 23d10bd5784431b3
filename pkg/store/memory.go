package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
)

// MemoryCollection keeps records in process. Values go in and out by copy.
type MemoryCollection[T Record] struct {
	mu      sync.RWMutex
	name    string
	records map[string]T
	order   []string
	now     func() time.Time
}

func NewMemoryCollection[T Record](name string) *MemoryCollection[T] {
	return &MemoryCollection[T]{
		name:    name,
		records: make(map[string]T),
		now:     time.Now,
	}
}

func (c *MemoryCollection[T]) Name() string { return c.name }

// ListAll returns records in insertion order
func (c *MemoryCollection[T]) ListAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewError("list", c.name, "", ErrStoreUnavailable, err)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.records[id])
	}
	return out, nil
}

func (c *MemoryCollection[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	id := rec.GetID()
	if err := ctx.Err(); err != nil {
		return zero, NewError("create", c.name, id, ErrStoreUnavailable, err)
	}
	if err := rec.Validate(); err != nil {
		return zero, NewError("create", c.name, id, ErrValidation, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.records[id]; ok {
		return zero, NewError("create", c.name, id, ErrConflict, nil)
	}
	now := c.now()
	rec = stamp(rec, now, now)
	c.records[id] = rec
	c.order = append(c.order, id)
	return rec, nil
}

func (c *MemoryCollection[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T
	id := rec.GetID()
	if err := ctx.Err(); err != nil {
		return zero, NewError("update", c.name, id, ErrStoreUnavailable, err)
	}
	if err := rec.Validate(); err != nil {
		return zero, NewError("update", c.name, id, ErrValidation, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	prev, ok := c.records[id]
	if !ok {
		return zero, NewError("update", c.name, id, ErrNotFound, nil)
	}
	rec = stamp(rec, createdOf(prev), c.now())
	c.records[id] = rec
	return rec, nil
}

func (c *MemoryCollection[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return NewError("delete", c.name, id, ErrStoreUnavailable, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.records[id]; !ok {
		return NewError("delete", c.name, id, ErrNotFound, nil)
	}
	delete(c.records, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *MemoryCollection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if rec := c.records[id]; match(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

func (c *MemoryCollection[T]) modify(id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.records[id]
	if !ok {
		return false
	}
	fn(&rec)
	c.records[id] = rec
	return true
}

type timestamped[T any] interface {
	WithTimestamps(created, updated time.Time) T
}

type createdDated interface {
	GetCreatedDate() time.Time
}

func stamp[T Record](rec T, created, updated time.Time) T {
	if ts, ok := any(rec).(timestamped[T]); ok {
		return ts.WithTimestamps(created, updated)
	}
	return rec
}

func createdOf[T Record](rec T) time.Time {
	if cd, ok := any(rec).(createdDated); ok {
		return cd.GetCreatedDate()
	}
	return time.Time{}
}

// MemoryUsers adds the account lookups used at sign-in
type MemoryUsers struct {
	*MemoryCollection[models.User]
}

func (u *MemoryUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, NewError("find", u.name, email, ErrStoreUnavailable, err)
	}
	user, ok := u.find(func(rec models.User) bool {
		return strings.EqualFold(rec.Email, email)
	})
	if !ok {
		return models.User{}, NewError("find", u.name, email, ErrNotFound, nil)
	}
	return user, nil
}

func (u *MemoryUsers) RecordLogin(ctx context.Context, id string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return NewError("record login", u.name, id, ErrStoreUnavailable, err)
	}
	ok := u.modify(id, func(rec *models.User) {
		rec.LastLoginDate = &at
	})
	if !ok {
		return NewError("record login", u.name, id, ErrNotFound, nil)
	}
	return nil
}

// NewMemoryRepositories returns empty in-process collections
func NewMemoryRepositories() Repositories {
	return Repositories{
		Products:      NewMemoryCollection[models.Product](models.CollectionProducts),
		SalesOrders:   NewMemoryCollection[models.SalesOrder](models.CollectionSalesOrders),
		Forecasts:     NewMemoryCollection[models.DemandForecast](models.CollectionDemandForecasts),
		Notifications: NewMemoryCollection[models.Notification](models.CollectionNotifications),
		Users:         &MemoryUsers{NewMemoryCollection[models.User](models.CollectionUsers)},
	}
}
