// Package views builds the per-screen page views. Each view loads its own snapshot
// of the collections it needs, derives aggregates from it, and re-fetches after mutating.
package views

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/logging"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/services"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrImagesUnavailable   = errors.New("image storage is not configured")
	ErrPaymentsUnavailable = errors.New("payment gateway is not configured")
	ErrInvalidPayment      = errors.New("payment signature verification failed")
)

// ImageStore keeps product images
type ImageStore interface {
	UploadImage(ctx context.Context, data []byte, fileName, contentType string) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
}

// PaymentProvider creates gateway orders and checks checkout signatures
type PaymentProvider interface {
	CreateOrder(amount float64, receiptID string) (services.PaymentOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// Publisher pushes a notification to subscribed devices
type Publisher interface {
	Publish(ctx context.Context, title, body string, data map[string]string) (string, error)
}

// Integrations are optional; a nil field disables the feature that needs it.
type Integrations struct {
	Images   ImageStore
	Payments PaymentProvider
	Push     Publisher
}

// Status reports how the last load went. Loaded is true after any attempt.
type Status struct {
	Loaded bool   `json:"loaded"`
	Error  string `json:"error,omitempty"`
}

// Failed is set when a load or refresh did not complete
func (s Status) Failed() bool { return s.Error != "" }

var (
	newID = uuid.NewString
	now   = time.Now
)

type loader func(ctx context.Context) error

func listInto[T store.Record](coll store.Collection[T], dst *[]T) loader {
	return func(ctx context.Context) error {
		records, err := coll.ListAll(ctx)
		if err != nil {
			return err
		}
		*dst = records
		return nil
	}
}

// loadAll runs every loader concurrently and waits for all of them.
// The first failure cancels the rest and is returned.
func loadAll(ctx context.Context, loaders ...loader) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, l := range loaders {
		l := l
		g.Go(func() error { return l(gctx) })
	}
	return g.Wait()
}

func settle(page string, err error) Status {
	if err == nil {
		return Status{Loaded: true}
	}
	logging.Error("page load failed", err, logging.Fields{"page": page})
	return Status{Loaded: true, Error: err.Error()}
}

func logMutation(page, op string, err error, fields logging.Fields) {
	if fields == nil {
		fields = logging.Fields{}
	}
	fields["page"] = page
	fields["op"] = op
	logging.Error("mutation failed", err, fields)
}

// containsFold reports a case-insensitive substring match against any field
func containsFold(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func isAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, "all")
}

func sortedCopy[T any](records []T, less func(a, b T) bool) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func firstN[T any](records []T, n int) []T {
	if len(records) > n {
		return records[:n]
	}
	return records
}

func lastN[T any](records []T, n int) []T {
	if len(records) > n {
		return records[len(records)-n:]
	}
	return records
}
