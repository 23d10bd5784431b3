package views

import (
	"context"
	"strings"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/logging"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
)

const defaultLowStockThreshold = 10

// Inventory status filter values
const (
	StockFilterAll      = "all"
	StockFilterActive   = "active"
	StockFilterInactive = "inactive"
	StockFilterLowStock = "lowstock"
)

type InventoryFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

// ProductInput is a product form submission. Without an ID it creates a product.
type ProductInput struct {
	ID                string  `json:"id"`
	ProductName       string  `json:"productName"`
	SKU               string  `json:"sku"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	CurrentStock      int     `json:"currentStock"`
	LowStockThreshold *int    `json:"lowStockThreshold"`
	ProductImage      string  `json:"productImage"`
	IsActive          *bool   `json:"isActive"`
}

type Inventory struct {
	repos  store.Repositories
	images ImageStore

	products []models.Product
	status   Status
}

func NewInventory(repos store.Repositories, integrations Integrations) *Inventory {
	return &Inventory{repos: repos, images: integrations.Images}
}

func (v *Inventory) Load(ctx context.Context) Status {
	var products []models.Product
	err := loadAll(ctx, listInto[models.Product](v.repos.Products, &products))
	v.status = settle("inventory", err)
	if err != nil {
		v.products = nil
		return v.status
	}
	v.products = products
	return v.status
}

func (v *Inventory) refresh(ctx context.Context) {
	products, err := v.repos.Products.ListAll(ctx)
	if err != nil {
		v.status = settle("inventory", err)
		return
	}
	v.products = products
	v.status = Status{Loaded: true}
}

// StockStatus buckets a product for its badge: unknown, low, medium or high
func StockStatus(p models.Product) string {
	switch {
	case p.CurrentStock == 0 || p.LowStockThreshold == 0:
		return "unknown"
	case p.IsLowStock():
		return "low"
	case p.CurrentStock <= p.LowStockThreshold*2:
		return "medium"
	default:
		return "high"
	}
}

type ProductItem struct {
	models.Product
	StockStatus string `json:"stockStatus"`
	LowStock    bool   `json:"lowStock"`
}

// Filter applies the search term and status without touching the snapshot. Results are sorted by name.
func (v *Inventory) Filter(f InventoryFilter) []ProductItem {
	status := strings.ToLower(strings.TrimSpace(f.Status))
	items := []ProductItem{}
	for _, p := range v.products {
		if !containsFold(f.Search, p.ProductName, p.SKU) {
			continue
		}
		switch status {
		case StockFilterActive:
			if !p.IsActive {
				continue
			}
		case StockFilterInactive:
			if p.IsActive {
				continue
			}
		case StockFilterLowStock:
			if !p.IsLowStock() {
				continue
			}
		}
		items = append(items, ProductItem{Product: p, StockStatus: StockStatus(p), LowStock: p.IsLowStock()})
	}
	return sortedCopy(items, func(a, b ProductItem) bool {
		return strings.ToLower(a.ProductName) < strings.ToLower(b.ProductName)
	})
}

type InventoryStats struct {
	Total      int     `json:"total"`
	Active     int     `json:"active"`
	LowStock   int     `json:"lowStock"`
	TotalValue float64 `json:"totalValue"`
}

func (v *Inventory) Stats() InventoryStats {
	s := InventoryStats{Total: len(v.products)}
	for _, p := range v.products {
		if p.IsActive {
			s.Active++
		}
		if p.IsLowStock() {
			s.LowStock++
		}
		s.TotalValue += p.Price * float64(p.CurrentStock)
	}
	return s
}

// SaveProduct creates a product when in.ID is empty, otherwise replaces the stored one
func (v *Inventory) SaveProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	product := models.Product{
		ID:           strings.TrimSpace(in.ID),
		ProductName:  strings.TrimSpace(in.ProductName),
		SKU:          strings.TrimSpace(in.SKU),
		Description:  in.Description,
		Price:        in.Price,
		CurrentStock: in.CurrentStock,
		ProductImage: in.ProductImage,
	}
	if in.LowStockThreshold != nil {
		product.LowStockThreshold = *in.LowStockThreshold
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}

	var (
		saved models.Product
		err   error
	)
	if product.ID == "" {
		product.ID = newID()
		if in.LowStockThreshold == nil {
			product.LowStockThreshold = defaultLowStockThreshold
		}
		if in.IsActive == nil {
			product.IsActive = true
		}
		saved, err = v.repos.Products.Create(ctx, product)
	} else {
		saved, err = v.repos.Products.Update(ctx, product)
	}
	if err != nil {
		logMutation("inventory", "save product", err, logging.Fields{"product_id": product.ID})
		return models.Product{}, err
	}

	v.refresh(ctx)
	return saved, nil
}

// DeleteProduct removes the product and, when storage is configured, its image
func (v *Inventory) DeleteProduct(ctx context.Context, id string) error {
	existing, known := v.find(id)
	if err := v.repos.Products.Delete(ctx, id); err != nil {
		logMutation("inventory", "delete product", err, logging.Fields{"product_id": id})
		return err
	}
	if known && existing.ProductImage != "" && v.images != nil {
		if err := v.images.DeleteImage(ctx, existing.ProductImage); err != nil {
			logging.Warn("product image cleanup failed", logging.Fields{"product_id": id, "error": err.Error()})
		}
	}
	v.refresh(ctx)
	return nil
}

// UploadProductImage stores the image and points the product at it
func (v *Inventory) UploadProductImage(ctx context.Context, id string, data []byte, fileName, contentType string) (models.Product, error) {
	if v.images == nil {
		return models.Product{}, ErrImagesUnavailable
	}
	product, ok := v.find(id)
	if !ok {
		return models.Product{}, store.NewError("upload image", models.CollectionProducts, id, store.ErrNotFound, nil)
	}

	url, err := v.images.UploadImage(ctx, data, fileName, contentType)
	if err != nil {
		logMutation("inventory", "upload image", err, logging.Fields{"product_id": id})
		return models.Product{}, err
	}

	previous := product.ProductImage
	product.ProductImage = url
	saved, err := v.repos.Products.Update(ctx, product)
	if err != nil {
		logMutation("inventory", "upload image", err, logging.Fields{"product_id": id})
		if cleanupErr := v.images.DeleteImage(ctx, url); cleanupErr != nil {
			logging.Warn("uploaded product image cleanup failed", logging.Fields{"product_id": id, "url": url, "error": cleanupErr.Error()})
		}
		return models.Product{}, err
	}
	if previous != "" {
		if err := v.images.DeleteImage(ctx, previous); err != nil {
			logging.Warn("previous product image cleanup failed", logging.Fields{"product_id": id, "error": err.Error()})
		}
	}

	v.refresh(ctx)
	return saved, nil
}

func (v *Inventory) find(id string) (models.Product, bool) {
	for _, p := range v.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

type InventoryView struct {
	Status   Status          `json:"status"`
	Filter   InventoryFilter `json:"filter"`
	Stats    InventoryStats  `json:"stats"`
	Products []ProductItem   `json:"products"`
}

func (v *Inventory) View(f InventoryFilter) InventoryView {
	return InventoryView{
		Status:   v.status,
		Filter:   f,
		Stats:    v.Stats(),
		Products: v.Filter(f),
	}
}
