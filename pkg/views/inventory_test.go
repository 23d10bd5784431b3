package views

import (
	"context"
	"errors"
	"testing"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImages struct {
	uploaded []string
	deleted  []string
	err      error
}

func (f *fakeImages) UploadImage(_ context.Context, _ []byte, fileName, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	url := "https://storage.googleapis.com/bucket/" + fileName
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeImages) DeleteImage(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func loadedInventory(t *testing.T, integrations Integrations, products ...models.Product) (*Inventory, store.Repositories) {
	t.Helper()
	repos := store.NewMemoryRepositories()
	seed(t, repos.Products, products...)
	v := NewInventory(repos, integrations)
	require.False(t, v.Load(context.Background()).Failed())
	return v, repos
}

func ids(items []ProductItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestInventoryLowStockFilter(t *testing.T) {
	v, _ := loadedInventory(t, Integrations{},
		testProduct("low", "Low One", 5, 10, true),
		testProduct("ok", "Plenty", 15, 10, true),
	)

	low := v.Filter(InventoryFilter{Status: StockFilterLowStock})
	assert.Equal(t, []string{"low"}, ids(low))
	assert.True(t, low[0].LowStock)
	assert.Equal(t, "low", low[0].StockStatus)
}

func TestInventorySearchIsCaseInsensitive(t *testing.T) {
	v, _ := loadedInventory(t, Integrations{},
		testProduct("p1", "Pro Widget", 20, 10, true),
		testProduct("p2", "Gadget", 20, 10, true),
	)

	assert.Equal(t, []string{"p1"}, ids(v.Filter(InventoryFilter{Search: "pro"})))
	assert.Equal(t, []string{"p2"}, ids(v.Filter(InventoryFilter{Search: "sku-P2"})))
	assert.Len(t, v.Filter(InventoryFilter{Search: "", Status: "all"}), 2)
}

func TestInventoryActiveFiltersDoNotMutateSnapshot(t *testing.T) {
	v, _ := loadedInventory(t, Integrations{},
		testProduct("a", "Alpha", 20, 10, true),
		testProduct("b", "Beta", 20, 10, false),
	)

	assert.Equal(t, []string{"a"}, ids(v.Filter(InventoryFilter{Status: StockFilterActive})))
	assert.Equal(t, []string{"b"}, ids(v.Filter(InventoryFilter{Status: StockFilterInactive})))
	assert.Len(t, v.products, 2)
	assert.Equal(t, 2, v.Stats().Total)
}

func TestInventoryStats(t *testing.T) {
	v, _ := loadedInventory(t, Integrations{},
		testProduct("a", "Alpha", 4, 10, true),
		testProduct("b", "Beta", 20, 10, false),
	)

	stats := v.Stats()
	assert.Equal(t, InventoryStats{Total: 2, Active: 1, LowStock: 1, TotalValue: 60}, stats)
}

func TestStockStatus(t *testing.T) {
	assert.Equal(t, "unknown", StockStatus(models.Product{CurrentStock: 0, LowStockThreshold: 10}))
	assert.Equal(t, "low", StockStatus(models.Product{CurrentStock: 10, LowStockThreshold: 10}))
	assert.Equal(t, "medium", StockStatus(models.Product{CurrentStock: 20, LowStockThreshold: 10}))
	assert.Equal(t, "high", StockStatus(models.Product{CurrentStock: 21, LowStockThreshold: 10}))
}

func TestSaveProductCreatesWithDefaults(t *testing.T) {
	v, _ := loadedInventory(t, Integrations{})

	created, err := v.SaveProduct(context.Background(), ProductInput{ProductName: "Widget", SKU: "W-1", Price: 3})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 10, created.LowStockThreshold)
	assert.True(t, created.IsActive)
	require.Len(t, v.products, 1)
	assert.Equal(t, created.ID, v.products[0].ID)
}

func TestSaveProductUpdateReplacesRecord(t *testing.T) {
	original := testProduct("p1", "Widget", 20, 10, true)
	original.Description = "blue"
	v, repos := loadedInventory(t, Integrations{}, original)

	threshold := 3
	active := false
	_, err := v.SaveProduct(context.Background(), ProductInput{
		ID:                "p1",
		ProductName:       "Widget v2",
		SKU:               "W-2",
		LowStockThreshold: &threshold,
		IsActive:          &active,
	})
	require.NoError(t, err)

	all, err := repos.Products.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Widget v2", all[0].ProductName)
	assert.Equal(t, "", all[0].Description)
	assert.Equal(t, 0, all[0].CurrentStock)
	assert.False(t, all[0].IsActive)
	assert.Equal(t, "Widget v2", v.products[0].ProductName)
}

func TestSaveProductInvalidKeepsSnapshot(t *testing.T) {
	v, _ := loadedInventory(t, Integrations{}, testProduct("p1", "Widget", 20, 10, true))

	_, err := v.SaveProduct(context.Background(), ProductInput{ProductName: "No SKU"})
	assert.ErrorIs(t, err, store.ErrValidation)
	assert.Len(t, v.products, 1)
}

func TestDeleteProduct(t *testing.T) {
	product := testProduct("p1", "Widget", 20, 10, true)
	product.ProductImage = "https://storage.googleapis.com/bucket/old.png"
	images := &fakeImages{}
	v, _ := loadedInventory(t, Integrations{Images: images}, product, testProduct("p2", "Gadget", 1, 10, true))

	require.NoError(t, v.DeleteProduct(context.Background(), "p1"))
	assert.Equal(t, []string{"p2"}, ids(v.Filter(InventoryFilter{})))
	assert.Equal(t, []string{product.ProductImage}, images.deleted)

	err := v.DeleteProduct(context.Background(), "p1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Len(t, v.products, 1)
}

func TestUploadProductImage(t *testing.T) {
	ctx := context.Background()

	v, _ := loadedInventory(t, Integrations{}, testProduct("p1", "Widget", 20, 10, true))
	_, err := v.UploadProductImage(ctx, "p1", []byte("img"), "w.png", "image/png")
	assert.ErrorIs(t, err, ErrImagesUnavailable)

	images := &fakeImages{}
	v, repos := loadedInventory(t, Integrations{Images: images}, testProduct("p1", "Widget", 20, 10, true))

	_, err = v.UploadProductImage(ctx, "missing", []byte("img"), "w.png", "image/png")
	assert.ErrorIs(t, err, store.ErrNotFound)

	saved, err := v.UploadProductImage(ctx, "p1", []byte("img"), "w.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/bucket/w.png", saved.ProductImage)

	all, _ := repos.Products.ListAll(ctx)
	assert.Equal(t, saved.ProductImage, all[0].ProductImage)
	assert.Equal(t, 20, all[0].CurrentStock)

	images.err = errors.New("quota exceeded")
	_, err = v.UploadProductImage(ctx, "p1", []byte("img"), "x.png", "image/png")
	assert.Error(t, err)
	assert.Equal(t, saved.ProductImage, v.products[0].ProductImage)
}

func TestUploadProductImageRemovesObjectWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	repos := store.NewMemoryRepositories()
	seed(t, repos.Products, testProduct("p1", "Widget", 20, 10, true))
	repos.Products = failUpdate[models.Product]{Collection: repos.Products, id: "p1"}

	images := &fakeImages{}
	v := NewInventory(repos, Integrations{Images: images})
	require.False(t, v.Load(ctx).Failed())

	_, err := v.UploadProductImage(ctx, "p1", []byte("img"), "w.png", "image/png")
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	require.Len(t, images.uploaded, 1)
	assert.Equal(t, images.uploaded, images.deleted)
	assert.Empty(t, v.products[0].ProductImage)
}
